package detector

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"

	"github.com/eita-x/face-mosaic-oval/internal/landmark"
)

func testImage() image.Image {
	return image.NewNRGBA(image.Rect(0, 0, 10, 10))
}

func TestStatic(t *testing.T) {
	face := OvalFace(0.5, 0.5, 0.2, 0.25)
	det := NewStatic(face)

	faces, err := det.Detect(context.Background(), testImage())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(faces) != 1 {
		t.Fatalf("got %d faces, want 1", len(faces))
	}
	if pts := faces[0].OvalPoints(100, 100); len(pts) != landmark.NumOvalPoints {
		t.Errorf("oval points: got %d, want %d", len(pts), landmark.NumOvalPoints)
	}

	det.SetError(errors.New("boom"))
	if _, err := det.Detect(context.Background(), testImage()); err == nil {
		t.Error("Detect should return the configured error")
	}
}

func TestOvalFace_ConvexOrder(t *testing.T) {
	face := OvalFace(0.5, 0.5, 0.25, 0.3)
	pts := face.OvalPoints(400, 400)

	// Consecutive cross products must not change sign for a convex loop.
	sign := 0.0
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		c := pts[(i+2)%len(pts)]
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if sign*cross < 0 {
			t.Fatalf("polygon not convex at vertex %d", i)
		}
	}
}

func TestLazy_InitializesOnce(t *testing.T) {
	opens := 0
	lazy := NewLazy(func(ctx context.Context) (Detector, error) {
		opens++
		return NewStatic(), nil
	})

	var wg sync.WaitGroup
	dets := make([]Detector, 8)
	for i := range dets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			det, err := lazy.Get(context.Background())
			if err != nil {
				t.Errorf("Get failed: %v", err)
				return
			}
			dets[i] = det
		}(i)
	}
	wg.Wait()

	if opens != 1 {
		t.Errorf("open called %d times, want 1", opens)
	}
	for i, det := range dets {
		if det != dets[0] {
			t.Errorf("caller %d got a different detector instance", i)
		}
	}
}

func TestLazy_FailureNotMemoized(t *testing.T) {
	opens := 0
	lazy := NewLazy(func(ctx context.Context) (Detector, error) {
		opens++
		if opens == 1 {
			return nil, errors.New("model missing")
		}
		return NewStatic(), nil
	})

	_, err := lazy.Get(context.Background())
	var initErr *InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("first Get: got %v, want *InitError", err)
	}

	if _, err := lazy.Get(context.Background()); err != nil {
		t.Fatalf("second Get should retry and succeed, got %v", err)
	}
	if opens != 2 {
		t.Errorf("open called %d times, want 2", opens)
	}
}

func TestLazy_CloseResets(t *testing.T) {
	opens := 0
	lazy := NewLazy(func(ctx context.Context) (Detector, error) {
		opens++
		return NewStatic(), nil
	})

	if _, err := lazy.Get(context.Background()); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if err := lazy.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := lazy.Get(context.Background()); err != nil {
		t.Fatalf("Get after Close failed: %v", err)
	}
	if opens != 2 {
		t.Errorf("open called %d times, want 2", opens)
	}
}

func TestDecodeResult(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantFaces int
		wantErr   bool
	}{
		{"no faces", `{"faces":[]}`, 0, false},
		{"one face", `{"faces":[[{"x":0.5,"y":0.25,"z":-0.01}]]}`, 1, false},
		{"two faces", `{"faces":[[{"x":0.1,"y":0.1}],[{"x":0.9,"y":0.9}]]}`, 2, false},
		{"model error", `{"error":"model not loaded"}`, 0, true},
		{"malformed", `{"faces":`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			faces, err := decodeResult([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Error("want error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeResult failed: %v", err)
			}
			if len(faces) != tt.wantFaces {
				t.Errorf("got %d faces, want %d", len(faces), tt.wantFaces)
			}
		})
	}
}

func TestDecodeResult_LandmarkValues(t *testing.T) {
	faces, err := decodeResult([]byte(`{"faces":[[{"x":0.5,"y":0.25,"z":-0.01}]]}`))
	if err != nil {
		t.Fatalf("decodeResult failed: %v", err)
	}
	got := faces[0][0]
	want := landmark.Landmark{X: 0.5, Y: 0.25, Z: -0.01}
	if got != want {
		t.Errorf("landmark: got %+v, want %+v", got, want)
	}
}
