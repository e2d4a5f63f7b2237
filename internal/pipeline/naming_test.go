package pipeline

import "testing"

func TestSanitizeBaseName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "photo.png", "photo"},
		{"uppercase extension", "photo.JPG", "photo"},
		{"no extension", "photo", "photo"},
		{"unsafe characters", `a/b:c*.png`, "a_b_c_"},
		{"all unsafe characters", `\/:*?"<>|.png`, "_________"},
		{"only an extension", ".png", DefaultBaseName},
		{"empty", "", DefaultBaseName},
		{"dots in name", "my.photo.v2.png", "my.photo.v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeBaseName(tt.in); got != tt.want {
				t.Errorf("SanitizeBaseName(%q): got %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.JPG", "photo_mosaic.png"},
		{`a/b:c*.png`, "a_b_c__mosaic.png"},
		{"", "image_mosaic.png"},
	}

	for _, tt := range tests {
		if got := OutputName(tt.in); got != tt.want {
			t.Errorf("OutputName(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFilterImagePaths(t *testing.T) {
	in := []string{"a.png", "notes.txt", "b.JPEG", "c.webp", "script.sh", "d.gif"}
	want := []string{"a.png", "b.JPEG", "c.webp", "d.gif"}

	got := FilterImagePaths(in)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
