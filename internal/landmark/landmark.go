package landmark

// NumLandmarks is the number of points in the MediaPipe Face Mesh
// convention. Detectors may return fewer; see OvalPoints.
const NumLandmarks = 468

// NumOvalPoints is the length of the FaceOval index set.
const NumOvalPoints = 36

// FaceOval lists the Face Mesh indices of the face-oval contour in polygon
// vertex order, starting at the top of the forehead and proceeding clockwise.
// The order matters: it guarantees a simple closed loop when the looked-up
// points are connected in sequence.
var FaceOval = [NumOvalPoints]int{
	10, 338, 297, 332, 284, 251, 389, 356, 454,
	323, 361, 288, 397, 365, 379, 378, 400, 377,
	152, 148, 176, 149, 150, 136, 172, 58, 132,
	93, 234, 127, 162, 21, 54, 103, 67, 109,
}

// Landmark is a single facial keypoint in normalized image-fraction
// coordinates. Z is detector-provided depth and is not used by the
// compositor.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// Point is a 2D point in pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Face is one detected face's landmark array, ordered by Face Mesh index.
type Face []Landmark

// OvalPoints maps the FaceOval index set to pixel-space points for an image
// of the given dimensions. Indices outside the face array are skipped, so
// the result may hold fewer than NumOvalPoints entries; vertex order is
// preserved for the indices that remain.
func (f Face) OvalPoints(width, height int) []Point {
	points := make([]Point, 0, NumOvalPoints)
	for _, idx := range FaceOval {
		if idx < 0 || idx >= len(f) {
			continue
		}
		points = append(points, Point{
			X: f[idx].X * float64(width),
			Y: f[idx].Y * float64(height),
		})
	}
	return points
}
