// Package landmark defines the facial landmark data model shared by the
// detector and the mosaic compositor.
//
// A detected face is an ordered array of normalized landmarks following the
// MediaPipe Face Mesh index scheme (468 points, 0-based). Only a fixed
// 36-index subset — the face-oval contour — is consulted by this module;
// FaceOval lists those indices in contour order.
//
// # Coordinate Systems
//
// Landmarks arrive in image-fraction coordinates, x and y in [0,1] with
// (0,0) at the top-left corner. The z component is depth from the detector
// and is unused here. OvalPoints converts to pixel space by multiplying by
// the image width and height; all downstream geometry operates in pixel
// space with X increasing rightward and Y increasing downward.
//
// # Missing Indices
//
// A face array shorter than the Face Mesh convention is tolerated: oval
// indices that fall outside the array are skipped rather than reported as
// errors, which can shrink the resulting contour. Callers must cope with
// fewer than 36 points, including fewer than the 3 required for a polygon.
package landmark
