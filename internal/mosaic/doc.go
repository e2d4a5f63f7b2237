// Package mosaic implements the face-contour mosaic compositor: deriving a
// clipping polygon and bounding region from a face's oval landmarks,
// rendering a pixelated patch of the bounded region, and compositing the
// patch back onto the source image masked exactly by the contour.
//
// The three stages are exposed separately (BuildContour, Pixelate, Apply)
// so each is testable on its own; Apply orchestrates one face end to end.
//
// # Geometry
//
// BuildContour expands the landmark polygon uniformly about its centroid to
// over-cover the true skin boundary, then derives an axis-aligned bounding
// region with a relative padding margin. The region is always clamped to
// the image bounds and never degenerate (at least 1x1), so the raster
// stages never receive out-of-range geometry. A face contributing fewer
// than three usable points yields no contour and is skipped silently.
//
// # Pixelation
//
// Pixelate performs the classic two-stage resample: a smoothing downscale
// to one sample per block followed by a nearest-neighbor upscale back to
// the region size. The block look comes entirely from the non-smoothing
// second stage. The function reads only the given region and never mutates
// its source.
//
// # Clipping
//
// Apply rasterizes the contour polygon into an alpha mask and draws the
// pixelated patch through it, so mosaic pixels never bleed past the face
// boundary. Pixels wholly outside the polygon keep their original values;
// edge pixels receive antialiased coverage. An optional feather radius
// softens the mask edge further at the cost of exact clipping.
package mosaic
