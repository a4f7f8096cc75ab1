// Package geometry provides the pure numeric functions shared by every
// render surface: rectangle tests, grid snapping, aspect-preserving
// scale-to-fit, and the faux-depth projection offset.
//
// All functions are stateless and side-effect free. Values are in
// whatever unit the caller works in (the model uses millimeters, the
// sinks use pixels); nothing here assumes a unit.
package geometry

import "math"

// Depth projection constants shared by every render surface. The frame
// and the components must be drawn with the same apparent depth angle,
// so sinks take these rather than inventing their own.
const (
	// FrameDepthFactor scales the frame's depth into its face offset.
	FrameDepthFactor = 0.12

	// ComponentDepthFactor scales a component's depth into its face offset.
	ComponentDepthFactor = 0.15

	// DepthOffsetCap bounds the face offset so deep carcasses do not
	// overwhelm the drawing.
	DepthOffsetCap = 80.0
)

// Rect is an axis-aligned rectangle identified by its minimum corner
// and extents.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the maximum X edge of the rectangle.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the maximum Y edge of the rectangle.
func (r Rect) Top() float64 { return r.Y + r.H }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// PointInRect reports whether the point (x, y) lies inside the rectangle
// with minimum corner (rx, ry) and extents (rw, rh). Boundaries are
// inclusive.
func PointInRect(x, y, rx, ry, rw, rh float64) bool {
	return rx <= x && x <= rx+rw && ry <= y && y <= ry+rh
}

// RectsIntersect reports whether two rectangles overlap. Overlap is
// open-interval: rectangles that merely touch along an edge do not
// intersect.
func RectsIntersect(a, b Rect) bool {
	if a.Right() <= b.X || b.Right() <= a.X {
		return false
	}
	if a.Top() <= b.Y || b.Top() <= a.Y {
		return false
	}
	return true
}

// RectContainsRect reports whether outer fully contains inner, inclusive
// on all four edges.
func RectContainsRect(outer, inner Rect) bool {
	return outer.X <= inner.X &&
		outer.Y <= inner.Y &&
		outer.Right() >= inner.Right() &&
		outer.Top() >= inner.Top()
}

// SnapToGrid snaps value to the nearest multiple of gridSize. A gridSize
// of zero or less returns the value unchanged. Ties round half away from
// zero (math.Round), so SnapToGrid(25, 10) == 30 and
// SnapToGrid(-25, 10) == -30. Note this differs from half-up rounding
// for negative midpoints, which would give -20; positions left of the
// frame origin snap outward.
func SnapToGrid(value, gridSize float64) float64 {
	if gridSize <= 0 {
		return value
	}
	return math.Round(value/gridSize) * gridSize
}

// Clamp restricts value to the range [lo, hi]. lo <= hi is assumed.
func Clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, value))
}

// ScaleToFit returns the aspect-preserving scale factor that fits content
// of size (contentW, contentH) inside a container of size (containerW,
// containerH) with the given margin on every side. The tighter axis wins,
// so scaled content never crops. Non-positive content or a margin-reduced
// container with no room left yields 1.0.
func ScaleToFit(contentW, contentH, containerW, containerH, margin float64) float64 {
	if contentW <= 0 || contentH <= 0 {
		return 1.0
	}

	availableW := containerW - 2*margin
	availableH := containerH - 2*margin
	if availableW <= 0 || availableH <= 0 {
		return 1.0
	}

	return math.Min(availableW/contentW, availableH/contentH)
}

// DepthOffset returns the offset used to draw the top and side faces of
// an otherwise flat rectangle, faking an axonometric depth. The offset is
// applied equally to both axes (a 45 degree apparent angle) and is capped
// so deep units stay readable.
func DepthOffset(depth, factor, cap float64) float64 {
	return math.Min(depth*factor, cap)
}
