// Package geom holds the planar primitives shared by segmentation and
// recognition: axis-aligned bounding boxes and the spatial predicates
// evaluated over them.
package geom

import "math"

// AngleTolerance is the default tolerance, in radians, for deciding that a
// stroke runs along one of the axes.
const AngleTolerance = 0.4

// BoundingBox is the axis-aligned extent of a set of points. The zero value
// is the degenerate box produced by an empty point set.
type BoundingBox struct {
	MinX    float64
	MinY    float64
	MaxX    float64
	MaxY    float64
	Width   float64
	Height  float64
	CenterX float64
	CenterY float64
}

// Box builds a BoundingBox from its corner coordinates, filling in the
// derived fields.
func Box(minX, minY, maxX, maxY float64) BoundingBox {
	return BoundingBox{
		MinX:    minX,
		MinY:    minY,
		MaxX:    maxX,
		MaxY:    maxY,
		Width:   maxX - minX,
		Height:  maxY - minY,
		CenterX: (minX + maxX) / 2,
		CenterY: (minY + maxY) / 2,
	}
}

// Merge returns the smallest box covering both a and b.
func Merge(a, b BoundingBox) BoundingBox {
	return Box(
		math.Min(a.MinX, b.MinX),
		math.Min(a.MinY, b.MinY),
		math.Max(a.MaxX, b.MaxX),
		math.Max(a.MaxY, b.MaxY),
	)
}

// AspectRatio returns width over height, +Inf for a box with no height.
func (b BoundingBox) AspectRatio() float64 {
	if b.Height == 0 {
		return math.Inf(1)
	}
	return b.Width / b.Height
}

// OverlapsX reports whether a's X range, widened by margin on both sides,
// intersects b's X range.
func OverlapsX(a, b BoundingBox, margin float64) bool {
	return a.MinX-margin <= b.MaxX && a.MaxX+margin >= b.MinX
}

// HorizontalGap returns the distance between the nearer vertical edges of
// a and b, or 0 when the boxes overlap in X.
func HorizontalGap(a, b BoundingBox) float64 {
	switch {
	case a.MaxX < b.MinX:
		return b.MinX - a.MaxX
	case b.MaxX < a.MinX:
		return a.MinX - b.MaxX
	}
	return 0
}

// YOverlapRatio returns the vertical extent shared by a and b relative to
// the shorter of the two boxes. The ratio is 0 when either box has no
// height.
func YOverlapRatio(a, b BoundingBox) float64 {
	if a.Height == 0 || b.Height == 0 {
		return 0
	}
	overlap := math.Min(a.MaxY, b.MaxY) - math.Max(a.MinY, b.MinY)
	if overlap < 0 {
		overlap = 0
	}
	return overlap / math.Min(a.Height, b.Height)
}

// IsHorizontal reports whether an angle in radians points along the X axis
// in either direction, within tol.
func IsHorizontal(angle, tol float64) bool {
	a := math.Abs(angle)
	return a < tol || math.Pi-a < tol
}

// IsVertical reports whether an angle in radians points along the Y axis in
// either direction, within tol.
func IsVertical(angle, tol float64) bool {
	return math.Abs(math.Abs(angle)-math.Pi/2) < tol
}
