// Package ink defines the stroke model: timestamped pen points, strokes,
// and stroke groups, plus the rasterizer that turns a group into the
// grayscale grid fed to classifiers.
package ink

import (
	"math"

	"github.com/inkmath/inkmath/geom"
)

// Point is a single pen sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	T int64   `json:"t"`
}

// Stroke is an ordered run of points between pen-down and pen-up.
type Stroke struct {
	Points []Point `json:"points"`
}

// Append adds a point to the stroke. Timestamps are clamped to be
// monotonically non-decreasing.
func (s *Stroke) Append(x, y float64, t int64) {
	if n := len(s.Points); n > 0 && t < s.Points[n-1].T {
		t = s.Points[n-1].T
	}
	s.Points = append(s.Points, Point{X: x, Y: y, T: t})
}

// Box returns the bounding box of the stroke's points. An empty stroke
// yields the zero box.
func (s Stroke) Box() geom.BoundingBox {
	if len(s.Points) == 0 {
		return geom.BoundingBox{}
	}
	minX, minY := s.Points[0].X, s.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range s.Points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return geom.Box(minX, minY, maxX, maxY)
}

// Angle returns the direction from the stroke's first point to its last,
// in radians as given by math.Atan2. Strokes with fewer than two points
// have angle 0.
func (s Stroke) Angle() float64 {
	if len(s.Points) < 2 {
		return 0
	}
	first := s.Points[0]
	last := s.Points[len(s.Points)-1]
	return math.Atan2(last.Y-first.Y, last.X-first.X)
}

// StrokeGroup is a cluster of strokes assumed to form one character.
type StrokeGroup struct {
	Strokes []Stroke `json:"strokes"`
}

// Box returns the merged bounding box of all strokes in the group.
func (g StrokeGroup) Box() geom.BoundingBox {
	if len(g.Strokes) == 0 {
		return geom.BoundingBox{}
	}
	box := g.Strokes[0].Box()
	for _, s := range g.Strokes[1:] {
		box = geom.Merge(box, s.Box())
	}
	return box
}
