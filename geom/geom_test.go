package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxDerivedFields(t *testing.T) {
	b := Box(10, 20, 30, 60)
	assert.Equal(t, 20.0, b.Width)
	assert.Equal(t, 40.0, b.Height)
	assert.Equal(t, 20.0, b.CenterX)
	assert.Equal(t, 40.0, b.CenterY)
}

func TestMerge(t *testing.T) {
	a := Box(0, 0, 10, 10)
	b := Box(5, -5, 20, 8)
	m := Merge(a, b)
	assert.Equal(t, 0.0, m.MinX)
	assert.Equal(t, -5.0, m.MinY)
	assert.Equal(t, 20.0, m.MaxX)
	assert.Equal(t, 10.0, m.MaxY)
}

func TestAspectRatio(t *testing.T) {
	assert.Equal(t, 2.0, Box(0, 0, 20, 10).AspectRatio())
	assert.True(t, math.IsInf(Box(0, 5, 10, 5).AspectRatio(), 1))
}

func TestOverlapsX(t *testing.T) {
	a := Box(0, 0, 10, 10)
	b := Box(12, 0, 20, 10)

	assert.False(t, OverlapsX(a, b, 0))
	assert.True(t, OverlapsX(a, b, 2), "margin widens the range")
	assert.True(t, OverlapsX(b, a, 2), "symmetric")
	assert.True(t, OverlapsX(a, Box(5, 0, 8, 10), 0), "containment overlaps")
}

func TestHorizontalGap(t *testing.T) {
	a := Box(0, 0, 10, 10)
	b := Box(15, 0, 25, 10)

	assert.Equal(t, 5.0, HorizontalGap(a, b))
	assert.Equal(t, 5.0, HorizontalGap(b, a))
	assert.Equal(t, 0.0, HorizontalGap(a, Box(8, 0, 12, 10)))
}

func TestYOverlapRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b BoundingBox
		want float64
	}{
		{"identical", Box(0, 0, 10, 10), Box(0, 0, 10, 10), 1},
		{"half of shorter", Box(0, 0, 10, 20), Box(0, 15, 10, 25), 0.5},
		{"disjoint", Box(0, 0, 10, 10), Box(0, 20, 10, 30), 0},
		{"zero height a", Box(0, 5, 10, 5), Box(0, 0, 10, 10), 0},
		{"zero height b", Box(0, 0, 10, 10), Box(0, 5, 10, 5), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, YOverlapRatio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestIsHorizontal(t *testing.T) {
	assert.True(t, IsHorizontal(0, AngleTolerance))
	assert.True(t, IsHorizontal(0.3, AngleTolerance))
	assert.True(t, IsHorizontal(-0.3, AngleTolerance))
	assert.True(t, IsHorizontal(math.Pi-0.1, AngleTolerance), "right to left")
	assert.True(t, IsHorizontal(-math.Pi+0.1, AngleTolerance))
	assert.False(t, IsHorizontal(math.Pi/2, AngleTolerance))
	assert.False(t, IsHorizontal(0.5, AngleTolerance))
}

func TestIsVertical(t *testing.T) {
	assert.True(t, IsVertical(math.Pi/2, AngleTolerance))
	assert.True(t, IsVertical(-math.Pi/2, AngleTolerance))
	assert.True(t, IsVertical(math.Pi/2-0.2, AngleTolerance))
	assert.False(t, IsVertical(0, AngleTolerance))
	assert.False(t, IsVertical(math.Pi, AngleTolerance))
}
