package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmath/inkmath/ink"
)

// vline builds a vertical stroke at x spanning [y0, y1].
func vline(x, y0, y1 float64) ink.Stroke {
	return ink.Stroke{Points: []ink.Point{{X: x, Y: y0}, {X: x, Y: y1}}}
}

// hline builds a nearly horizontal stroke at y spanning [x0, x1], with
// the slight vertical jitter of a real pen.
func hline(y, x0, x1 float64) ink.Stroke {
	return ink.Stroke{Points: []ink.Point{{X: x0, Y: y}, {X: x1, Y: y + 2}}}
}

func TestGroupEmpty(t *testing.T) {
	groups := Group(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestGroupSingle(t *testing.T) {
	groups := Group([]ink.Stroke{vline(10, 0, 50)})
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Strokes, 1)
}

func TestGroupPlusSignMerges(t *testing.T) {
	// A plus sign: vertical bar crossed by a horizontal bar. The boxes
	// overlap in X, so they must form one group.
	strokes := []ink.Stroke{
		vline(50, 0, 40),
		hline(20, 30, 70),
	}
	groups := Group(strokes)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Strokes, 2)
}

func TestGroupSeparatedCharacters(t *testing.T) {
	// Two digit-sized strokes far apart stay separate.
	strokes := []ink.Stroke{
		vline(0, 0, 40),
		vline(200, 0, 40),
	}
	groups := Group(strokes)
	assert.Len(t, groups, 2)
}

func TestGroupNearbyStrokesMerge(t *testing.T) {
	// Gap below the adaptive threshold with strong vertical overlap, as
	// in the two strokes of a "4".
	strokes := []ink.Stroke{
		vline(0, 0, 40),
		vline(10, 0, 40),
	}
	groups := Group(strokes)
	assert.Len(t, groups, 1)
}

func TestGroupOrderedLeftToRight(t *testing.T) {
	// Input order is scrambled; output groups must come back sorted by
	// center X.
	strokes := []ink.Stroke{
		vline(300, 0, 40),
		vline(0, 0, 40),
		vline(150, 0, 40),
	}
	groups := Group(strokes)
	require.Len(t, groups, 3)

	prev := groups[0].Box().CenterX
	for _, g := range groups[1:] {
		assert.Greater(t, g.Box().CenterX, prev)
		prev = g.Box().CenterX
	}
}

func TestGroupTransitiveMerge(t *testing.T) {
	// a-b merge and b-c merge must pull all three together even though
	// a and c alone are too far apart.
	strokes := []ink.Stroke{
		vline(0, 0, 40),
		vline(10, 0, 40),
		vline(20, 0, 40),
	}
	groups := Group(strokes)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Strokes, 3)
}

func TestGroupDifferentRowsStaySeparate(t *testing.T) {
	// Horizontally close but no vertical overlap: separate characters.
	strokes := []ink.Stroke{
		vline(0, 0, 40),
		vline(10, 100, 140),
	}
	groups := Group(strokes)
	assert.Len(t, groups, 2)
}

func TestGroupDoesNotModifyInput(t *testing.T) {
	strokes := []ink.Stroke{
		vline(300, 0, 40),
		vline(0, 0, 40),
	}
	Group(strokes)
	assert.Equal(t, 300.0, strokes[0].Points[0].X, "input order preserved")
}
