// Package segment groups raw strokes into character candidates by spatial
// clustering. Strokes that overlap horizontally or sit within an adaptive
// gap of each other are merged into one group.
package segment

import (
	"sort"

	"github.com/inkmath/inkmath/geom"
	"github.com/inkmath/inkmath/ink"
)

const (
	// minGapThreshold is the floor for the adaptive gap, so very small
	// writing still clusters.
	minGapThreshold = 15.0

	// gapHeightFactor scales the average stroke height into the gap
	// threshold.
	gapHeightFactor = 0.5

	// overlapMarginFactor widens the X overlap test relative to the gap
	// threshold.
	overlapMarginFactor = 0.3
)

// Group clusters strokes into stroke groups ordered left to right by
// group center. The input slice is not modified.
func Group(strokes []ink.Stroke) []ink.StrokeGroup {
	switch len(strokes) {
	case 0:
		return []ink.StrokeGroup{}
	case 1:
		return []ink.StrokeGroup{{Strokes: []ink.Stroke{strokes[0]}}}
	}

	sorted := make([]ink.Stroke, len(strokes))
	copy(sorted, strokes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Box().MinX < sorted[j].Box().MinX
	})

	boxes := make([]geom.BoundingBox, len(sorted))
	for i, s := range sorted {
		boxes[i] = s.Box()
	}

	avgHeight := 0.0
	for _, b := range boxes {
		avgHeight += b.Height
	}
	avgHeight /= float64(len(boxes))

	gapThreshold := avgHeight * gapHeightFactor
	if gapThreshold < minGapThreshold {
		gapThreshold = minGapThreshold
	}
	overlapMargin := gapThreshold * overlapMarginFactor

	uf := newUnionFind(len(sorted))
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if shouldMerge(boxes[i], boxes[j], gapThreshold, overlapMargin) {
				uf.union(i, j)
			}
		}
	}

	// Gather members under their roots in first-seen order so the result
	// is deterministic.
	order := make([]int, 0)
	members := make(map[int][]int)
	for i := range sorted {
		root := uf.find(i)
		if _, seen := members[root]; !seen {
			order = append(order, root)
		}
		members[root] = append(members[root], i)
	}

	groups := make([]ink.StrokeGroup, 0, len(order))
	for _, root := range order {
		g := ink.StrokeGroup{}
		for _, idx := range members[root] {
			g.Strokes = append(g.Strokes, sorted[idx])
		}
		groups = append(groups, g)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Box().CenterX < groups[j].Box().CenterX
	})

	return groups
}

// shouldMerge decides whether two stroke boxes belong to the same
// character.
func shouldMerge(a, b geom.BoundingBox, gapThreshold, overlapMargin float64) bool {
	if geom.OverlapsX(a, b, overlapMargin) {
		return geom.YOverlapRatio(a, b) > 0.1
	}

	gap := geom.HorizontalGap(a, b)
	return gap > 0 && gap < gapThreshold && geom.YOverlapRatio(a, b) > 0.3
}

type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[rb] = ra
	}
}
