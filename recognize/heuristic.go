// Package recognize turns a stroke group into a character: a fast
// geometric cascade for operator shapes, backed by a digit classifier for
// everything else.
package recognize

import (
	"math"

	"github.com/inkmath/inkmath/geom"
	"github.com/inkmath/inkmath/ink"
)

// ResultType distinguishes operator matches from classified digits.
type ResultType string

const (
	Digit    ResultType = "digit"
	Operator ResultType = "operator"
)

// Result is one recognized character with the confidence of the match.
type Result struct {
	Char       string     `json:"char"`
	Confidence float64    `json:"confidence"`
	Type       ResultType `json:"type"`
}

// Per-rule confidences. Fixed by rule, not computed from a score.
const (
	equalsConfidence   = 0.85
	plusConfidence     = 0.85
	minusConfidence    = 0.8
	multiplyConfidence = 0.7
	divideConfidence   = 0.75
	slashConfidence    = 0.65
)

// MatchOperator runs the operator rule cascade over a stroke group. Rules
// are checked in a fixed priority order and the first match wins. Returns
// nil when no rule matches.
func MatchOperator(group ink.StrokeGroup) *Result {
	strokes := group.Strokes
	boxes := make([]geom.BoundingBox, len(strokes))
	angles := make([]float64, len(strokes))
	for i, s := range strokes {
		boxes[i] = s.Box()
		angles[i] = s.Angle()
	}

	if r := matchEquals(boxes, angles); r != nil {
		return r
	}
	if r := matchPlus(boxes, angles); r != nil {
		return r
	}
	if r := matchMinus(boxes, angles); r != nil {
		return r
	}
	if r := matchMultiply(angles); r != nil {
		return r
	}
	if r := matchDivideBar(group.Box(), boxes, angles); r != nil {
		return r
	}
	if r := matchSlash(boxes, angles); r != nil {
		return r
	}
	return nil
}

// matchEquals looks for two stacked horizontal bars of similar width.
func matchEquals(boxes []geom.BoundingBox, angles []float64) *Result {
	if len(boxes) != 2 {
		return nil
	}
	if !geom.IsHorizontal(angles[0], geom.AngleTolerance) || !geom.IsHorizontal(angles[1], geom.AngleTolerance) {
		return nil
	}

	dy := math.Abs(boxes[0].CenterY - boxes[1].CenterY)
	avgWidth := (boxes[0].Width + boxes[1].Width) / 2
	if dy <= 3 || dy >= 1.5*avgWidth {
		return nil
	}

	maxW := math.Max(boxes[0].Width, boxes[1].Width)
	if maxW == 0 || math.Min(boxes[0].Width, boxes[1].Width)/maxW <= 0.4 {
		return nil
	}

	return &Result{Char: "=", Confidence: equalsConfidence, Type: Operator}
}

// matchPlus looks for two crossing strokes with nearby centers. The axis
// test is deliberately loose: one horizontal or one vertical stroke is
// enough.
func matchPlus(boxes []geom.BoundingBox, angles []float64) *Result {
	if len(boxes) != 2 {
		return nil
	}

	anyHorizontal := geom.IsHorizontal(angles[0], geom.AngleTolerance) || geom.IsHorizontal(angles[1], geom.AngleTolerance)
	anyVertical := geom.IsVertical(angles[0], geom.AngleTolerance) || geom.IsVertical(angles[1], geom.AngleTolerance)
	if !anyHorizontal && !anyVertical {
		return nil
	}

	dist := math.Hypot(boxes[0].CenterX-boxes[1].CenterX, boxes[0].CenterY-boxes[1].CenterY)
	avgMaxDim := (math.Max(boxes[0].Width, boxes[0].Height) + math.Max(boxes[1].Width, boxes[1].Height)) / 2
	if dist >= 0.5*avgMaxDim {
		return nil
	}

	return &Result{Char: "+", Confidence: plusConfidence, Type: Operator}
}

// matchMinus looks for a single wide horizontal stroke.
func matchMinus(boxes []geom.BoundingBox, angles []float64) *Result {
	if len(boxes) != 1 {
		return nil
	}
	if !geom.IsHorizontal(angles[0], geom.AngleTolerance) {
		return nil
	}
	if boxes[0].AspectRatio() <= 2.5 {
		return nil
	}
	return &Result{Char: "-", Confidence: minusConfidence, Type: Operator}
}

// diagonal reports whether an angle is diagonal in either drawing
// direction.
func diagonal(angle float64) bool {
	a := math.Abs(angle)
	return (a > 0.4 && a < 1.2) || (math.Pi-a > 0.4 && math.Pi-a < 1.2)
}

// matchMultiply looks for two crossing diagonal strokes.
func matchMultiply(angles []float64) *Result {
	if len(angles) != 2 {
		return nil
	}
	if !diagonal(angles[0]) || !diagonal(angles[1]) {
		return nil
	}
	return &Result{Char: "*", Confidence: multiplyConfidence, Type: Operator}
}

// matchDivideBar looks for the three-stroke obelus: one wide horizontal
// bar plus two dots.
func matchDivideBar(groupBox geom.BoundingBox, boxes []geom.BoundingBox, angles []float64) *Result {
	if len(boxes) != 3 {
		return nil
	}

	bars := 0
	dots := 0
	for i, b := range boxes {
		if geom.IsHorizontal(angles[i], geom.AngleTolerance) && b.AspectRatio() > 2 {
			bars++
		}
		if b.Width < 0.4*groupBox.Width && b.Height < 0.4*groupBox.Height {
			dots++
		}
	}
	if bars != 1 || dots < 2 {
		return nil
	}

	return &Result{Char: "/", Confidence: divideConfidence, Type: Operator}
}

// matchSlash looks for a single forward-slash stroke.
func matchSlash(boxes []geom.BoundingBox, angles []float64) *Result {
	if len(boxes) != 1 {
		return nil
	}
	if angles[0] <= -1.3 || angles[0] >= -0.5 {
		return nil
	}
	aspect := boxes[0].AspectRatio()
	if aspect <= 0.5 || aspect >= 3 {
		return nil
	}
	return &Result{Char: "/", Confidence: slashConfidence, Type: Operator}
}
