package classify

import (
	"context"
	"fmt"
	"math"
)

// Linear is a softmax regression model over raw pixel intensities. Small
// enough to train on a handful of samples per digit, yet good enough to
// separate hand-drawn digits on a 28x28 grid.
type Linear struct {
	GridSize int         `json:"gridSize"`
	Weights  [][]float64 `json:"weights"`
	Trained  bool        `json:"trained"`
}

// NewLinear builds an untrained model for bitmaps of gridSize x gridSize.
// Weights hold one row per class; the last column is the bias.
func NewLinear(gridSize int) *Linear {
	weights := make([][]float64, NumClasses)
	for i := range weights {
		weights[i] = make([]float64, gridSize*gridSize+1)
	}
	return &Linear{
		GridSize: gridSize,
		Weights:  weights,
	}
}

// Ready reports whether the model has been trained.
func (l *Linear) Ready() bool {
	return l.Trained
}

// Classify scores a bitmap, returning softmax probabilities per class.
func (l *Linear) Classify(ctx context.Context, bitmap []float64) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(bitmap) != l.GridSize*l.GridSize {
		return nil, fmt.Errorf("bitmap size %d does not match grid %dx%d", len(bitmap), l.GridSize, l.GridSize)
	}
	return softmax(l.logits(bitmap)), nil
}

// logits computes the raw class scores for a bitmap.
func (l *Linear) logits(bitmap []float64) []float64 {
	scores := make([]float64, NumClasses)
	for c := 0; c < NumClasses; c++ {
		w := l.Weights[c]
		s := w[len(w)-1]
		for i, v := range bitmap {
			s += w[i] * v
		}
		scores[c] = s
	}
	return scores
}

// softmax converts logits to probabilities, shifting by the max logit so
// the exponentials cannot overflow.
func softmax(logits []float64) []float64 {
	max := logits[0]
	for _, v := range logits[1:] {
		if v > max {
			max = v
		}
	}

	probs := make([]float64, len(logits))
	sum := 0.0
	for i, v := range logits {
		probs[i] = math.Exp(v - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// Argmax returns the index of the highest probability and its value.
func Argmax(probs []float64) (int, float64) {
	best := 0
	for i, v := range probs {
		if v > probs[best] {
			best = i
		}
	}
	return best, probs[best]
}
