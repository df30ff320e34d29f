package recognize

import (
	"context"
	"strconv"

	"golang.org/x/sync/semaphore"

	"github.com/inkmath/inkmath/classify"
	"github.com/inkmath/inkmath/ink"
	"github.com/inkmath/inkmath/log"
)

// heuristicCutoff is the confidence above which an operator match skips
// the classifier entirely.
const heuristicCutoff = 0.6

// unknown is returned when neither the heuristic nor a classifier can
// name the group.
var unknown = Result{Char: "?", Confidence: 0, Type: Digit}

// Recognizer names stroke groups. Classifier queries are serialized
// through a weighted semaphore so at most one inference is in flight at a
// time, whatever the caller does.
type Recognizer struct {
	classifier classify.Classifier
	sem        *semaphore.Weighted
	gridSize   int
}

// New builds a recognizer over an optional classifier. A nil classifier
// leaves only the operator heuristic.
func New(classifier classify.Classifier) *Recognizer {
	return &Recognizer{
		classifier: classifier,
		sem:        semaphore.NewWeighted(1),
		gridSize:   ink.GridSize,
	}
}

// Recognize names one stroke group. It never fails: when the classifier
// is missing or errors out, the best heuristic answer or an explicit
// unknown placeholder comes back instead.
func (r *Recognizer) Recognize(ctx context.Context, group ink.StrokeGroup) Result {
	heuristic := MatchOperator(group)
	if heuristic != nil && heuristic.Confidence > heuristicCutoff {
		return *heuristic
	}

	if r.classifier != nil && r.classifier.Ready() {
		digit, err := r.classifyDigit(ctx, group)
		if err != nil {
			log.Trace.Printf("classifier failed, falling back to heuristic: %v", err)
		} else {
			if heuristic != nil && heuristic.Confidence > digit.Confidence {
				return *heuristic
			}
			return digit
		}
	}

	if heuristic != nil {
		return *heuristic
	}
	return unknown
}

// classifyDigit rasterizes the group and queries the classifier under the
// inference semaphore.
func (r *Recognizer) classifyDigit(ctx context.Context, group ink.StrokeGroup) (Result, error) {
	bitmap := ink.Rasterize(group, r.gridSize)

	if err := r.sem.Acquire(ctx, 1); err != nil {
		return Result{}, err
	}
	probs, err := r.classifier.Classify(ctx, bitmap)
	r.sem.Release(1)
	if err != nil {
		return Result{}, err
	}

	best, confidence := classify.Argmax(probs)
	return Result{
		Char:       strconv.Itoa(best),
		Confidence: confidence,
		Type:       Digit,
	}, nil
}
