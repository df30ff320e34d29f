// Package classify scores rasterized stroke groups against the ten digit
// classes. It ships a trainable linear softmax model, a remote HTTP
// classifier, and the dataset plus training tooling behind the local one.
package classify

import "context"

// NumClasses is the number of digit classes, 0 through 9. The class index
// is the digit itself.
const NumClasses = 10

// Classifier scores a rasterized bitmap. Classify returns one probability
// per class summing to 1. Ready reports whether the classifier can produce
// scores right now; callers skip classification when it cannot.
type Classifier interface {
	Classify(ctx context.Context, bitmap []float64) ([]float64, error)
	Ready() bool
}
