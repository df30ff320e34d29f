package classify

import (
	"context"
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

// Trainer fits a Linear model to a dataset with plain stochastic gradient
// descent on the cross-entropy loss.
type Trainer struct {
	LearningRate float64
	Epochs       int
	BatchSize    int

	// Progress, when set, is called once per epoch with the mean loss.
	Progress func(epoch int, loss float64)

	rng *rand.Rand
}

// NewTrainer returns a trainer with defaults that converge on small
// hand-collected datasets. The seed fixes the sample shuffle order.
func NewTrainer(seed int64) *Trainer {
	return &Trainer{
		LearningRate: 0.1,
		Epochs:       30,
		BatchSize:    16,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

type sample struct {
	bitmap []float64
	label  int
}

// Train runs SGD over the dataset and marks the model trained. The
// context is checked between batches so a caller can abandon a long run.
func (t *Trainer) Train(ctx context.Context, model *Linear, data *Dataset) error {
	if data.Len() == 0 {
		return errors.New("dataset is empty")
	}
	if data.GridSize != model.GridSize {
		return errors.Errorf("dataset grid %d does not match model grid %d", data.GridSize, model.GridSize)
	}

	samples := make([]sample, 0, data.Len())
	for label, bitmaps := range data.Samples {
		for _, b := range bitmaps {
			samples = append(samples, sample{bitmap: b, label: label})
		}
	}

	dim := model.GridSize * model.GridSize

	for epoch := 0; epoch < t.Epochs; epoch++ {
		t.rng.Shuffle(len(samples), func(i, j int) {
			samples[i], samples[j] = samples[j], samples[i]
		})

		epochLoss := 0.0
		for i, s := range samples {
			if i%t.BatchSize == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}

			probs := softmax(model.logits(s.bitmap))
			epochLoss += -math.Log(math.Max(probs[s.label], 1e-12))

			for c := 0; c < NumClasses; c++ {
				delta := probs[c]
				if c == s.label {
					delta -= 1
				}
				step := t.LearningRate * delta
				w := model.Weights[c]
				for j, v := range s.bitmap {
					w[j] -= step * v
				}
				w[dim] -= step
			}
		}

		if t.Progress != nil {
			t.Progress(epoch+1, epochLoss/float64(len(samples)))
		}
	}

	model.Trained = true
	return nil
}

// Accuracy returns the fraction of dataset samples the model classifies
// correctly.
func Accuracy(model *Linear, data *Dataset) float64 {
	total, correct := 0, 0
	for label, bitmaps := range data.Samples {
		for _, b := range bitmaps {
			best, _ := Argmax(softmax(model.logits(b)))
			if best == label {
				correct++
			}
			total++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total)
}
