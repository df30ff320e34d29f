package classify

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// patternDataset builds a tiny linearly separable dataset on a small
// grid: label 0 lights the left half, label 1 the right half, label 2
// the top half.
func patternDataset(t *testing.T, gridSize int) *Dataset {
	t.Helper()
	d := NewDataset(gridSize)

	fill := func(label int, lit func(x, y int) bool, bias float64) {
		bitmap := make([]float64, gridSize*gridSize)
		for y := 0; y < gridSize; y++ {
			for x := 0; x < gridSize; x++ {
				if lit(x, y) {
					bitmap[y*gridSize+x] = 0.7 + bias
				}
			}
		}
		require.NoError(t, d.Add(label, bitmap))
	}

	for i := 0; i < 5; i++ {
		bias := float64(i) * 0.05
		fill(0, func(x, y int) bool { return x < gridSize/2 }, bias)
		fill(1, func(x, y int) bool { return x >= gridSize/2 }, bias)
		fill(2, func(x, y int) bool { return y < gridSize/2 }, bias)
	}
	return d
}

func TestSoftmax(t *testing.T) {
	probs := softmax([]float64{1000, 1001, 999})

	sum := 0.0
	for _, p := range probs {
		assert.False(t, math.IsNaN(p), "large logits must not overflow")
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Greater(t, probs[1], probs[0])
	assert.Greater(t, probs[0], probs[2])
}

func TestArgmax(t *testing.T) {
	idx, p := Argmax([]float64{0.1, 0.6, 0.3})
	assert.Equal(t, 1, idx)
	assert.Equal(t, 0.6, p)
}

func TestLinearReadyOnlyAfterTraining(t *testing.T) {
	model := NewLinear(8)
	assert.False(t, model.Ready())

	trainer := NewTrainer(1)
	require.NoError(t, trainer.Train(context.Background(), model, patternDataset(t, 8)))
	assert.True(t, model.Ready())
}

func TestClassifyRejectsWrongSize(t *testing.T) {
	model := NewLinear(8)
	_, err := model.Classify(context.Background(), make([]float64, 10))
	assert.Error(t, err)
}

func TestTrainSeparatesPatterns(t *testing.T) {
	model := NewLinear(8)
	data := patternDataset(t, 8)

	epochs := 0
	trainer := NewTrainer(1)
	trainer.Progress = func(epoch int, loss float64) { epochs = epoch }

	require.NoError(t, trainer.Train(context.Background(), model, data))
	assert.Equal(t, trainer.Epochs, epochs, "progress reported per epoch")
	assert.Equal(t, 1.0, Accuracy(model, data), "linearly separable set learned exactly")

	// The winning probability should be decisive, not a coin flip.
	sample := data.Samples[0][0]
	probs, err := model.Classify(context.Background(), sample)
	require.NoError(t, err)
	best, p := Argmax(probs)
	assert.Equal(t, 0, best)
	assert.Greater(t, p, 0.5)
}

func TestTrainEmptyDataset(t *testing.T) {
	err := NewTrainer(1).Train(context.Background(), NewLinear(8), NewDataset(8))
	assert.Error(t, err)
}

func TestTrainGridMismatch(t *testing.T) {
	data := patternDataset(t, 8)
	err := NewTrainer(1).Train(context.Background(), NewLinear(16), data)
	assert.Error(t, err)
}

func TestTrainHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	model := NewLinear(8)
	err := NewTrainer(1).Train(ctx, model, patternDataset(t, 8))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, model.Ready(), "cancelled training leaves model untrained")
}

func TestModelSaveLoad(t *testing.T) {
	model := NewLinear(8)
	data := patternDataset(t, 8)
	require.NoError(t, NewTrainer(1).Train(context.Background(), model, data))

	path := filepath.Join(t.TempDir(), "model.gz")
	require.NoError(t, model.Save(path))

	loaded, err := LoadModel(path)
	require.NoError(t, err)
	assert.True(t, loaded.Ready())
	assert.Equal(t, model.GridSize, loaded.GridSize)
	assert.Equal(t, 1.0, Accuracy(loaded, data), "weights survive the round trip")
}

func TestLoadModelRejectsGarbage(t *testing.T) {
	_, err := LoadModel(filepath.Join(t.TempDir(), "missing.gz"))
	assert.Error(t, err)
}
