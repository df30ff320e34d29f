package classify

import (
	"encoding/json"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Save writes the model to path as gzipped JSON.
func (l *Linear) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create model file")
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	if err := json.NewEncoder(zw).Encode(l); err != nil {
		zw.Close()
		return errors.Wrap(err, "encode model")
	}
	if err := zw.Close(); err != nil {
		return errors.Wrap(err, "flush model")
	}
	return f.Close()
}

// LoadModel reads a model previously written by Save and checks its
// weight matrix has the expected shape.
func LoadModel(path string) (*Linear, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open model file")
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, errors.Wrap(err, "read model header")
	}
	defer zr.Close()

	var l Linear
	if err := json.NewDecoder(zr).Decode(&l); err != nil {
		return nil, errors.Wrap(err, "decode model")
	}

	if l.GridSize <= 0 {
		return nil, errors.Errorf("invalid grid size %d", l.GridSize)
	}
	if len(l.Weights) != NumClasses {
		return nil, errors.Errorf("expected %d weight rows, got %d", NumClasses, len(l.Weights))
	}
	want := l.GridSize*l.GridSize + 1
	for c, w := range l.Weights {
		if len(w) != want {
			return nil, errors.Errorf("class %d has %d weights, want %d", c, len(w), want)
		}
	}

	return &l, nil
}
