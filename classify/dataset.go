package classify

import (
	"encoding/json"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Dataset is a labeled collection of rasterized digit bitmaps used to
// train the linear model.
type Dataset struct {
	GridSize int                 `json:"gridSize"`
	Samples  map[int][][]float64 `json:"samples"`
}

// NewDataset builds an empty dataset for bitmaps of gridSize x gridSize.
func NewDataset(gridSize int) *Dataset {
	return &Dataset{
		GridSize: gridSize,
		Samples:  make(map[int][][]float64),
	}
}

// Add stores a bitmap under a digit label.
func (d *Dataset) Add(label int, bitmap []float64) error {
	if label < 0 || label >= NumClasses {
		return errors.Errorf("label %d out of range", label)
	}
	if len(bitmap) != d.GridSize*d.GridSize {
		return errors.Errorf("bitmap size %d does not match grid %dx%d", len(bitmap), d.GridSize, d.GridSize)
	}
	d.Samples[label] = append(d.Samples[label], bitmap)
	return nil
}

// Len returns the total number of samples across all labels.
func (d *Dataset) Len() int {
	n := 0
	for _, s := range d.Samples {
		n += len(s)
	}
	return n
}

// Counts returns the number of samples per label.
func (d *Dataset) Counts() map[int]int {
	counts := make(map[int]int, len(d.Samples))
	for label, s := range d.Samples {
		counts[label] = len(s)
	}
	return counts
}

// Merge appends all samples from other. Grid sizes must match.
func (d *Dataset) Merge(other *Dataset) error {
	if other.GridSize != d.GridSize {
		return errors.Errorf("grid size mismatch: %d vs %d", other.GridSize, d.GridSize)
	}
	for label, samples := range other.Samples {
		d.Samples[label] = append(d.Samples[label], samples...)
	}
	return nil
}

// Save writes the dataset to path as gzipped JSON.
func (d *Dataset) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create dataset file")
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	if err := json.NewEncoder(zw).Encode(d); err != nil {
		zw.Close()
		return errors.Wrap(err, "encode dataset")
	}
	if err := zw.Close(); err != nil {
		return errors.Wrap(err, "flush dataset")
	}
	return f.Close()
}

// LoadDataset reads a dataset previously written by Save.
func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open dataset file")
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, errors.Wrap(err, "read dataset header")
	}
	defer zr.Close()

	var d Dataset
	if err := json.NewDecoder(zr).Decode(&d); err != nil {
		return nil, errors.Wrap(err, "decode dataset")
	}
	if d.GridSize <= 0 {
		return nil, errors.Errorf("invalid grid size %d", d.GridSize)
	}
	if d.Samples == nil {
		d.Samples = make(map[int][][]float64)
	}
	return &d, nil
}

// ImportImage decodes an image file, scales it to the dataset grid and
// stores it under label. Dark pixels become high intensities so imported
// samples match rasterized ink.
func (d *Dataset) ImportImage(path string, label int) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open image")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return errors.Wrap(err, "decode image")
	}

	scaled := resize.Resize(uint(d.GridSize), uint(d.GridSize), img, resize.Lanczos3)

	bitmap := make([]float64, d.GridSize*d.GridSize)
	bounds := scaled.Bounds()
	for y := 0; y < d.GridSize; y++ {
		for x := 0; x < d.GridSize; x++ {
			r, g, b, _ := scaled.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			lum := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 65535.0
			v := 1.0 - lum
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			bitmap[y*d.GridSize+x] = v
		}
	}

	return d.Add(label, bitmap)
}
