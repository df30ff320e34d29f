package classify

import (
	"math"
	"math/rand"
)

// Augmenter expands a dataset with randomly distorted copies of each
// sample: small rotations, translations, scalings and pixel noise. The
// distortions keep digits recognizable while covering the variation of
// freehand writing.
type Augmenter struct {
	Rotate     float64 // max rotation either way, radians
	Translate  float64 // max shift either way, pixels
	ScaleMin   float64
	ScaleMax   float64
	Noise      float64 // max per-pixel noise either way
	Multiplier int     // distorted copies per sample

	rng *rand.Rand
}

// NewAugmenter returns an augmenter with the default distortion ranges.
// The seed makes augmentation reproducible.
func NewAugmenter(seed int64) *Augmenter {
	return &Augmenter{
		Rotate:     15 * math.Pi / 180,
		Translate:  2,
		ScaleMin:   0.85,
		ScaleMax:   1.15,
		Noise:      0.05,
		Multiplier: 4,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Augment returns a new dataset holding every original sample plus
// Multiplier distorted copies of each.
func (a *Augmenter) Augment(d *Dataset) *Dataset {
	out := NewDataset(d.GridSize)
	for label, samples := range d.Samples {
		for _, bitmap := range samples {
			out.Samples[label] = append(out.Samples[label], bitmap)
			for i := 0; i < a.Multiplier; i++ {
				out.Samples[label] = append(out.Samples[label], a.distort(bitmap, d.GridSize))
			}
		}
	}
	return out
}

// distort applies one random rotation, scale, translation and noise pass.
// The geometric part inverse-maps each output cell into the source bitmap
// and samples it bilinearly, so no holes appear.
func (a *Augmenter) distort(bitmap []float64, size int) []float64 {
	angle := (a.rng.Float64()*2 - 1) * a.Rotate
	scale := a.ScaleMin + a.rng.Float64()*(a.ScaleMax-a.ScaleMin)
	dx := (a.rng.Float64()*2 - 1) * a.Translate
	dy := (a.rng.Float64()*2 - 1) * a.Translate

	out := make([]float64, len(bitmap))
	c := float64(size-1) / 2
	sin, cos := math.Sin(-angle), math.Cos(-angle)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			rx := (float64(x) - c - dx) / scale
			ry := (float64(y) - c - dy) / scale
			sx := rx*cos - ry*sin + c
			sy := rx*sin + ry*cos + c

			v := bilinear(bitmap, size, sx, sy)
			if a.Noise > 0 {
				v += (a.rng.Float64()*2 - 1) * a.Noise
			}
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			out[y*size+x] = v
		}
	}
	return out
}

// bilinear samples the bitmap at a fractional position. Positions outside
// the grid read as empty.
func bilinear(bitmap []float64, size int, x, y float64) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	at := func(px, py int) float64 {
		if px < 0 || px >= size || py < 0 || py >= size {
			return 0
		}
		return bitmap[py*size+px]
	}

	top := at(x0, y0)*(1-fx) + at(x0+1, y0)*fx
	bottom := at(x0, y0+1)*(1-fx) + at(x0+1, y0+1)*fx
	return top*(1-fy) + bottom*fy
}
