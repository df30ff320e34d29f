package ink

import "math"

// GridSize is the default rasterization grid, matching the input size of
// the bundled classifiers.
const GridSize = 28

// rasterMargin keeps the scaled drawing off the grid border so the brush
// never clips at the edge.
const rasterMargin = 4

// Rasterize scales the group into a size x size grayscale grid and draws
// each stroke as a line of soft brush stamps. Intensities are in [0, 1],
// row-major.
func Rasterize(g StrokeGroup, size int) []float64 {
	grid := make([]float64, size*size)
	box := g.Box()

	pad := 0.1 * math.Max(box.Width, box.Height)
	minX := box.MinX - pad
	minY := box.MinY - pad
	pw := box.Width + 2*pad
	ph := box.Height + 2*pad

	scale := 1.0
	if maxDim := math.Max(pw, ph); maxDim > 0 {
		scale = float64(size-rasterMargin) / maxDim
	}
	offX := (float64(size) - pw*scale) / 2
	offY := (float64(size) - ph*scale) / 2

	for _, stroke := range g.Strokes {
		for i := 0; i+1 < len(stroke.Points); i++ {
			x0 := (stroke.Points[i].X-minX)*scale + offX
			y0 := (stroke.Points[i].Y-minY)*scale + offY
			x1 := (stroke.Points[i+1].X-minX)*scale + offX
			y1 := (stroke.Points[i+1].Y-minY)*scale + offY

			steps := int(math.Ceil(math.Hypot(x1-x0, y1-y0)))
			if steps < 1 {
				steps = 1
			}
			for j := 0; j <= steps; j++ {
				t := float64(j) / float64(steps)
				stamp(grid, size, x0+(x1-x0)*t, y0+(y1-y0)*t)
			}
		}
	}
	return grid
}

// stamp draws a 3x3 soft brush centered on the nearest cell, accumulating
// intensity and clamping at 1.
func stamp(grid []float64, size int, x, y float64) {
	cx := int(math.Round(x))
	cy := int(math.Round(y))
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			px, py := cx+dx, cy+dy
			if px < 0 || px >= size || py < 0 || py >= size {
				continue
			}
			v := 0.6
			if dx == 0 && dy == 0 {
				v = 1.0
			}
			idx := py*size + px
			grid[idx] += v
			if grid[idx] > 1 {
				grid[idx] = 1
			}
		}
	}
}
