// Package render draws stroke lists to raster images for previews and
// exports.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/inkmath/inkmath/ink"
)

// captionBar is the extra canvas height reserved for the caption line.
const captionBar = 20

// Options control canvas layout and pen appearance.
type Options struct {
	PenWidth float64
	Margin   int
}

// DefaultOptions are the render settings used when the caller has no
// configuration.
func DefaultOptions() Options {
	return Options{PenWidth: 2, Margin: 20}
}

// WritePNG renders the strokes in their natural coordinates onto a white
// canvas and encodes it as PNG. A non-empty caption is drawn beneath the
// ink.
func WritePNG(w io.Writer, strokes []ink.Stroke, caption string, opts Options) error {
	if opts.PenWidth <= 0 {
		opts.PenWidth = DefaultOptions().PenWidth
	}
	if opts.Margin <= 0 {
		opts.Margin = DefaultOptions().Margin
	}

	box := ink.StrokeGroup{Strokes: strokes}.Box()
	width := int(math.Ceil(box.Width)) + 2*opts.Margin
	height := int(math.Ceil(box.Height)) + 2*opts.Margin
	if caption != "" {
		height += captionBar
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	radius := opts.PenWidth / 2
	for _, stroke := range strokes {
		if len(stroke.Points) == 1 {
			p := stroke.Points[0]
			dot(img, p.X-box.MinX+float64(opts.Margin), p.Y-box.MinY+float64(opts.Margin), radius)
			continue
		}
		for i := 0; i+1 < len(stroke.Points); i++ {
			x0 := stroke.Points[i].X - box.MinX + float64(opts.Margin)
			y0 := stroke.Points[i].Y - box.MinY + float64(opts.Margin)
			x1 := stroke.Points[i+1].X - box.MinX + float64(opts.Margin)
			y1 := stroke.Points[i+1].Y - box.MinY + float64(opts.Margin)

			steps := int(math.Ceil(math.Hypot(x1-x0, y1-y0)))
			if steps < 1 {
				steps = 1
			}
			for j := 0; j <= steps; j++ {
				t := float64(j) / float64(steps)
				dot(img, x0+(x1-x0)*t, y0+(y1-y0)*t, radius)
			}
		}
	}

	if caption != "" {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.Black,
			Face: basicfont.Face7x13,
			Dot:  fixed.P(opts.Margin, height-6),
		}
		d.DrawString(caption)
	}

	return png.Encode(w, img)
}

// dot stamps a filled circle of the pen color.
func dot(img *image.RGBA, x, y, radius float64) {
	if radius < 1 {
		radius = 1
	}
	r := int(math.Ceil(radius))
	cx := int(math.Round(x))
	cy := int(math.Round(y))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if float64(dx*dx+dy*dy) <= radius*radius {
				img.Set(cx+dx, cy+dy, color.Black)
			}
		}
	}
}
