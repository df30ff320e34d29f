// Package export writes drawings and their recognized expressions to PDF.
package export

import (
	"strconv"

	"github.com/unidoc/unipdf/v3/contentstream"
	"github.com/unidoc/unipdf/v3/contentstream/draw"
	"github.com/unidoc/unipdf/v3/creator"

	"github.com/inkmath/inkmath/ink"
)

var pageSize = creator.PageSize{445, 594}

// pageMargin keeps the ink off the page edges; captionZone reserves room
// for the expression line under the drawing.
const (
	pageMargin  = 40.0
	captionZone = 60.0
)

type PdfGenerator struct {
	outputFilePath string
	options        PdfGeneratorOptions
}

type PdfGeneratorOptions struct {
	Expression string
	Result     *float64
	PenWidth   float64
}

func CreatePdfGenerator(outputFilePath string, options PdfGeneratorOptions) *PdfGenerator {
	return &PdfGenerator{outputFilePath: outputFilePath, options: options}
}

// Generate writes the strokes, scaled to fit the page, plus the caption
// line to a single-page PDF.
func (p *PdfGenerator) Generate(strokes []ink.Stroke) error {
	c := creator.New()
	c.SetPageSize(pageSize)
	page := c.NewPage()

	box := ink.StrokeGroup{Strokes: strokes}.Box()

	drawWidth := c.Width() - 2*pageMargin
	drawHeight := c.Height() - 2*pageMargin - captionZone
	scale := 1.0
	if box.Width > 0 && box.Height > 0 {
		scale = drawWidth / box.Width
		if s := drawHeight / box.Height; s < scale {
			scale = s
		}
	}

	penWidth := p.options.PenWidth
	if penWidth <= 0 {
		penWidth = 1.5
	}

	contentCreator := contentstream.NewContentCreator()
	for _, stroke := range strokes {
		if len(stroke.Points) < 2 {
			continue
		}

		path := draw.NewPath()
		for i := 0; i < len(stroke.Points); i++ {
			x := (stroke.Points[i].X-box.MinX)*scale + pageMargin
			y := (stroke.Points[i].Y-box.MinY)*scale + pageMargin
			path = path.AppendPoint(draw.NewPoint(x, c.Height()-y))
		}
		contentCreator.Add_q()
		contentCreator.Add_w(penWidth)
		contentCreator.Add_rg(0, 0, 0)

		draw.DrawPathWithCreator(path, contentCreator)

		contentCreator.Add_S()
		contentCreator.Add_Q()
	}

	ops := contentCreator.Operations()
	if err := page.AppendContentStream(string(ops.Bytes())); err != nil {
		return err
	}

	if p.options.Expression != "" {
		text := p.options.Expression
		if p.options.Result != nil {
			text += " = " + strconv.FormatFloat(*p.options.Result, 'f', -1, 64)
		}
		par := c.NewParagraph(text)
		par.SetFontSize(14)
		par.SetPos(pageMargin, c.Height()-captionZone+10)
		if err := c.Draw(par); err != nil {
			return err
		}
	}

	return c.WriteToFile(p.outputFilePath)
}
