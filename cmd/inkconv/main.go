package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkmath/inkmath/classify"
	"github.com/inkmath/inkmath/config"
	"github.com/inkmath/inkmath/encoding/scrawl"
	"github.com/inkmath/inkmath/export"
	"github.com/inkmath/inkmath/pipeline"
	"github.com/inkmath/inkmath/recognize"
	"github.com/inkmath/inkmath/render"
)

func main() {
	inputName := flag.String("i", "", "ink file to convert")
	outputName := flag.String("o", "", "output filename")
	extract := flag.String("e", "", "extract, p - pdf, g - png, t - recognized text")
	flag.Parse()
	var err error

	switch *extract {

	case "t":
		err = totext(*inputName, *outputName)
	case "g":
		err = topng(*inputName, *outputName)
	case "":
		fallthrough
	case "p":
		err = topdf(*inputName, *outputName)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadDrawing(inputName string) (*scrawl.Drawing, error) {
	if inputName == "" {
		return nil, errors.New("missing input file")
	}

	data, err := os.ReadFile(inputName)
	if err != nil {
		return nil, err
	}

	drawing := &scrawl.Drawing{}
	if err := drawing.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("can't parse %s %w", inputName, err)
	}
	return drawing, nil
}

func recognized(drawing *scrawl.Drawing, cfg config.Config) pipeline.Output {
	pipe := pipeline.New(recognize.New(buildClassifier(cfg)))
	return pipe.RecognizeAll(context.Background(), drawing.Strokes)
}

func buildClassifier(cfg config.Config) classify.Classifier {
	if cfg.RemoteURL != "" {
		return classify.NewRemote(cfg.RemoteURL, cfg.RemoteKey, cfg.RemoteHMAC)
	}

	name, err := cfg.ModelFile()
	if err != nil {
		return nil
	}
	if _, err := os.Stat(name); err != nil {
		return nil
	}

	model, err := classify.LoadModel(name)
	if err != nil {
		return nil
	}
	return model
}

func outputOrDefault(inputName, outputName, ext string) string {
	if outputName != "" {
		return outputName
	}
	nameOnly := strings.TrimSuffix(inputName, filepath.Ext(inputName))
	return nameOnly + ext
}

func topdf(inputName, outputName string) error {
	drawing, err := loadDrawing(inputName)
	if err != nil {
		return err
	}
	outputName = outputOrDefault(inputName, outputName, ".pdf")

	cfg, _ := config.Load()
	out := recognized(drawing, cfg)

	options := export.PdfGeneratorOptions{
		Expression: out.Expression,
		Result:     out.Result,
		PenWidth:   cfg.PenWidth,
	}
	gen := export.CreatePdfGenerator(outputName, options)
	return gen.Generate(drawing.Strokes)
}

func topng(inputName, outputName string) error {
	drawing, err := loadDrawing(inputName)
	if err != nil {
		return err
	}
	outputName = outputOrDefault(inputName, outputName, ".png")

	cfg, _ := config.Load()
	out := recognized(drawing, cfg)

	f, err := os.Create(outputName)
	if err != nil {
		return fmt.Errorf("can't create outputfile %w", err)
	}
	defer f.Close()

	opts := render.Options{
		PenWidth: cfg.PenWidth,
		Margin:   cfg.RenderMargin,
	}
	return render.WritePNG(f, drawing.Strokes, out.Caption(), opts)
}

func totext(inputName, outputName string) error {
	drawing, err := loadDrawing(inputName)
	if err != nil {
		return err
	}
	outputName = outputOrDefault(inputName, outputName, ".txt")

	cfg, _ := config.Load()
	out := recognized(drawing, cfg)

	line := out.Caption()
	if line == "" {
		line = out.RawExpression
	}

	return os.WriteFile(outputName, []byte(line+"\n"), 0644)
}
