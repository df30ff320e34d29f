// Package shell implements the interactive command shell: stroke entry,
// recognition, dataset collection, training and export.
package shell

import (
	"fmt"
	"os"

	"github.com/abiosoft/ishell"

	"github.com/inkmath/inkmath/classify"
	"github.com/inkmath/inkmath/config"
	"github.com/inkmath/inkmath/pipeline"
	"github.com/inkmath/inkmath/recognize"
)

// ShellCtxt holds the state shared by all shell commands.
type ShellCtxt struct {
	Session    *pipeline.Session
	Cfg        *config.Config
	Classifier classify.Classifier
	Pipe       *pipeline.Pipeline
	Dataset    *classify.Dataset

	// Last successful recognition, used as caption by render and export.
	Last *pipeline.Output

	penStroke int
	penDown   bool
	penT      int64
}

func (ctx *ShellCtxt) prompt() string {
	return fmt.Sprintf("[%d]>", ctx.Session.StrokeCount())
}

// SetClassifier swaps the classifier and rebuilds the pipeline around it.
func (ctx *ShellCtxt) SetClassifier(c classify.Classifier) {
	ctx.Classifier = c
	ctx.Pipe = pipeline.New(recognize.New(c))
}

// dataset returns the working dataset, creating it on first use.
func (ctx *ShellCtxt) dataset() *classify.Dataset {
	if ctx.Dataset == nil {
		ctx.Dataset = classify.NewDataset(ctx.Cfg.GridSize)
	}
	return ctx.Dataset
}

func createFsEntryCompleter() func([]string) []string {
	return func(args []string) []string {
		entries, err := os.ReadDir(".")
		if err != nil {
			return nil
		}
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		return names
	}
}

// Run wires up all commands and either processes args as a one-shot
// command or starts the interactive loop.
func Run(cfg *config.Config, classifier classify.Classifier, args []string) error {
	ctx := &ShellCtxt{Session: pipeline.NewSession(), Cfg: cfg}
	ctx.SetClassifier(classifier)

	shell := ishell.New()
	shell.Println("inkmath shell, type 'help' for the command list")
	shell.SetPrompt(ctx.prompt())

	shell.AddCmd(strokeCmd(ctx))
	shell.AddCmd(penCmd(ctx))
	shell.AddCmd(strokesCmd(ctx))
	shell.AddCmd(undoCmd(ctx))
	shell.AddCmd(clearCmd(ctx))
	shell.AddCmd(recognizeCmd(ctx))
	shell.AddCmd(saveCmd(ctx))
	shell.AddCmd(loadCmd(ctx))
	shell.AddCmd(renderCmd(ctx))
	shell.AddCmd(exportCmd(ctx))
	shell.AddCmd(datasetCmd(ctx))
	shell.AddCmd(trainCmd(ctx))
	shell.AddCmd(modelCmd(ctx))
	shell.AddCmd(versionCmd(ctx))

	if len(args) > 0 {
		return shell.Process(args...)
	}

	shell.Run()
	return nil
}
