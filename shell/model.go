package shell

import (
	"errors"
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/inkmath/inkmath/classify"
)

func modelCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "model",
		Help:      "inspect or load the digit model, usage: model info | load [file]",
		Completer: createFsEntryCompleter(),
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing subcommand, see help model"))
				return
			}

			switch c.Args[0] {
			case "info":
				if ctx.Classifier == nil {
					c.Println("no classifier, digits are recognized as ?")
					return
				}
				switch m := ctx.Classifier.(type) {
				case *classify.Linear:
					c.Printf("linear model, grid %dx%d, trained: %v\n", m.GridSize, m.GridSize, m.Trained)
				case *classify.Remote:
					c.Printf("remote classifier at %s\n", m.URL)
				default:
					c.Printf("classifier ready: %v\n", ctx.Classifier.Ready())
				}
			case "load":
				name := ""
				if len(c.Args) > 1 {
					name = c.Args[1]
				} else {
					var err error
					name, err = ctx.Cfg.ModelFile()
					if err != nil {
						c.Err(err)
						return
					}
				}

				model, err := classify.LoadModel(name)
				if err != nil {
					c.Err(errors.New(fmt.Sprintf("Failed to load model: %s", err.Error())))
					return
				}
				ctx.SetClassifier(model)
				c.Printf("loaded model from %s\n", name)
			default:
				c.Err(errors.New(fmt.Sprintf("unknown subcommand %s", c.Args[0])))
			}
		},
	}
}
