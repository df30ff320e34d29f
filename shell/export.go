package shell

import (
	"errors"
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/inkmath/inkmath/export"
)

func exportCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "export",
		Help:      "export the canvas and its recognized expression to pdf, usage: export <file>",
		Completer: createFsEntryCompleter(),
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing output file"))
				return
			}
			name := c.Args[0]

			if ctx.Session.StrokeCount() == 0 {
				c.Err(errors.New("canvas is empty"))
				return
			}

			options := export.PdfGeneratorOptions{PenWidth: ctx.Cfg.PenWidth}
			if ctx.Last != nil {
				options.Expression = ctx.Last.Expression
				options.Result = ctx.Last.Result
			}

			generator := export.CreatePdfGenerator(name, options)
			if err := generator.Generate(ctx.Session.Strokes()); err != nil {
				c.Err(errors.New(fmt.Sprintf("Failed to export %s: %s", name, err.Error())))
				return
			}

			c.Printf("exported canvas to %s\n", name)
		},
	}
}
