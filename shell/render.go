package shell

import (
	"errors"
	"fmt"
	"os"

	"github.com/abiosoft/ishell"

	"github.com/inkmath/inkmath/render"
)

func renderCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "render",
		Help:      "render the canvas to a png image, usage: render <file>",
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

			f, err := os.Create(name)
			if err != nil {
				c.Err(errors.New(fmt.Sprintf("Failed to create %s: %s", name, err.Error())))
				return
			}
			defer f.Close()

			opts := render.Options{
				PenWidth: ctx.Cfg.PenWidth,
				Margin:   ctx.Cfg.RenderMargin,
			}
			if err := render.WritePNG(f, ctx.Session.Strokes(), ctx.Last.Caption(), opts); err != nil {
				c.Err(errors.New(fmt.Sprintf("Failed to render %s: %s", name, err.Error())))
				return
			}

			c.Printf("rendered canvas to %s\n", name)
		},
	}
}
