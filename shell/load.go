package shell

import (
	"errors"
	"fmt"
	"os"

	"github.com/abiosoft/ishell"

	"github.com/inkmath/inkmath/encoding/scrawl"
)

func loadCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "load",
		Help:      "replace the canvas with the strokes from an ink file, usage: load <file>",
		Completer: createFsEntryCompleter(),
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing input file"))
				return
			}
			name := c.Args[0]

			data, err := os.ReadFile(name)
			if err != nil {
				c.Err(errors.New(fmt.Sprintf("Failed to read %s: %s", name, err.Error())))
				return
			}

			drawing := scrawl.Drawing{}
			if err := drawing.UnmarshalBinary(data); err != nil {
				c.Err(errors.New(fmt.Sprintf("Failed to parse %s: %s", name, err.Error())))
				return
			}

			ctx.Session.SetStrokes(drawing.Strokes)
			ctx.Last = nil

			c.Printf("loaded %d strokes from %s\n", len(drawing.Strokes), name)
			c.SetPrompt(ctx.prompt())
		},
	}
}
