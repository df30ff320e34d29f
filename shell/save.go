package shell

import (
	"errors"
	"fmt"
	"os"

	"github.com/abiosoft/ishell"

	"github.com/inkmath/inkmath/encoding/scrawl"
)

func saveCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "save",
		Help:      "save the canvas to an ink file, usage: save <file>",
		Completer: createFsEntryCompleter(),
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing output file"))
				return
			}
			name := c.Args[0]

			drawing := scrawl.Drawing{Strokes: ctx.Session.Strokes()}
			data, err := drawing.MarshalBinary()
			if err != nil {
				c.Err(errors.New(fmt.Sprintf("Failed to encode canvas: %s", err.Error())))
				return
			}

			if err := os.WriteFile(name, data, 0644); err != nil {
				c.Err(errors.New(fmt.Sprintf("Failed to write %s: %s", name, err.Error())))
				return
			}

			c.Printf("saved %d strokes to %s\n", ctx.Session.StrokeCount(), name)
		},
	}
}
