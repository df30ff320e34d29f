package shell

import (
	"context"
	"errors"

	"github.com/abiosoft/ishell"
)

func recognizeCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "recognize",
		Help: "recognize the canvas as an arithmetic expression",
		Func: func(c *ishell.Context) {
			strokes := ctx.Session.Strokes()
			if len(strokes) == 0 {
				c.Err(errors.New("canvas is empty"))
				return
			}

			out := ctx.Pipe.RecognizeAll(context.Background(), strokes)
			ctx.Last = &out

			c.Printf("raw:        %s\n", out.RawExpression)
			c.Printf("expression: %s\n", out.Expression)
			for _, ch := range out.Characters {
				c.Printf("  %s\t%s\t%.2f\n", ch.Char, ch.Type, ch.Confidence)
			}

			if !out.Valid {
				c.Println("expression is not valid, no result")
				return
			}
			c.Printf("result:     %s\n", out.Caption())
		},
	}
}
