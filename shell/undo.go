package shell

import (
	"errors"

	"github.com/abiosoft/ishell"
)

func undoCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "undo",
		Help: "remove the last stroke",
		Func: func(c *ishell.Context) {
			if !ctx.Session.UndoLastStroke() {
				c.Err(errors.New("nothing to undo"))
				return
			}
			c.SetPrompt(ctx.prompt())
		},
	}
}
