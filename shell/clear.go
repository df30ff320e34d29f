package shell

import (
	"github.com/abiosoft/ishell"
)

func clearCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "clear",
		Help: "remove all strokes",
		Func: func(c *ishell.Context) {
			ctx.Session.Clear()
			ctx.Last = nil
			c.SetPrompt(ctx.prompt())
		},
	}
}
