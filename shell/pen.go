package shell

import (
	"errors"
	"strconv"

	"github.com/abiosoft/ishell"
)

func penCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "pen",
		Help: "incremental stroke capture: pen down | pen move x y | pen up",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("usage: pen down|move|up"))
				return
			}

			switch c.Args[0] {
			case "down":
				if ctx.penDown {
					c.Err(errors.New("pen is already down"))
					return
				}
				ctx.penStroke = ctx.Session.BeginStroke()
				ctx.penDown = true
				c.SetPrompt(ctx.prompt())

			case "move":
				if !ctx.penDown {
					c.Err(errors.New("pen is not down"))
					return
				}
				if len(c.Args) != 3 {
					c.Err(errors.New("usage: pen move x y"))
					return
				}
				x, err := strconv.ParseFloat(c.Args[1], 64)
				if err != nil {
					c.Err(errors.New("bad x coordinate: " + c.Args[1]))
					return
				}
				y, err := strconv.ParseFloat(c.Args[2], 64)
				if err != nil {
					c.Err(errors.New("bad y coordinate: " + c.Args[2]))
					return
				}
				ctx.penT += 16
				if err := ctx.Session.AppendPoint(ctx.penStroke, x, y, ctx.penT); err != nil {
					c.Err(err)
					return
				}

			case "up":
				if !ctx.penDown {
					c.Err(errors.New("pen is not down"))
					return
				}
				ctx.penDown = false

			default:
				c.Err(errors.New("usage: pen down|move|up"))
			}
		},
	}
}
