package shell

import (
	"errors"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/inkmath/inkmath/ink"
)

func strokeCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "stroke",
		Help: "add a complete stroke from x y coordinate pairs",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 || len(c.Args)%2 != 0 {
				c.Err(errors.New("usage: stroke x y [x y ...]"))
				return
			}

			points := make([]ink.Point, 0, len(c.Args)/2)
			for i := 0; i+1 < len(c.Args); i += 2 {
				x, err := strconv.ParseFloat(c.Args[i], 64)
				if err != nil {
					c.Err(errors.New("bad x coordinate: " + c.Args[i]))
					return
				}
				y, err := strconv.ParseFloat(c.Args[i+1], 64)
				if err != nil {
					c.Err(errors.New("bad y coordinate: " + c.Args[i+1]))
					return
				}
				ctx.penT += 16
				points = append(points, ink.Point{X: x, Y: y, T: ctx.penT})
			}

			ctx.Session.AddStroke(points)
			c.SetPrompt(ctx.prompt())
		},
	}
}
