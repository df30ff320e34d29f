package shell

import (
	"github.com/abiosoft/ishell"
)

func strokesCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "strokes",
		Help: "list the strokes on the canvas",
		Func: func(c *ishell.Context) {
			strokes := ctx.Session.Strokes()
			if len(strokes) == 0 {
				c.Println("canvas is empty")
				return
			}

			for i, s := range strokes {
				box := s.Box()
				c.Printf("[%d]\t%d points\t(%.1f,%.1f)-(%.1f,%.1f)\n",
					i, len(s.Points), box.MinX, box.MinY, box.MaxX, box.MaxY)
			}
		},
	}
}
