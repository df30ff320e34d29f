package shell

import (
	"github.com/abiosoft/ishell"

	"github.com/inkmath/inkmath/version"
)

func versionCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "version",
		Help: "print the tool version",
		Func: func(c *ishell.Context) {
			c.Println(version.Version)
		},
	}
}
