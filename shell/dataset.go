package shell

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/inkmath/inkmath/classify"
	"github.com/inkmath/inkmath/ink"
)

func datasetCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "dataset",
		Help:      "manage training samples, usage: dataset add <digit> | import <image> <digit> | info | save [file] | load [file]",
		Completer: createFsEntryCompleter(),
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing subcommand, see help dataset"))
				return
			}

			switch c.Args[0] {
			case "add":
				datasetAdd(ctx, c)
			case "import":
				datasetImport(ctx, c)
			case "info":
				datasetInfo(ctx, c)
			case "save":
				datasetSave(ctx, c)
			case "load":
				datasetLoad(ctx, c)
			default:
				c.Err(errors.New(fmt.Sprintf("unknown subcommand %s", c.Args[0])))
			}
		},
	}
}

// datasetAdd rasterizes the whole canvas as one sample of the given digit.
func datasetAdd(ctx *ShellCtxt, c *ishell.Context) {
	if len(c.Args) < 2 {
		c.Err(errors.New("missing digit label"))
		return
	}
	label, err := strconv.Atoi(c.Args[1])
	if err != nil {
		c.Err(errors.New(fmt.Sprintf("not a digit: %s", c.Args[1])))
		return
	}

	strokes := ctx.Session.Strokes()
	if len(strokes) == 0 {
		c.Err(errors.New("canvas is empty"))
		return
	}

	data := ctx.dataset()
	bitmap := ink.Rasterize(ink.StrokeGroup{Strokes: strokes}, data.GridSize)
	if err := data.Add(label, bitmap); err != nil {
		c.Err(err)
		return
	}
	c.Printf("added sample for %d, dataset has %d samples\n", label, data.Len())
}

func datasetImport(ctx *ShellCtxt, c *ishell.Context) {
	if len(c.Args) < 3 {
		c.Err(errors.New("usage: dataset import <image> <digit>"))
		return
	}
	label, err := strconv.Atoi(c.Args[2])
	if err != nil {
		c.Err(errors.New(fmt.Sprintf("not a digit: %s", c.Args[2])))
		return
	}

	data := ctx.dataset()
	if err := data.ImportImage(c.Args[1], label); err != nil {
		c.Err(err)
		return
	}
	c.Printf("imported %s as %d, dataset has %d samples\n", c.Args[1], label, data.Len())
}

func datasetInfo(ctx *ShellCtxt, c *ishell.Context) {
	data := ctx.dataset()
	c.Printf("grid: %dx%d, samples: %d\n", data.GridSize, data.GridSize, data.Len())

	counts := data.Counts()
	labels := make([]int, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Ints(labels)
	for _, label := range labels {
		c.Printf("  %d: %d\n", label, counts[label])
	}
}

func datasetSave(ctx *ShellCtxt, c *ishell.Context) {
	name, err := datasetPath(ctx, c.Args)
	if err != nil {
		c.Err(err)
		return
	}
	data := ctx.dataset()
	if err := data.Save(name); err != nil {
		c.Err(err)
		return
	}
	c.Printf("saved %d samples to %s\n", data.Len(), name)
}

func datasetLoad(ctx *ShellCtxt, c *ishell.Context) {
	name, err := datasetPath(ctx, c.Args)
	if err != nil {
		c.Err(err)
		return
	}
	data, err := classify.LoadDataset(name)
	if err != nil {
		c.Err(err)
		return
	}
	ctx.Dataset = data
	c.Printf("loaded %d samples from %s\n", data.Len(), name)
}

// datasetPath resolves an explicit file argument, falling back to the
// configured dataset location.
func datasetPath(ctx *ShellCtxt, args []string) (string, error) {
	if len(args) > 1 {
		return args[1], nil
	}
	return ctx.Cfg.DatasetFile()
}
