package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/inkmath/inkmath/classify"
)

func trainCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "train",
		Help: "train a digit model on the dataset, usage: train [--epochs n] [--rate r] [--augment] [--seed n]",
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("train", flag.ContinueOnError)
			epochs := flagSet.Int("epochs", 30, "training epochs")
			rate := flagSet.Float64("rate", 0.1, "learning rate")
			augment := flagSet.Bool("augment", false, "expand the dataset with distorted copies")
			seed := flagSet.Int64("seed", 1, "shuffle and augmentation seed")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			data := ctx.dataset()
			if data.Len() == 0 {
				c.Err(errors.New("dataset is empty, use dataset add or dataset load first"))
				return
			}

			if *augment {
				before := data.Len()
				data = classify.NewAugmenter(*seed).Augment(data)
				c.Printf("augmented %d samples to %d\n", before, data.Len())
			}

			trainer := classify.NewTrainer(*seed)
			trainer.Epochs = *epochs
			trainer.LearningRate = *rate
			trainer.Progress = func(epoch int, loss float64) {
				c.Printf("epoch %d/%d loss %.4f\n", epoch, *epochs, loss)
			}

			model := classify.NewLinear(data.GridSize)
			if err := trainer.Train(context.Background(), model, data); err != nil {
				c.Err(err)
				return
			}
			c.Printf("accuracy on training data: %.1f%%\n", 100*classify.Accuracy(model, data))

			name, err := ctx.Cfg.ModelFile()
			if err != nil {
				c.Err(err)
				return
			}
			if err := model.Save(name); err != nil {
				c.Err(errors.New(fmt.Sprintf("Failed to save model: %s", err.Error())))
				return
			}
			c.Printf("model saved to %s\n", name)

			ctx.SetClassifier(model)
		},
	}
}
