// Command loom trains and runs tiny transformer language models from
// the terminal. The demo subcommand fits a model on a couple of
// sentences and predicts the next word for a prompt.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/loom-ml/loom/autodiff"
	"github.com/loom-ml/loom/backend/cpu"
	"github.com/loom-ml/loom/model"
	"github.com/loom-ml/loom/optim"
	"github.com/loom-ml/loom/tensor"
	"github.com/loom-ml/loom/vocab"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "loom",
		Short:         "Tiny transformer language models on the CPU",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDemoCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("loom", version)
		},
	}
}

func newDemoCmd() *cobra.Command {
	var (
		epochs    int
		lr        float32
		layers    int
		embedDim  int
		hiddenDim int
		prompt    string
	)
	cmd := &cobra.Command{
		Use:   "demo [sentence]...",
		Short: "Train on a few sentences and predict the next word",
		Long: "Builds a word-level vocabulary from the given sentences, trains a\n" +
			"small transformer on them and prints the predicted next word for\n" +
			"the prompt. With no sentences a built-in pair is used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sentences := args
			if len(sentences) == 0 {
				sentences = []string{
					"hello world how are you",
					"how are you hello world",
				}
			}
			if prompt == "" {
				words := strings.Fields(sentences[0])
				prompt = strings.Join(words[:len(words)-1], " ")
			}
			return runDemo(cmd, sentences, prompt, epochs, lr, layers, embedDim, hiddenDim)
		},
	}
	cmd.Flags().IntVar(&epochs, "epochs", 100, "training passes over the sentences")
	cmd.Flags().Float32Var(&lr, "lr", 1e-3, "Adam learning rate")
	cmd.Flags().IntVar(&layers, "layers", 2, "transformer blocks")
	cmd.Flags().IntVar(&embedDim, "dim", 16, "embedding width")
	cmd.Flags().IntVar(&hiddenDim, "hidden", 32, "feed-forward hidden width")
	cmd.Flags().StringVar(&prompt, "prompt", "", "prompt to complete (default: first sentence minus its last word)")
	return cmd
}

func runDemo(cmd *cobra.Command, sentences []string, prompt string, epochs int, lr float32, layers, embedDim, hiddenDim int) error {
	var words []string
	for _, s := range sentences {
		words = append(words, strings.Fields(s)...)
	}
	v := vocab.New(words)

	backend := autodiff.New(cpu.New())
	m, err := model.New(model.Config{
		VocabSize: v.Size(),
		EmbedDim:  embedDim,
		HiddenDim: hiddenDim,
		NumLayers: layers,
		MaxSeqLen: 128,
	}, backend)
	if err != nil {
		return err
	}
	cmd.Printf("%s, %d parameters\n", m, m.NumParameters())

	trainer := model.NewTrainer(m, backend, optim.NewAdam(m.Parameters(), optim.AdamConfig{LR: lr}))
	for epoch := 1; epoch <= epochs; epoch++ {
		var total float32
		for _, s := range sentences {
			loss, err := trainer.TrainSequence(v.Encode(s))
			if err != nil {
				return err
			}
			total += loss
		}
		if epoch%10 == 0 || epoch == 1 {
			cmd.Printf("epoch %3d  loss %.4f\n", epoch, total/float32(len(sentences)))
		}
	}

	ids := v.Encode(prompt)
	input, err := tensorFromIDs(ids, backend)
	if err != nil {
		return err
	}
	var next int32
	backend.NoGrad(func() {
		next, err = m.Predict(input)
	})
	if err != nil {
		return err
	}
	word, _ := v.Token(next)
	cmd.Printf("%q -> %q\n", prompt, word)
	return nil
}

func tensorFromIDs(ids []int32, backend tensor.Backend) (*tensor.Tensor[int32], error) {
	return tensor.FromSlice(ids, tensor.NewShape(1, len(ids)), backend)
}
