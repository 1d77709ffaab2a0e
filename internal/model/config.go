package model

import "fmt"

// DefaultMaxSeqLen bounds sequence length when the config leaves
// MaxSeqLen zero.
const DefaultMaxSeqLen = 5000

// Config describes a transformer language model.
type Config struct {
	// VocabSize is the number of distinct token ids.
	VocabSize int
	// EmbedDim is the embedding width carried through the stack.
	EmbedDim int
	// HiddenDim is the feed-forward hidden width inside each block.
	HiddenDim int
	// NumLayers is the number of transformer blocks.
	NumLayers int
	// MaxSeqLen bounds input length; zero means DefaultMaxSeqLen.
	MaxSeqLen int
	// Causal adds an upper-triangular mask to attention scores so
	// positions cannot attend to their future. Off by default: the
	// model then trains on prefix slices instead.
	Causal bool
}

// withDefaults returns the config with zero fields filled in.
func (c Config) withDefaults() Config {
	if c.MaxSeqLen == 0 {
		c.MaxSeqLen = DefaultMaxSeqLen
	}
	return c
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	check := func(name string, v int) error {
		if v <= 0 {
			return fmt.Errorf("model: %s must be positive, got %d", name, v)
		}
		return nil
	}
	if err := check("VocabSize", c.VocabSize); err != nil {
		return err
	}
	if err := check("EmbedDim", c.EmbedDim); err != nil {
		return err
	}
	if err := check("HiddenDim", c.HiddenDim); err != nil {
		return err
	}
	if err := check("NumLayers", c.NumLayers); err != nil {
		return err
	}
	if c.MaxSeqLen < 0 {
		return fmt.Errorf("model: MaxSeqLen must not be negative, got %d", c.MaxSeqLen)
	}
	return nil
}
