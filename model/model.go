// Package model exposes the transformer language model.
package model

import (
	"github.com/loom-ml/loom/internal/autodiff"
	"github.com/loom-ml/loom/internal/model"
	"github.com/loom-ml/loom/internal/optim"
	"github.com/loom-ml/loom/internal/tensor"
)

type (
	Config      = model.Config
	Transformer = model.Transformer
	Trainer     = model.Trainer
)

// DefaultMaxSeqLen bounds sequence length when the config leaves
// MaxSeqLen zero.
const DefaultMaxSeqLen = model.DefaultMaxSeqLen

// New builds a model from the config on the given backend.
func New(cfg Config, backend tensor.Backend) (*Transformer, error) {
	return model.New(cfg, backend)
}

// NewTrainer wires a model on an autodiff backend to an optimizer for
// prefix-sliced next-token training.
func NewTrainer(m *Transformer, backend *autodiff.Backend, opt optim.Optimizer) *Trainer {
	return model.NewTrainer(m, backend, opt)
}
