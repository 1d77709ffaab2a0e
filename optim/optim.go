// Package optim exposes the optimizers.
package optim

import (
	"github.com/loom-ml/loom/internal/nn"
	"github.com/loom-ml/loom/internal/optim"
)

type (
	Optimizer = optim.Optimizer

	SGD       = optim.SGD
	SGDConfig = optim.SGDConfig

	Adam       = optim.Adam
	AdamConfig = optim.AdamConfig
)

// NewSGD builds an SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, cfg SGDConfig) *SGD {
	return optim.NewSGD(params, cfg)
}

// NewAdam builds an Adam optimizer over the given parameters.
func NewAdam(params []*nn.Parameter, cfg AdamConfig) *Adam {
	return optim.NewAdam(params, cfg)
}
