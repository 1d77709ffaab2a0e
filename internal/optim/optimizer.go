// Package optim implements gradient descent optimizers over explicit
// parameter lists. An optimizer is handed the gradient map produced by
// the autodiff backend and updates parameter buffers in place.
package optim

import (
	"github.com/loom-ml/loom/internal/nn"
	"github.com/loom-ml/loom/internal/tensor"
)

// Optimizer applies one update step from a gradient map keyed by
// parameter RawTensor identity. Parameters without a gradient are left
// untouched.
type Optimizer interface {
	Step(grads map[*tensor.RawTensor]*tensor.RawTensor)
}

// paramData returns the parameter's float32 buffer for in-place update.
func paramData(p *nn.Parameter) []float32 {
	return p.Raw().AsFloat32()
}
