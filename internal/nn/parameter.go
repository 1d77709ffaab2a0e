package nn

import "github.com/loom-ml/loom/internal/tensor"

// Parameter is a named trainable tensor. Optimizers look up gradients
// by the parameter's RawTensor identity.
type Parameter struct {
	name   string
	tensor *tensor.Tensor[float32]
}

// NewParameter wraps a tensor as a trainable parameter.
func NewParameter(name string, t *tensor.Tensor[float32]) *Parameter {
	return &Parameter{name: name, tensor: t}
}

func (p *Parameter) Name() string                    { return p.name }
func (p *Parameter) Tensor() *tensor.Tensor[float32] { return p.tensor }
func (p *Parameter) Raw() *tensor.RawTensor          { return p.tensor.Raw() }

// NumElements returns the parameter's element count.
func (p *Parameter) NumElements() int { return p.tensor.NumElements() }
