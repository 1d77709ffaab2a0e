package nn

import "github.com/loom-ml/loom/internal/tensor"

// ReLU is max(x, 0) as a parameter-free module.
type ReLU struct{}

// NewReLU returns a ReLU activation.
func NewReLU() *ReLU { return &ReLU{} }

func (r *ReLU) Forward(x *tensor.Tensor[float32]) *tensor.Tensor[float32] {
	return x.ReLU()
}

func (r *ReLU) Parameters() []*Parameter { return nil }
