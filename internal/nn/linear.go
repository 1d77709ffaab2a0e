package nn

import (
	"fmt"

	"github.com/loom-ml/loom/internal/tensor"
)

// Linear computes y = x @ W^T + b over the last axis. The weight is
// stored [out, in] and Xavier-initialized; the bias starts at zero.
type Linear struct {
	weight *Parameter
	bias   *Parameter

	inFeatures  int
	outFeatures int
	backend     tensor.Backend
}

// NewLinear builds a linear layer mapping inFeatures to outFeatures.
func NewLinear(inFeatures, outFeatures int, backend tensor.Backend) *Linear {
	name := fmt.Sprintf("linear_%dx%d", inFeatures, outFeatures)
	return &Linear{
		weight: NewParameter(name+".weight",
			xavierUniform(inFeatures, outFeatures, tensor.NewShape(outFeatures, inFeatures), backend)),
		bias: NewParameter(name+".bias",
			tensor.Zeros[float32](tensor.NewShape(outFeatures), backend)),
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		backend:     backend,
	}
}

// Forward applies the layer to a 2D input [n, in] -> [n, out].
func (l *Linear) Forward(x *tensor.Tensor[float32]) *tensor.Tensor[float32] {
	s := x.Shape()
	if s.Rank() != 2 || s[1] != l.inFeatures {
		panic(&InvalidShapeError{
			Op:   "Linear.Forward",
			Want: fmt.Sprintf("[n, %d]", l.inFeatures),
			Got:  s,
		})
	}
	return x.MatMul(l.weight.Tensor().Transpose()).Add(l.bias.Tensor())
}

func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}
