package nn

import (
	"fmt"

	"github.com/loom-ml/loom/internal/tensor"
)

const layerNormEps = 1e-5

// LayerNorm normalizes the last axis to zero mean and unit variance,
// then applies a learned per-feature scale (gamma) and shift (beta).
type LayerNorm struct {
	gamma *Parameter
	beta  *Parameter

	dim     int
	backend tensor.Backend
}

// NewLayerNorm builds a layer norm over dim-sized features, gamma
// starting at one and beta at zero.
func NewLayerNorm(dim int, backend tensor.Backend) *LayerNorm {
	name := fmt.Sprintf("layernorm_%d", dim)
	return &LayerNorm{
		gamma:   NewParameter(name+".gamma", tensor.Ones[float32](tensor.NewShape(dim), backend)),
		beta:    NewParameter(name+".beta", tensor.Zeros[float32](tensor.NewShape(dim), backend)),
		dim:     dim,
		backend: backend,
	}
}

// Forward normalizes x over its last axis. Composed from recorded
// primitives so gradients flow to gamma and beta and through the
// statistics.
func (l *LayerNorm) Forward(x *tensor.Tensor[float32]) *tensor.Tensor[float32] {
	s := x.Shape()
	if s.Rank() < 1 || s[s.Rank()-1] != l.dim {
		panic(&InvalidShapeError{
			Op:   "LayerNorm.Forward",
			Want: fmt.Sprintf("[..., %d]", l.dim),
			Got:  s,
		})
	}
	mean := x.MeanDim(-1, true)
	centered := x.Sub(mean)
	variance := centered.Mul(centered).MeanDim(-1, true)
	inv := variance.AddScalar(layerNormEps).Rsqrt()
	normed := centered.Mul(inv)
	return normed.Mul(l.gamma.Tensor()).Add(l.beta.Tensor())
}

func (l *LayerNorm) Parameters() []*Parameter {
	return []*Parameter{l.gamma, l.beta}
}
