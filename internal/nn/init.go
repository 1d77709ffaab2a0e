package nn

import (
	"math"

	"github.com/loom-ml/loom/internal/tensor"
)

// xavierUniform draws weights uniformly from [-b, b] with
// b = sqrt(6 / (fanIn + fanOut)).
func xavierUniform(fanIn, fanOut int, shape tensor.Shape, backend tensor.Backend) *tensor.Tensor[float32] {
	bound := float32(math.Sqrt(6.0 / float64(fanIn+fanOut)))
	return tensor.Uniform(-bound, bound, shape, backend)
}
