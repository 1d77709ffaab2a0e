package ops

import (
	"fmt"

	"github.com/loom-ml/loom/internal/tensor"
)

// reduceBroadcast sums grad down to target, undoing any broadcasting
// the forward pass performed. Leading broadcast axes are summed away,
// size-1 axes are summed with the axis kept.
func reduceBroadcast(grad *tensor.RawTensor, target tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	for grad.Shape().Rank() > target.Rank() {
		grad = backend.SumDim(grad, 0, false)
	}
	for d := 0; d < target.Rank(); d++ {
		if target[d] == 1 && grad.Shape()[d] != 1 {
			grad = backend.SumDim(grad, d, true)
		}
	}
	if !grad.Shape().Equal(target) {
		panic(fmt.Sprintf("ops: gradient shape %v does not reduce to %v", grad.Shape(), target))
	}
	return grad
}

func negate(t *tensor.RawTensor, backend tensor.Backend) *tensor.RawTensor {
	return backend.MulScalar(t, -1)
}

// splitDims resolves dim against shape and returns the element counts
// before, at and after it.
func splitDims(shape tensor.Shape, dim int) (outer, dimSize, inner int) {
	rank := shape.Rank()
	if dim < 0 {
		dim += rank
	}
	if dim < 0 || dim >= rank {
		panic(fmt.Sprintf("ops: dim %d out of range for shape %v", dim, shape))
	}
	outer, inner = 1, 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	for i := dim + 1; i < rank; i++ {
		inner *= shape[i]
	}
	return outer, shape[dim], inner
}
