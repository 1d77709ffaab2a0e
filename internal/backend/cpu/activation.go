package cpu

import (
	"fmt"
	"math"

	"github.com/loom-ml/loom/internal/tensor"
)

// Softmax normalizes along dim with the usual max-shift for numerical
// stability. Negative dims count from the end.
func (b *CPUBackend) Softmax(t *tensor.RawTensor, dim int) *tensor.RawTensor {
	requireFloat32("softmax", t)
	outer, dimSize, inner := splitAt(t.Shape(), dim)

	out := tensor.MustNewRaw(t.Shape(), tensor.Float32, t.Device())
	src, dst := t.AsFloat32(), out.AsFloat32()

	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			base := o*dimSize*inner + in

			maxVal := src[base]
			for k := 1; k < dimSize; k++ {
				if v := src[base+k*inner]; v > maxVal {
					maxVal = v
				}
			}

			var sum float32
			for k := 0; k < dimSize; k++ {
				e := float32(math.Exp(float64(src[base+k*inner] - maxVal)))
				dst[base+k*inner] = e
				sum += e
			}
			for k := 0; k < dimSize; k++ {
				dst[base+k*inner] /= sum
			}
		}
	}
	return out
}

// splitAt resolves dim (which may be negative) against shape and
// returns the element counts before, at and after it.
func splitAt(shape tensor.Shape, dim int) (outer, dimSize, inner int) {
	rank := shape.Rank()
	if dim < 0 {
		dim += rank
	}
	if dim < 0 || dim >= rank {
		panic(fmt.Sprintf("cpu: dim %d out of range for shape %v", dim, shape))
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
