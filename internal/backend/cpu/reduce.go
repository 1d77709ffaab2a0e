package cpu

import (
	"github.com/loom-ml/loom/internal/tensor"
)

// SumDim sums along dim. With keepDim the reduced axis stays with size
// one, otherwise it is removed.
func (b *CPUBackend) SumDim(t *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	requireFloat32("sum", t)
	outer, dimSize, inner := splitAt(t.Shape(), dim)

	out := tensor.MustNewRaw(reducedShape(t.Shape(), dim, keepDim), tensor.Float32, t.Device())
	src, dst := t.AsFloat32(), out.AsFloat32()
	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			var sum float32
			base := o*dimSize*inner + in
			for k := 0; k < dimSize; k++ {
				sum += src[base+k*inner]
			}
			dst[o*inner+in] = sum
		}
	}
	return out
}

// MeanDim averages along dim.
func (b *CPUBackend) MeanDim(t *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	_, dimSize, _ := splitAt(t.Shape(), dim)
	return b.MulScalar(b.SumDim(t, dim, keepDim), 1/float32(dimSize))
}

// Argmax returns int32 indices of the maximum along dim, removing the
// axis. Ties resolve to the lowest index.
func (b *CPUBackend) Argmax(t *tensor.RawTensor, dim int) *tensor.RawTensor {
	requireFloat32("argmax", t)
	outer, dimSize, inner := splitAt(t.Shape(), dim)

	out := tensor.MustNewRaw(reducedShape(t.Shape(), dim, false), tensor.Int32, t.Device())
	src, dst := t.AsFloat32(), out.AsInt32()
	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			base := o*dimSize*inner + in
			best, bestVal := int32(0), src[base]
			for k := 1; k < dimSize; k++ {
				if v := src[base+k*inner]; v > bestVal {
					best, bestVal = int32(k), v
				}
			}
			dst[o*inner+in] = best
		}
	}
	return out
}

func reducedShape(shape tensor.Shape, dim int, keepDim bool) tensor.Shape {
	if dim < 0 {
		dim += shape.Rank()
	}
	out := make(tensor.Shape, 0, shape.Rank())
	for i, d := range shape {
		switch {
		case i != dim:
			out = append(out, d)
		case keepDim:
			out = append(out, 1)
		}
	}
	if len(out) == 0 {
		out = tensor.NewShape(1)
	}
	return out
}
