package ops

import "github.com/loom-ml/loom/internal/tensor"

// SumDimOp records y = sum(x, dim). Dim holds the resolved axis.
type SumDimOp struct {
	X, Out *tensor.RawTensor
	Dim    int
}

func (op *SumDimOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.X} }
func (op *SumDimOp) Output() *tensor.RawTensor   { return op.Out }

func (op *SumDimOp) Backward(grad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{expandDim(grad, op.X.Shape(), op.Dim, 1)}
}

// MeanDimOp records y = mean(x, dim). Dim holds the resolved axis.
type MeanDimOp struct {
	X, Out *tensor.RawTensor
	Dim    int
}

func (op *MeanDimOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.X} }
func (op *MeanDimOp) Output() *tensor.RawTensor   { return op.Out }

func (op *MeanDimOp) Backward(grad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	scale := 1 / float32(op.X.Shape()[op.Dim])
	return []*tensor.RawTensor{expandDim(grad, op.X.Shape(), op.Dim, scale)}
}

// expandDim spreads a reduced gradient back across the reduced axis,
// scaling each copy. The grad may carry the axis as size one or not at
// all; only the element order matters, which is identical either way.
func expandDim(grad *tensor.RawTensor, target tensor.Shape, dim int, scale float32) *tensor.RawTensor {
	outer, dimSize, inner := splitDims(target, dim)

	out := tensor.MustNewRaw(target, tensor.Float32, grad.Device())
	g, dst := grad.AsFloat32(), out.AsFloat32()
	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			v := g[o*inner+in] * scale
			base := o*dimSize*inner + in
			for k := 0; k < dimSize; k++ {
				dst[base+k*inner] = v
			}
		}
	}
	return out
}
