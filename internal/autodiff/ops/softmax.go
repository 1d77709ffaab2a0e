package ops

import "github.com/loom-ml/loom/internal/tensor"

// SoftmaxOp records y = softmax(x, dim). Dim holds the resolved axis.
type SoftmaxOp struct {
	X, Out *tensor.RawTensor
	Dim    int
}

func (op *SoftmaxOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.X} }
func (op *SoftmaxOp) Output() *tensor.RawTensor   { return op.Out }

func (op *SoftmaxOp) Backward(grad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	// dx_j = y_j * (g_j - sum_k g_k * y_k) along the softmax axis.
	outer, dimSize, inner := splitDims(op.Out.Shape(), op.Dim)

	res := tensor.MustNewRaw(op.X.Shape(), tensor.Float32, op.X.Device())
	y, g, dst := op.Out.AsFloat32(), grad.AsFloat32(), res.AsFloat32()
	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			base := o*dimSize*inner + in
			var dot float32
			for k := 0; k < dimSize; k++ {
				dot += g[base+k*inner] * y[base+k*inner]
			}
			for k := 0; k < dimSize; k++ {
				i := base + k*inner
				dst[i] = y[i] * (g[i] - dot)
			}
		}
	}
	return []*tensor.RawTensor{res}
}
