package ops

import "github.com/loom-ml/loom/internal/tensor"

// ReLUOp records y = max(x, 0).
type ReLUOp struct {
	X, Out *tensor.RawTensor
}

func (op *ReLUOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.X} }
func (op *ReLUOp) Output() *tensor.RawTensor   { return op.Out }

func (op *ReLUOp) Backward(grad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	out := tensor.MustNewRaw(op.X.Shape(), tensor.Float32, op.X.Device())
	x, g, dst := op.X.AsFloat32(), grad.AsFloat32(), out.AsFloat32()
	for i := range dst {
		if x[i] > 0 {
			dst[i] = g[i]
		}
	}
	return []*tensor.RawTensor{out}
}
