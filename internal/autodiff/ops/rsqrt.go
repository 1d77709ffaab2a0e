package ops

import "github.com/loom-ml/loom/internal/tensor"

// RsqrtOp records y = x^(-1/2).
type RsqrtOp struct {
	X, Out *tensor.RawTensor
}

func (op *RsqrtOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.X} }
func (op *RsqrtOp) Output() *tensor.RawTensor   { return op.Out }

func (op *RsqrtOp) Backward(grad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	// dy/dx = -1/2 * x^(-3/2) = -y^3 / 2.
	cube := backend.Mul(op.Out, backend.Mul(op.Out, op.Out))
	return []*tensor.RawTensor{backend.MulScalar(backend.Mul(grad, cube), -0.5)}
}
