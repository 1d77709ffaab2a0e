package ops

import "github.com/loom-ml/loom/internal/tensor"

// AddScalarOp records y = x + s. The gradient passes through unchanged.
type AddScalarOp struct {
	X, Out *tensor.RawTensor
}

func (op *AddScalarOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.X} }
func (op *AddScalarOp) Output() *tensor.RawTensor   { return op.Out }

func (op *AddScalarOp) Backward(grad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{grad}
}

// MulScalarOp records y = x * s.
type MulScalarOp struct {
	X, Out *tensor.RawTensor
	Scalar float32
}

func (op *MulScalarOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.X} }
func (op *MulScalarOp) Output() *tensor.RawTensor   { return op.Out }

func (op *MulScalarOp) Backward(grad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.MulScalar(grad, op.Scalar)}
}
