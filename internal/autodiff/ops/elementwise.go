package ops

import "github.com/loom-ml/loom/internal/tensor"

// AddOp records c = a + b.
type AddOp struct {
	A, B, Out *tensor.RawTensor
}

func (op *AddOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *AddOp) Output() *tensor.RawTensor   { return op.Out }

func (op *AddOp) Backward(grad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		reduceBroadcast(grad, op.A.Shape(), backend),
		reduceBroadcast(grad, op.B.Shape(), backend),
	}
}

// SubOp records c = a - b.
type SubOp struct {
	A, B, Out *tensor.RawTensor
}

func (op *SubOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *SubOp) Output() *tensor.RawTensor   { return op.Out }

func (op *SubOp) Backward(grad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		reduceBroadcast(grad, op.A.Shape(), backend),
		reduceBroadcast(negate(grad, backend), op.B.Shape(), backend),
	}
}

// MulOp records c = a * b (elementwise).
type MulOp struct {
	A, B, Out *tensor.RawTensor
}

func (op *MulOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *MulOp) Output() *tensor.RawTensor   { return op.Out }

func (op *MulOp) Backward(grad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		reduceBroadcast(backend.Mul(grad, op.B), op.A.Shape(), backend),
		reduceBroadcast(backend.Mul(grad, op.A), op.B.Shape(), backend),
	}
}

// DivOp records c = a / b (elementwise).
type DivOp struct {
	A, B, Out *tensor.RawTensor
}

func (op *DivOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *DivOp) Output() *tensor.RawTensor   { return op.Out }

func (op *DivOp) Backward(grad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	// d(a/b)/da = 1/b, d(a/b)/db = -a/b^2 = -out/b.
	gradA := backend.Div(grad, op.B)
	gradB := negate(backend.Mul(grad, backend.Div(op.Out, op.B)), backend)
	return []*tensor.RawTensor{
		reduceBroadcast(gradA, op.A.Shape(), backend),
		reduceBroadcast(gradB, op.B.Shape(), backend),
	}
}
