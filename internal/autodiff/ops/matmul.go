package ops

import "github.com/loom-ml/loom/internal/tensor"

// MatMulOp records c = a @ b for 2D operands.
type MatMulOp struct {
	A, B, Out *tensor.RawTensor
}

func (op *MatMulOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *MatMulOp) Output() *tensor.RawTensor   { return op.Out }

func (op *MatMulOp) Backward(grad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	// dA = grad @ B^T, dB = A^T @ grad.
	gradA := backend.MatMul(grad, backend.Transpose(op.B))
	gradB := backend.MatMul(backend.Transpose(op.A), grad)
	return []*tensor.RawTensor{gradA, gradB}
}

// BatchMatMulOp records c = a @ b for 3D operands, batched over the
// leading axis.
type BatchMatMulOp struct {
	A, B, Out *tensor.RawTensor
}

func (op *BatchMatMulOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *BatchMatMulOp) Output() *tensor.RawTensor   { return op.Out }

func (op *BatchMatMulOp) Backward(grad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	gradA := backend.BatchMatMul(grad, backend.Transpose(op.B, 0, 2, 1))
	gradB := backend.BatchMatMul(backend.Transpose(op.A, 0, 2, 1), grad)
	return []*tensor.RawTensor{gradA, gradB}
}
