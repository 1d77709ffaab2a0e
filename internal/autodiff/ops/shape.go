package ops

import "github.com/loom-ml/loom/internal/tensor"

// TransposeOp records y = transpose(x, axes). Axes holds the resolved
// permutation.
type TransposeOp struct {
	X, Out *tensor.RawTensor
	Axes   []int
}

func (op *TransposeOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.X} }
func (op *TransposeOp) Output() *tensor.RawTensor   { return op.Out }

func (op *TransposeOp) Backward(grad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	inverse := make([]int, len(op.Axes))
	for i, ax := range op.Axes {
		inverse[ax] = i
	}
	return []*tensor.RawTensor{backend.Transpose(grad, inverse...)}
}

// ReshapeOp records y = reshape(x, shape).
type ReshapeOp struct {
	X, Out *tensor.RawTensor
}

func (op *ReshapeOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.X} }
func (op *ReshapeOp) Output() *tensor.RawTensor   { return op.Out }

func (op *ReshapeOp) Backward(grad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Reshape(grad, op.X.Shape())}
}
