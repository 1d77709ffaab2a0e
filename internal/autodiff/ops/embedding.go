package ops

import "github.com/loom-ml/loom/internal/tensor"

// EmbeddingOp records y = weight[indices]. Only the weight receives a
// gradient; indices are not differentiable.
type EmbeddingOp struct {
	Weight, Indices, Out *tensor.RawTensor
}

func (op *EmbeddingOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.Weight, op.Indices}
}

func (op *EmbeddingOp) Output() *tensor.RawTensor { return op.Out }

func (op *EmbeddingOp) Backward(grad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	dim := op.Weight.Shape()[1]
	gradW := tensor.MustNewRaw(op.Weight.Shape(), tensor.Float32, op.Weight.Device())

	// Scatter-add: rows picked several times accumulate their grads.
	g, dst := grad.AsFloat32(), gradW.AsFloat32()
	for i, id := range op.Indices.AsInt32() {
		row := dst[int(id)*dim : (int(id)+1)*dim]
		src := g[i*dim : (i+1)*dim]
		for j := range row {
			row[j] += src[j]
		}
	}
	return []*tensor.RawTensor{gradW, nil}
}
