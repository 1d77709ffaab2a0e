package cpu

import (
	"fmt"

	"github.com/loom-ml/loom/internal/tensor"
)

// Embedding gathers rows of weight [vocab,dim] by int32 indices. The
// result has shape indices.Shape() + [dim]. Indices outside [0,vocab)
// are a caller bug and panic; the vocabulary layer maps unknown tokens
// to a valid id before lookup.
func (b *CPUBackend) Embedding(weight, indices *tensor.RawTensor) *tensor.RawTensor {
	requireFloat32("embedding weight", weight)
	if indices.DType() != tensor.Int32 {
		panic(fmt.Sprintf("cpu: embedding indices must be int32, got %s", indices.DType()))
	}
	ws := weight.Shape()
	if ws.Rank() != 2 {
		panic(fmt.Sprintf("cpu: embedding weight must be 2D, got %v", ws))
	}
	vocab, dim := ws[0], ws[1]

	outShape := append(indices.Shape().Clone(), dim)
	out := tensor.MustNewRaw(outShape, tensor.Float32, weight.Device())

	wd, od := weight.AsFloat32(), out.AsFloat32()
	for i, id := range indices.AsInt32() {
		if id < 0 || int(id) >= vocab {
			panic(fmt.Sprintf("cpu: embedding index %d out of range [0, %d)", id, vocab))
		}
		copy(od[i*dim:(i+1)*dim], wd[int(id)*dim:(int(id)+1)*dim])
	}
	return out
}
