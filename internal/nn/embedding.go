package nn

import (
	"fmt"

	"github.com/loom-ml/loom/internal/tensor"
)

// Embedding maps int32 token ids to learned dense rows of a
// [numEmbeddings, dim] table initialized from N(0, 1).
type Embedding struct {
	weight *Parameter

	numEmbeddings int
	dim           int
	backend       tensor.Backend
}

// NewEmbedding builds an embedding table.
func NewEmbedding(numEmbeddings, dim int, backend tensor.Backend) *Embedding {
	return &Embedding{
		weight: NewParameter(fmt.Sprintf("embedding_%dx%d.weight", numEmbeddings, dim),
			tensor.Randn(tensor.NewShape(numEmbeddings, dim), backend)),
		numEmbeddings: numEmbeddings,
		dim:           dim,
		backend:       backend,
	}
}

// Forward gathers rows for indices of any shape, producing
// indices.Shape() + [dim].
func (e *Embedding) Forward(indices *tensor.Tensor[int32]) *tensor.Tensor[float32] {
	return e.weight.Tensor().Embedding(indices)
}

func (e *Embedding) Parameters() []*Parameter {
	return []*Parameter{e.weight}
}
