package nn

import (
	"fmt"
	"math"

	"github.com/loom-ml/loom/internal/tensor"
)

// SelfAttention is single-head scaled dot-product self-attention.
// Queries, keys and values are projections of the same input:
//
//	scores  = Q @ K^T / sqrt(dim)
//	weights = softmax(scores, -1)
//	out     = weights @ V
//
// No mask is applied unless one is passed to Forward, so every position
// attends to the full sequence by default.
type SelfAttention struct {
	query *Linear
	key   *Linear
	value *Linear

	dim     int
	backend tensor.Backend
}

// NewSelfAttention builds an attention layer over dim-sized embeddings.
func NewSelfAttention(dim int, backend tensor.Backend) *SelfAttention {
	return &SelfAttention{
		query:   NewLinear(dim, dim, backend),
		key:     NewLinear(dim, dim, backend),
		value:   NewLinear(dim, dim, backend),
		dim:     dim,
		backend: backend,
	}
}

// Forward attends over x [batch, seq, dim] and returns the output along
// with the attention weights [batch, seq, seq]. A non-nil mask is added
// to the scores before the softmax; CausalMask builds the usual
// upper-triangular one.
func (a *SelfAttention) Forward(x, mask *tensor.Tensor[float32]) (*tensor.Tensor[float32], *tensor.Tensor[float32]) {
	s := x.Shape()
	if s.Rank() != 3 || s[2] != a.dim {
		panic(&InvalidShapeError{
			Op:   "SelfAttention.Forward",
			Want: fmt.Sprintf("[batch, seq, %d]", a.dim),
			Got:  s,
		})
	}
	batch, seqLen := s[0], s[1]

	flat := x.Reshape(batch*seqLen, a.dim)
	q := a.query.Forward(flat).Reshape(batch, seqLen, a.dim)
	k := a.key.Forward(flat).Reshape(batch, seqLen, a.dim)
	v := a.value.Forward(flat).Reshape(batch, seqLen, a.dim)

	scale := float32(1.0 / math.Sqrt(float64(a.dim)))
	scores := q.BatchMatMul(k.Transpose(0, 2, 1)).MulScalar(scale)
	if mask != nil {
		scores = scores.Add(mask)
	}
	weights := scores.Softmax(-1)
	return weights.BatchMatMul(v), weights
}

func (a *SelfAttention) Parameters() []*Parameter {
	params := a.query.Parameters()
	params = append(params, a.key.Parameters()...)
	params = append(params, a.value.Parameters()...)
	return params
}

// CausalMask returns a [1, seqLen, seqLen] additive mask with -Inf
// above the diagonal, blocking attention to future positions. The
// leading axis broadcasts over the batch.
func CausalMask(seqLen int, backend tensor.Backend) *tensor.Tensor[float32] {
	mask := tensor.Zeros[float32](tensor.NewShape(1, seqLen, seqLen), backend)
	data := mask.Data()
	negInf := float32(math.Inf(-1))
	for i := 0; i < seqLen; i++ {
		for j := i + 1; j < seqLen; j++ {
			data[i*seqLen+j] = negInf
		}
	}
	return mask
}
