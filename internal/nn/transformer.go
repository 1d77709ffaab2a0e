package nn

import "github.com/loom-ml/loom/internal/tensor"

// TransformerBlock is a post-norm transformer layer: attention and
// feed-forward sublayers, each wrapped in a residual connection with
// layer norm applied after the addition.
//
//	x1 = LayerNorm(x + Attention(x))
//	x2 = LayerNorm(x1 + FFN(x1))
type TransformerBlock struct {
	attn  *SelfAttention
	norm1 *LayerNorm
	ffn   *FFN
	norm2 *LayerNorm
}

// NewTransformerBlock builds a block over dim-sized embeddings with the
// given feed-forward hidden width.
func NewTransformerBlock(dim, hidden int, backend tensor.Backend) *TransformerBlock {
	return &TransformerBlock{
		attn:  NewSelfAttention(dim, backend),
		norm1: NewLayerNorm(dim, backend),
		ffn:   NewFFN(dim, hidden, backend),
		norm2: NewLayerNorm(dim, backend),
	}
}

// Forward applies the block to x [batch, seq, dim], preserving the
// shape. The mask, when non-nil, is forwarded to the attention scores.
func (b *TransformerBlock) Forward(x, mask *tensor.Tensor[float32]) *tensor.Tensor[float32] {
	attnOut, _ := b.attn.Forward(x, mask)
	x1 := b.norm1.Forward(x.Add(attnOut))
	x2 := b.norm2.Forward(x1.Add(b.ffn.Forward(x1)))
	return x2
}

func (b *TransformerBlock) Parameters() []*Parameter {
	params := b.attn.Parameters()
	params = append(params, b.norm1.Parameters()...)
	params = append(params, b.ffn.Parameters()...)
	params = append(params, b.norm2.Parameters()...)
	return params
}
