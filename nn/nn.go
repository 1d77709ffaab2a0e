// Package nn exposes the neural network layers.
package nn

import (
	"github.com/loom-ml/loom/internal/nn"
	"github.com/loom-ml/loom/internal/tensor"
)

type (
	Module    = nn.Module
	Parameter = nn.Parameter

	Linear                       = nn.Linear
	Embedding                    = nn.Embedding
	SinusoidalPositionalEncoding = nn.SinusoidalPositionalEncoding
	SelfAttention                = nn.SelfAttention
	LayerNorm                    = nn.LayerNorm
	FFN                          = nn.FFN
	ReLU                         = nn.ReLU
	TransformerBlock             = nn.TransformerBlock
	CrossEntropyLoss             = nn.CrossEntropyLoss

	SequenceTooLongError = nn.SequenceTooLongError
	InvalidShapeError    = nn.InvalidShapeError
)

// NewParameter wraps a tensor as a trainable parameter.
func NewParameter(name string, t *tensor.Tensor[float32]) *Parameter {
	return nn.NewParameter(name, t)
}

// NewLinear builds a linear layer mapping inFeatures to outFeatures.
func NewLinear(inFeatures, outFeatures int, backend tensor.Backend) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, backend)
}

// NewEmbedding builds an embedding table.
func NewEmbedding(numEmbeddings, dim int, backend tensor.Backend) *Embedding {
	return nn.NewEmbedding(numEmbeddings, dim, backend)
}

// NewSinusoidalPositionalEncoding precomputes a positional table.
func NewSinusoidalPositionalEncoding(maxLen, dim int, backend tensor.Backend) *SinusoidalPositionalEncoding {
	return nn.NewSinusoidalPositionalEncoding(maxLen, dim, backend)
}

// NewSelfAttention builds single-head scaled dot-product attention.
func NewSelfAttention(dim int, backend tensor.Backend) *SelfAttention {
	return nn.NewSelfAttention(dim, backend)
}

// NewLayerNorm builds a layer norm over dim-sized features.
func NewLayerNorm(dim int, backend tensor.Backend) *LayerNorm {
	return nn.NewLayerNorm(dim, backend)
}

// NewFFN builds the position-wise feed-forward block.
func NewFFN(dim, hidden int, backend tensor.Backend) *FFN {
	return nn.NewFFN(dim, hidden, backend)
}

// NewReLU returns a ReLU activation.
func NewReLU() *ReLU { return nn.NewReLU() }

// NewTransformerBlock builds a post-norm transformer block.
func NewTransformerBlock(dim, hidden int, backend tensor.Backend) *TransformerBlock {
	return nn.NewTransformerBlock(dim, hidden, backend)
}

// NewCrossEntropyLoss builds the mean NLL loss.
func NewCrossEntropyLoss(backend tensor.Backend) *CrossEntropyLoss {
	return nn.NewCrossEntropyLoss(backend)
}

// CausalMask returns a [1, seqLen, seqLen] additive attention mask
// blocking future positions.
func CausalMask(seqLen int, backend tensor.Backend) *tensor.Tensor[float32] {
	return nn.CausalMask(seqLen, backend)
}
