// Package model assembles the transformer language model: embedding,
// positional encoding, a stack of transformer blocks and the output
// projection to vocabulary logits.
package model

import (
	"fmt"

	"github.com/loom-ml/loom/internal/nn"
	"github.com/loom-ml/loom/internal/tensor"
)

// Transformer is an autoregressive language model over int32 token ids.
type Transformer struct {
	cfg     Config
	embed   *nn.Embedding
	pos     *nn.SinusoidalPositionalEncoding
	blocks  []*nn.TransformerBlock
	output  *nn.Linear
	backend tensor.Backend
}

// New builds a model from the config on the given backend.
func New(cfg Config, backend tensor.Backend) (*Transformer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	blocks := make([]*nn.TransformerBlock, cfg.NumLayers)
	for i := range blocks {
		blocks[i] = nn.NewTransformerBlock(cfg.EmbedDim, cfg.HiddenDim, backend)
	}
	return &Transformer{
		cfg:     cfg,
		embed:   nn.NewEmbedding(cfg.VocabSize, cfg.EmbedDim, backend),
		pos:     nn.NewSinusoidalPositionalEncoding(cfg.MaxSeqLen, cfg.EmbedDim, backend),
		blocks:  blocks,
		output:  nn.NewLinear(cfg.EmbedDim, cfg.VocabSize, backend),
		backend: backend,
	}, nil
}

// Config returns the model's resolved configuration.
func (m *Transformer) Config() Config { return m.cfg }

// Forward maps tokens [batch, seq] to logits [batch, seq, vocab].
// Sequences longer than MaxSeqLen return a SequenceTooLongError.
func (m *Transformer) Forward(tokens *tensor.Tensor[int32]) (*tensor.Tensor[float32], error) {
	s := tokens.Shape()
	if s.Rank() != 2 {
		return nil, &nn.InvalidShapeError{
			Op:   "Transformer.Forward",
			Want: "[batch, seq]",
			Got:  s,
		}
	}
	batch, seqLen := s[0], s[1]
	if seqLen > m.cfg.MaxSeqLen {
		return nil, &nn.SequenceTooLongError{Length: seqLen, MaxLen: m.cfg.MaxSeqLen}
	}

	x, err := m.pos.Forward(m.embed.Forward(tokens))
	if err != nil {
		return nil, err
	}

	var mask *tensor.Tensor[float32]
	if m.cfg.Causal {
		mask = nn.CausalMask(seqLen, m.backend)
	}
	for _, block := range m.blocks {
		x = block.Forward(x, mask)
	}

	flat := x.Reshape(batch*seqLen, m.cfg.EmbedDim)
	logits := m.output.Forward(flat)
	return logits.Reshape(batch, seqLen, m.cfg.VocabSize), nil
}

// Predict returns the argmax next-token id after the last position of a
// single sequence [1, seq].
func (m *Transformer) Predict(tokens *tensor.Tensor[int32]) (int32, error) {
	s := tokens.Shape()
	if s.Rank() != 2 || s[0] != 1 {
		return 0, &nn.InvalidShapeError{
			Op:   "Transformer.Predict",
			Want: "[1, seq]",
			Got:  s,
		}
	}
	logits, err := m.Forward(tokens)
	if err != nil {
		return 0, err
	}
	best := logits.Argmax(-1)
	return best.At(0, s[1]-1), nil
}

// Parameters enumerates every trainable tensor: the embedding table,
// each block's weights and the output projection. The positional table
// is fixed and excluded.
func (m *Transformer) Parameters() []*nn.Parameter {
	params := m.embed.Parameters()
	for _, block := range m.blocks {
		params = append(params, block.Parameters()...)
	}
	params = append(params, m.output.Parameters()...)
	return params
}

// NumParameters returns the total trainable element count.
func (m *Transformer) NumParameters() int {
	total := 0
	for _, p := range m.Parameters() {
		total += p.NumElements()
	}
	return total
}

// String summarizes the architecture.
func (m *Transformer) String() string {
	return fmt.Sprintf("Transformer(vocab=%d, dim=%d, hidden=%d, layers=%d, maxSeq=%d, causal=%t)",
		m.cfg.VocabSize, m.cfg.EmbedDim, m.cfg.HiddenDim, m.cfg.NumLayers, m.cfg.MaxSeqLen, m.cfg.Causal)
}
