package nn

import (
	"fmt"
	"math"

	"github.com/loom-ml/loom/internal/tensor"
)

// SinusoidalPositionalEncoding holds a fixed [maxLen, dim] table of
// sinusoids:
//
//	PE[pos, 2i]   = sin(pos / 10000^(2i/dim))
//	PE[pos, 2i+1] = cos(pos / 10000^(2i/dim))
//
// The table is built once in float64 and never mutated afterwards, so
// two encoders with the same maxLen and dim are bit-identical. It
// carries no trainable parameters.
type SinusoidalPositionalEncoding struct {
	encoding *tensor.Tensor[float32]
	maxLen   int
	dim      int
	backend  tensor.Backend
}

// NewSinusoidalPositionalEncoding precomputes the table.
func NewSinusoidalPositionalEncoding(maxLen, dim int, backend tensor.Backend) *SinusoidalPositionalEncoding {
	enc := tensor.Zeros[float32](tensor.NewShape(maxLen, dim), backend)
	data := enc.Data()
	for pos := 0; pos < maxLen; pos++ {
		for i := 0; i < dim; i++ {
			angle := float64(pos) / math.Pow(10000.0, float64(2*(i/2))/float64(dim))
			if i%2 == 0 {
				data[pos*dim+i] = float32(math.Sin(angle))
			} else {
				data[pos*dim+i] = float32(math.Cos(angle))
			}
		}
	}
	return &SinusoidalPositionalEncoding{encoding: enc, maxLen: maxLen, dim: dim, backend: backend}
}

// Forward adds the first L rows of the table to x [batch, L, dim].
// Sequences longer than maxLen return a SequenceTooLongError.
func (p *SinusoidalPositionalEncoding) Forward(x *tensor.Tensor[float32]) (*tensor.Tensor[float32], error) {
	s := x.Shape()
	if s.Rank() != 3 || s[2] != p.dim {
		panic(&InvalidShapeError{
			Op:   "SinusoidalPositionalEncoding.Forward",
			Want: fmt.Sprintf("[batch, seq, %d]", p.dim),
			Got:  s,
		})
	}
	seqLen := s[1]
	if seqLen > p.maxLen {
		return nil, &SequenceTooLongError{Length: seqLen, MaxLen: p.maxLen}
	}

	// Prefix view as [1, L, dim] so the add broadcasts over the batch.
	prefix := tensor.MustFromSlice(
		p.encoding.Data()[:seqLen*p.dim],
		tensor.NewShape(1, seqLen, p.dim),
		p.backend)
	return x.Add(prefix), nil
}

// Encoding exposes the precomputed table. Callers must not modify it.
func (p *SinusoidalPositionalEncoding) Encoding() *tensor.Tensor[float32] { return p.encoding }

// MaxLen returns the longest supported sequence.
func (p *SinusoidalPositionalEncoding) MaxLen() int { return p.maxLen }

func (p *SinusoidalPositionalEncoding) Parameters() []*Parameter { return nil }
