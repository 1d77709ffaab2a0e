package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loom-ml/loom/internal/backend/cpu"
	"github.com/loom-ml/loom/internal/tensor"
)

func TestSelfAttentionShapes(t *testing.T) {
	backend := cpu.New()
	attn := NewSelfAttention(8, backend)

	x := tensor.Randn(tensor.NewShape(2, 5, 8), backend)
	out, weights := attn.Forward(x, nil)

	assert.True(t, out.Shape().Equal(tensor.NewShape(2, 5, 8)), "output shape %v", out.Shape())
	assert.True(t, weights.Shape().Equal(tensor.NewShape(2, 5, 5)), "weights shape %v", weights.Shape())
}

func TestAttentionWeightsAreDistributions(t *testing.T) {
	backend := cpu.New()
	attn := NewSelfAttention(16, backend)

	x := tensor.Randn(tensor.NewShape(3, 7, 16), backend)
	_, weights := attn.Forward(x, nil)

	for b := 0; b < 3; b++ {
		for i := 0; i < 7; i++ {
			var sum float32
			for j := 0; j < 7; j++ {
				w := weights.At(b, i, j)
				assert.GreaterOrEqual(t, w, float32(0), "weight [%d,%d,%d]", b, i, j)
				sum += w
			}
			assert.InDelta(t, 1.0, sum, 1e-5, "row [%d,%d]", b, i)
		}
	}
}

func TestAttentionCausalMaskZerosFuture(t *testing.T) {
	backend := cpu.New()
	attn := NewSelfAttention(8, backend)

	seqLen := 6
	x := tensor.Randn(tensor.NewShape(1, seqLen, 8), backend)
	_, weights := attn.Forward(x, CausalMask(seqLen, backend))

	for i := 0; i < seqLen; i++ {
		var sum float32
		for j := 0; j < seqLen; j++ {
			w := weights.At(0, i, j)
			if j > i {
				assert.Zero(t, w, "future weight [%d,%d]", i, j)
			}
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-5, "row %d", i)
	}
}

func TestAttentionUnmaskedSeesFuture(t *testing.T) {
	backend := cpu.New()
	attn := NewSelfAttention(4, backend)

	x := tensor.Randn(tensor.NewShape(1, 4, 4), backend)
	_, weights := attn.Forward(x, nil)

	// Without a mask some attention must land above the diagonal.
	var future float32
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			future += weights.At(0, i, j)
		}
	}
	assert.Positive(t, future)
}

func TestAttentionBadShapePanics(t *testing.T) {
	backend := cpu.New()
	attn := NewSelfAttention(8, backend)

	assert.Panics(t, func() {
		attn.Forward(tensor.Randn(tensor.NewShape(2, 5, 4), backend), nil)
	})
	assert.Panics(t, func() {
		attn.Forward(tensor.Randn(tensor.NewShape(5, 8), backend), nil)
	})
}

func TestSelfAttentionParameters(t *testing.T) {
	attn := NewSelfAttention(8, cpu.New())

	// Three projections, each with weight and bias.
	params := attn.Parameters()
	assert.Len(t, params, 6)

	total := 0
	for _, p := range params {
		total += p.NumElements()
	}
	assert.Equal(t, 3*(8*8+8), total)
}
