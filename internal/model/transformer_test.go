package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-ml/loom/internal/backend/cpu"
	"github.com/loom-ml/loom/internal/nn"
	"github.com/loom-ml/loom/internal/tensor"
)

func testConfig() Config {
	return Config{
		VocabSize: 6,
		EmbedDim:  16,
		HiddenDim: 32,
		NumLayers: 2,
		MaxSeqLen: 10,
	}
}

func tokens(t *testing.T, backend tensor.Backend, ids []int32, dims ...int) *tensor.Tensor[int32] {
	t.Helper()
	tt, err := tensor.FromSlice(ids, tensor.NewShape(dims...), backend)
	require.NoError(t, err)
	return tt
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero vocab", func(c *Config) { c.VocabSize = 0 }, true},
		{"negative dim", func(c *Config) { c.EmbedDim = -1 }, true},
		{"zero hidden", func(c *Config) { c.HiddenDim = 0 }, true},
		{"zero layers", func(c *Config) { c.NumLayers = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			_, err := New(cfg, cpu.New())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigDefaultMaxSeqLen(t *testing.T) {
	cfg := testConfig()
	cfg.MaxSeqLen = 0
	m, err := New(cfg, cpu.New())
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxSeqLen, m.Config().MaxSeqLen)
}

func TestForwardLogitsShape(t *testing.T) {
	backend := cpu.New()
	m, err := New(testConfig(), backend)
	require.NoError(t, err)

	logits, err := m.Forward(tokens(t, backend, []int32{0, 1, 2, 3, 4, 5}, 2, 3))
	require.NoError(t, err)
	assert.True(t, logits.Shape().Equal(tensor.NewShape(2, 3, 6)), "logits shape %v", logits.Shape())
}

func TestForwardSequenceTooLong(t *testing.T) {
	backend := cpu.New()
	m, err := New(testConfig(), backend)
	require.NoError(t, err)

	ids := make([]int32, 11)
	_, err = m.Forward(tokens(t, backend, ids, 1, 11))
	require.Error(t, err)

	var tooLong *nn.SequenceTooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, 11, tooLong.Length)
	assert.Equal(t, 10, tooLong.MaxLen)
}

func TestForwardInvalidRank(t *testing.T) {
	backend := cpu.New()
	m, err := New(testConfig(), backend)
	require.NoError(t, err)

	_, err = m.Forward(tokens(t, backend, []int32{0, 1, 2}, 3))
	require.Error(t, err)

	var invalid *nn.InvalidShapeError
	assert.True(t, errors.As(err, &invalid))
}

func TestForwardOrderSensitive(t *testing.T) {
	backend := cpu.New()
	m, err := New(testConfig(), backend)
	require.NoError(t, err)

	a, err := m.Forward(tokens(t, backend, []int32{0, 1, 2}, 1, 3))
	require.NoError(t, err)
	b, err := m.Forward(tokens(t, backend, []int32{2, 1, 0}, 1, 3))
	require.NoError(t, err)

	// Positional encoding makes token order matter.
	different := false
	for i, v := range a.Data() {
		if v != b.Data()[i] {
			different = true
			break
		}
	}
	assert.True(t, different, "permuted input produced identical logits")
}

func TestPredictReturnsValidToken(t *testing.T) {
	backend := cpu.New()
	m, err := New(testConfig(), backend)
	require.NoError(t, err)

	next, err := m.Predict(tokens(t, backend, []int32{0, 1, 2}, 1, 3))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, next, int32(0))
	assert.Less(t, next, int32(6))
}

func TestPredictRequiresSingleSequence(t *testing.T) {
	backend := cpu.New()
	m, err := New(testConfig(), backend)
	require.NoError(t, err)

	_, err = m.Predict(tokens(t, backend, []int32{0, 1, 2, 3}, 2, 2))
	assert.Error(t, err)
}

func TestParametersEnumeration(t *testing.T) {
	cfg := testConfig()
	m, err := New(cfg, cpu.New())
	require.NoError(t, err)

	d, h, v := cfg.EmbedDim, cfg.HiddenDim, cfg.VocabSize
	embed := v * d
	block := 3*(d*d+d) + 2*(2*d) + (d*h + h) + (h*d + d)
	output := d*v + v
	want := embed + cfg.NumLayers*block + output

	assert.Equal(t, want, m.NumParameters())

	// Every parameter is distinct storage.
	seen := make(map[*tensor.RawTensor]bool)
	for _, p := range m.Parameters() {
		assert.False(t, seen[p.Raw()], "parameter %s shared", p.Name())
		seen[p.Raw()] = true
	}
}

func TestCausalConfigChangesLogits(t *testing.T) {
	backend := cpu.New()

	cfg := testConfig()
	m, err := New(cfg, backend)
	require.NoError(t, err)

	// The same model, forced causal, must score early positions
	// differently because they lose sight of the future.
	logitsFree, err := m.Forward(tokens(t, backend, []int32{0, 1, 2, 3}, 1, 4))
	require.NoError(t, err)

	m.cfg.Causal = true
	logitsCausal, err := m.Forward(tokens(t, backend, []int32{0, 1, 2, 3}, 1, 4))
	require.NoError(t, err)

	different := false
	for i := range logitsFree.Data() {
		if logitsFree.Data()[i] != logitsCausal.Data()[i] {
			different = true
			break
		}
	}
	assert.True(t, different)
}
