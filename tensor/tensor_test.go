package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-ml/loom/autodiff"
	"github.com/loom-ml/loom/backend/cpu"
	"github.com/loom-ml/loom/tensor"
)

var (
	_ tensor.Backend = (*cpu.CPUBackend)(nil)
	_ tensor.Backend = (*autodiff.Backend)(nil)
)

func TestPublicSurface(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.NewShape(2, 2), backend)
	require.NoError(t, err)
	y := tensor.Full[float32](tensor.NewShape(2, 2), 10, backend)

	out := x.Add(y).MulScalar(2)
	assert.Equal(t, []float32{22, 24, 26, 28}, out.Data())
	assert.Equal(t, tensor.Float32, out.DType())
	assert.Equal(t, tensor.CPU, out.Device())
}

func TestPublicAutodiff(t *testing.T) {
	backend := autodiff.New(cpu.New())

	x, err := tensor.FromSlice([]float32{2, 3}, tensor.NewShape(1, 2), backend)
	require.NoError(t, err)
	w, err := tensor.FromSlice([]float32{4, 5}, tensor.NewShape(2, 1), backend)
	require.NoError(t, err)

	loss := x.MatMul(w)
	grads := autodiff.Backward(loss, backend)

	require.NotNil(t, grads[w.Raw()])
	assert.Equal(t, []float32{2, 3}, grads[w.Raw()].AsFloat32())
}

func TestInt32Tensors(t *testing.T) {
	backend := cpu.New()
	ids, err := tensor.FromSlice([]int32{3, 1, 2}, tensor.NewShape(3), backend)
	require.NoError(t, err)
	assert.Equal(t, tensor.Int32, ids.DType())
	assert.Equal(t, int32(1), ids.At(1))
}
