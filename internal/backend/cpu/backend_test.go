package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-ml/loom/internal/tensor"
)

var _ tensor.Backend = (*CPUBackend)(nil)

func f32(t *testing.T, data []float32, dims ...int) *tensor.RawTensor {
	t.Helper()
	tt, err := tensor.FromSlice(data, tensor.NewShape(dims...), New())
	require.NoError(t, err)
	return tt.Raw()
}

func TestAdd(t *testing.T) {
	b := New()
	out := b.Add(f32(t, []float32{1, 2, 3, 4}, 2, 2), f32(t, []float32{10, 20, 30, 40}, 2, 2))
	assert.Equal(t, []float32{11, 22, 33, 44}, out.AsFloat32())
}

func TestAddBroadcast(t *testing.T) {
	b := New()
	// [2,3] + [3] broadcasts the row.
	out := b.Add(f32(t, []float32{1, 2, 3, 4, 5, 6}, 2, 3), f32(t, []float32{10, 20, 30}, 3))
	assert.Equal(t, []float32{11, 22, 33, 14, 25, 36}, out.AsFloat32())
	assert.True(t, out.Shape().Equal(tensor.NewShape(2, 3)))
}

func TestAddBroadcastBatch(t *testing.T) {
	b := New()
	// [2,2,2] + [1,2,2] broadcasts over the leading axis.
	x := f32(t, []float32{1, 2, 3, 4, 5, 6, 7, 8}, 2, 2, 2)
	y := f32(t, []float32{10, 20, 30, 40}, 1, 2, 2)
	out := b.Add(x, y)
	assert.Equal(t, []float32{11, 22, 33, 44, 15, 26, 37, 48}, out.AsFloat32())
}

func TestSubMulDiv(t *testing.T) {
	b := New()
	x := f32(t, []float32{4, 9, 16}, 3)
	y := f32(t, []float32{2, 3, 4}, 3)
	assert.Equal(t, []float32{2, 6, 12}, b.Sub(x, y).AsFloat32())
	assert.Equal(t, []float32{8, 27, 64}, b.Mul(x, y).AsFloat32())
	assert.Equal(t, []float32{2, 3, 4}, b.Div(x, y).AsFloat32())
}

func TestMatMul(t *testing.T) {
	b := New()
	// [2,3] x [3,2]
	x := f32(t, []float32{1, 2, 3, 4, 5, 6}, 2, 3)
	y := f32(t, []float32{7, 8, 9, 10, 11, 12}, 3, 2)
	out := b.MatMul(x, y)
	assert.True(t, out.Shape().Equal(tensor.NewShape(2, 2)))
	assert.Equal(t, []float32{58, 64, 139, 154}, out.AsFloat32())
}

func TestMatMulShapeMismatch(t *testing.T) {
	b := New()
	assert.Panics(t, func() {
		b.MatMul(f32(t, make([]float32, 6), 2, 3), f32(t, make([]float32, 4), 2, 2))
	})
}

func TestBatchMatMul(t *testing.T) {
	b := New()
	// Two independent 2x2 products.
	x := f32(t, []float32{1, 2, 3, 4, 1, 0, 0, 1}, 2, 2, 2)
	y := f32(t, []float32{5, 6, 7, 8, 9, 10, 11, 12}, 2, 2, 2)
	out := b.BatchMatMul(x, y)
	assert.True(t, out.Shape().Equal(tensor.NewShape(2, 2, 2)))
	assert.Equal(t, []float32{19, 22, 43, 50, 9, 10, 11, 12}, out.AsFloat32())
}

func TestTranspose2D(t *testing.T) {
	b := New()
	out := b.Transpose(f32(t, []float32{1, 2, 3, 4, 5, 6}, 2, 3))
	assert.True(t, out.Shape().Equal(tensor.NewShape(3, 2)))
	assert.Equal(t, []float32{1, 4, 2, 5, 3, 6}, out.AsFloat32())
}

func TestTransposeSwapLastTwo(t *testing.T) {
	b := New()
	x := f32(t, []float32{1, 2, 3, 4, 5, 6, 7, 8}, 2, 2, 2)
	out := b.Transpose(x, 0, 2, 1)
	assert.Equal(t, []float32{1, 3, 2, 4, 5, 7, 6, 8}, out.AsFloat32())
}

func TestTransposeRoundTrip(t *testing.T) {
	b := New()
	x := f32(t, []float32{1, 2, 3, 4, 5, 6}, 2, 3)
	back := b.Transpose(b.Transpose(x))
	assert.Equal(t, x.AsFloat32(), back.AsFloat32())
}

func TestSoftmaxRowsSumToOne(t *testing.T) {
	b := New()
	x := f32(t, []float32{1, 2, 3, -1, 0, 1, 100, 100, 100, -50, 0, 50}, 4, 3)
	out := b.Softmax(x, -1)

	data := out.AsFloat32()
	for row := 0; row < 4; row++ {
		var sum float32
		for c := 0; c < 3; c++ {
			v := data[row*3+c]
			assert.GreaterOrEqual(t, v, float32(0), "row %d col %d", row, c)
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-5, "row %d", row)
	}
}

func TestSoftmaxLargeValuesStable(t *testing.T) {
	b := New()
	out := b.Softmax(f32(t, []float32{1000, 1000}, 1, 2), -1)
	assert.InDelta(t, 0.5, out.AsFloat32()[0], 1e-6)
	assert.InDelta(t, 0.5, out.AsFloat32()[1], 1e-6)
}

func TestReLU(t *testing.T) {
	b := New()
	out := b.ReLU(f32(t, []float32{-2, -0.5, 0, 0.5, 2}, 5))
	assert.Equal(t, []float32{0, 0, 0, 0.5, 2}, out.AsFloat32())
}

func TestRsqrt(t *testing.T) {
	b := New()
	out := b.Rsqrt(f32(t, []float32{4, 16, 0.25}, 3))
	assert.InDelta(t, 0.5, out.AsFloat32()[0], 1e-6)
	assert.InDelta(t, 0.25, out.AsFloat32()[1], 1e-6)
	assert.InDelta(t, 2.0, out.AsFloat32()[2], 1e-6)
}

func TestScalarOps(t *testing.T) {
	b := New()
	x := f32(t, []float32{1, 2, 3}, 3)
	assert.Equal(t, []float32{3, 4, 5}, b.AddScalar(x, 2).AsFloat32())
	assert.Equal(t, []float32{2, 4, 6}, b.MulScalar(x, 2).AsFloat32())
}

func TestEmbedding(t *testing.T) {
	b := New()
	weight := f32(t, []float32{
		0, 0,
		1, 10,
		2, 20,
	}, 3, 2)
	indices, err := tensor.FromSlice([]int32{2, 0, 2, 1}, tensor.NewShape(2, 2), b)
	require.NoError(t, err)

	out := b.Embedding(weight, indices.Raw())
	assert.True(t, out.Shape().Equal(tensor.NewShape(2, 2, 2)))
	assert.Equal(t, []float32{2, 20, 0, 0, 2, 20, 1, 10}, out.AsFloat32())
}

func TestEmbeddingOutOfRange(t *testing.T) {
	b := New()
	weight := f32(t, make([]float32, 4), 2, 2)
	indices, err := tensor.FromSlice([]int32{5}, tensor.NewShape(1), b)
	require.NoError(t, err)
	assert.Panics(t, func() { b.Embedding(weight, indices.Raw()) })
}

func TestSumDim(t *testing.T) {
	b := New()
	x := f32(t, []float32{1, 2, 3, 4, 5, 6}, 2, 3)

	rows := b.SumDim(x, 1, false)
	assert.True(t, rows.Shape().Equal(tensor.NewShape(2)))
	assert.Equal(t, []float32{6, 15}, rows.AsFloat32())

	cols := b.SumDim(x, 0, false)
	assert.Equal(t, []float32{5, 7, 9}, cols.AsFloat32())

	kept := b.SumDim(x, 1, true)
	assert.True(t, kept.Shape().Equal(tensor.NewShape(2, 1)))
}

func TestMeanDim(t *testing.T) {
	b := New()
	x := f32(t, []float32{1, 2, 3, 4, 5, 6}, 2, 3)
	out := b.MeanDim(x, -1, true)
	assert.Equal(t, []float32{2, 5}, out.AsFloat32())
}

func TestArgmax(t *testing.T) {
	b := New()
	x := f32(t, []float32{1, 5, 3, 9, 2, 4}, 2, 3)
	out := b.Argmax(x, -1)
	assert.True(t, out.Shape().Equal(tensor.NewShape(2)))
	assert.Equal(t, []int32{1, 0}, out.AsInt32())
}

func TestArgmaxTiesLowestIndex(t *testing.T) {
	b := New()
	out := b.Argmax(f32(t, []float32{3, 3, 3}, 1, 3), -1)
	assert.Equal(t, []int32{0}, out.AsInt32())
}

func TestReshape(t *testing.T) {
	b := New()
	x := f32(t, []float32{1, 2, 3, 4, 5, 6}, 2, 3)
	out := b.Reshape(x, tensor.NewShape(3, 2))
	assert.True(t, out.Shape().Equal(tensor.NewShape(3, 2)))
	assert.Equal(t, x.AsFloat32(), out.AsFloat32())
}
