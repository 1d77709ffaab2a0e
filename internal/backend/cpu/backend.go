// Package cpu implements the tensor.Backend interface with plain Go
// kernels, delegating dense matrix products to gonum's BLAS bindings.
package cpu

import (
	"fmt"

	"github.com/loom-ml/loom/internal/tensor"
)

// CPUBackend executes tensor operations on the host CPU. It is
// stateless and safe for concurrent use; every operation allocates its
// output.
type CPUBackend struct{}

// New returns a CPU backend.
func New() *CPUBackend { return &CPUBackend{} }

func (b *CPUBackend) Name() string          { return "cpu" }
func (b *CPUBackend) Device() tensor.Device { return tensor.CPU }

// Add computes a + b with broadcasting.
func (b *CPUBackend) Add(x, y *tensor.RawTensor) *tensor.RawTensor {
	return elementwise(x, y, func(a, b float32) float32 { return a + b })
}

// Sub computes a - b with broadcasting.
func (b *CPUBackend) Sub(x, y *tensor.RawTensor) *tensor.RawTensor {
	return elementwise(x, y, func(a, b float32) float32 { return a - b })
}

// Mul computes the elementwise product with broadcasting.
func (b *CPUBackend) Mul(x, y *tensor.RawTensor) *tensor.RawTensor {
	return elementwise(x, y, func(a, b float32) float32 { return a * b })
}

// Div computes the elementwise quotient with broadcasting.
func (b *CPUBackend) Div(x, y *tensor.RawTensor) *tensor.RawTensor {
	return elementwise(x, y, func(a, b float32) float32 { return a / b })
}

// Reshape copies t into a tensor with the new shape.
func (b *CPUBackend) Reshape(t *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	return t.WithShape(shape)
}

// Transpose permutes the axes of t. With no axes given, the axis order
// is reversed.
func (b *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	rank := t.Shape().Rank()
	if len(axes) == 0 {
		axes = make([]int, rank)
		for i := range axes {
			axes[i] = rank - 1 - i
		}
	}
	if len(axes) != rank {
		panic(fmt.Sprintf("cpu: transpose axes %v do not match rank %d", axes, rank))
	}
	seen := make([]bool, rank)
	outShape := make(tensor.Shape, rank)
	for i, ax := range axes {
		if ax < 0 || ax >= rank || seen[ax] {
			panic(fmt.Sprintf("cpu: invalid transpose axes %v for rank %d", axes, rank))
		}
		seen[ax] = true
		outShape[i] = t.Shape()[ax]
	}

	out := tensor.MustNewRaw(outShape, t.DType(), t.Device())
	inStrides := t.Strides()
	outStrides := tensor.ComputeStrides(outShape)
	n := t.NumElements()

	// Walk output positions, mapping each back to its source offset.
	idx := make([]int, rank)
	switch t.DType() {
	case tensor.Float32:
		src, dst := t.AsFloat32(), out.AsFloat32()
		for flat := 0; flat < n; flat++ {
			rem := flat
			srcOffset := 0
			for d := 0; d < rank; d++ {
				idx[d] = rem / outStrides[d]
				rem %= outStrides[d]
				srcOffset += idx[d] * inStrides[axes[d]]
			}
			dst[flat] = src[srcOffset]
		}
	case tensor.Int32:
		src, dst := t.AsInt32(), out.AsInt32()
		for flat := 0; flat < n; flat++ {
			rem := flat
			srcOffset := 0
			for d := 0; d < rank; d++ {
				idx[d] = rem / outStrides[d]
				rem %= outStrides[d]
				srcOffset += idx[d] * inStrides[axes[d]]
			}
			dst[flat] = src[srcOffset]
		}
	default:
		panic(fmt.Sprintf("cpu: transpose unsupported dtype %s", t.DType()))
	}
	return out
}

// elementwise applies op over the broadcast of two float32 tensors.
func elementwise(x, y *tensor.RawTensor, op func(a, b float32) float32) *tensor.RawTensor {
	requireFloat32("elementwise", x, y)
	outShape, err := tensor.BroadcastShapes(x.Shape(), y.Shape())
	if err != nil {
		panic(err)
	}
	out := tensor.MustNewRaw(outShape, tensor.Float32, x.Device())
	xd, yd, od := x.AsFloat32(), y.AsFloat32(), out.AsFloat32()

	if x.Shape().Equal(y.Shape()) {
		for i := range od {
			od[i] = op(xd[i], yd[i])
		}
		return out
	}

	outStrides := tensor.ComputeStrides(outShape)
	xs := broadcastStrides(x.Shape(), outShape)
	ys := broadcastStrides(y.Shape(), outShape)
	rank := outShape.Rank()
	for flat := range od {
		rem := flat
		xi, yi := 0, 0
		for d := 0; d < rank; d++ {
			pos := rem / outStrides[d]
			rem %= outStrides[d]
			xi += pos * xs[d]
			yi += pos * ys[d]
		}
		od[flat] = op(xd[xi], yd[yi])
	}
	return out
}

// broadcastStrides returns per-output-axis strides into a tensor of
// shape `from` broadcast to `to`, with zero stride on expanded axes.
func broadcastStrides(from, to tensor.Shape) []int {
	strides := make([]int, to.Rank())
	fromStrides := tensor.ComputeStrides(from)
	offset := to.Rank() - from.Rank()
	for d := 0; d < to.Rank(); d++ {
		if d < offset {
			continue
		}
		fd := d - offset
		if from[fd] == to[d] {
			strides[d] = fromStrides[fd]
		} else if from[fd] != 1 {
			panic(fmt.Sprintf("cpu: cannot broadcast %v to %v", from, to))
		}
	}
	return strides
}

func requireFloat32(op string, ts ...*tensor.RawTensor) {
	for _, t := range ts {
		if t.DType() != tensor.Float32 {
			panic(fmt.Sprintf("cpu: %s requires float32, got %s", op, t.DType()))
		}
	}
}
