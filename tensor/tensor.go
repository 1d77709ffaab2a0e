// Package tensor is the public surface of the tensor core: typed
// tensors over raw byte buffers, dispatched through a pluggable
// backend.
package tensor

import "github.com/loom-ml/loom/internal/tensor"

type (
	Shape     = tensor.Shape
	DataType  = tensor.DataType
	Device    = tensor.Device
	RawTensor = tensor.RawTensor
	Backend   = tensor.Backend

	// DType is the element type constraint for typed tensors.
	DType = tensor.DType

	// Tensor is a typed view over a RawTensor bound to a backend.
	Tensor[T DType] = tensor.Tensor[T]
)

const (
	Float32 = tensor.Float32
	Int32   = tensor.Int32

	CPU = tensor.CPU
)

// NewShape builds a Shape from dimensions.
func NewShape(dims ...int) Shape { return tensor.NewShape(dims...) }

// NewRaw allocates a zero-filled RawTensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// New wraps a RawTensor as a typed tensor.
func New[T DType](raw *RawTensor, backend Backend) *Tensor[T] {
	return tensor.New[T](raw, backend)
}

// FromSlice copies data into a fresh tensor.
func FromSlice[T DType](data []T, shape Shape, backend Backend) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape, backend)
}

// MustFromSlice is FromSlice for inputs known to be consistent.
func MustFromSlice[T DType](data []T, shape Shape, backend Backend) *Tensor[T] {
	return tensor.MustFromSlice(data, shape, backend)
}

// Zeros returns a zero-filled tensor.
func Zeros[T DType](shape Shape, backend Backend) *Tensor[T] {
	return tensor.Zeros[T](shape, backend)
}

// Ones returns a tensor filled with one.
func Ones[T DType](shape Shape, backend Backend) *Tensor[T] {
	return tensor.Ones[T](shape, backend)
}

// Full returns a tensor filled with value.
func Full[T DType](shape Shape, value T, backend Backend) *Tensor[T] {
	return tensor.Full(shape, value, backend)
}

// Randn returns a float32 tensor drawn from the standard normal
// distribution.
func Randn(shape Shape, backend Backend) *Tensor[float32] {
	return tensor.Randn(shape, backend)
}

// Uniform returns a float32 tensor drawn uniformly from [low, high).
func Uniform(low, high float32, shape Shape, backend Backend) *Tensor[float32] {
	return tensor.Uniform(low, high, shape, backend)
}

// BroadcastShapes computes the broadcast of two shapes.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}
