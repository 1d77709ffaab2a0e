package tensor

import "math/rand"

// Zeros returns a zero-filled tensor.
func Zeros[T DType](shape Shape, backend Backend) *Tensor[T] {
	raw := MustNewRaw(shape, dataTypeOf[T](), backend.Device())
	return &Tensor[T]{raw: raw, backend: backend}
}

// Ones returns a tensor filled with one.
func Ones[T DType](shape Shape, backend Backend) *Tensor[T] {
	return Full[T](shape, 1, backend)
}

// Full returns a tensor filled with value.
func Full[T DType](shape Shape, value T, backend Backend) *Tensor[T] {
	t := Zeros[T](shape, backend)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Randn returns a float32 tensor with elements drawn from the standard
// normal distribution.
func Randn(shape Shape, backend Backend) *Tensor[float32] {
	t := Zeros[float32](shape, backend)
	data := t.Data()
	for i := range data {
		data[i] = float32(rand.NormFloat64())
	}
	return t
}

// Uniform returns a float32 tensor with elements drawn uniformly from
// [low, high).
func Uniform(low, high float32, shape Shape, backend Backend) *Tensor[float32] {
	t := Zeros[float32](shape, backend)
	data := t.Data()
	span := high - low
	for i := range data {
		data[i] = low + rand.Float32()*span
	}
	return t
}
