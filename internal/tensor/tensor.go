package tensor

import (
	"fmt"
	"strings"
)

// Tensor is a typed view over a RawTensor bound to the backend that
// produced it. Operations dispatch to the backend, so a tensor created
// on an autodiff backend records onto that backend's tape without the
// caller doing anything special.
type Tensor[T DType] struct {
	raw     *RawTensor
	backend Backend
}

// New wraps an existing RawTensor. The raw dtype must match T.
func New[T DType](raw *RawTensor, backend Backend) *Tensor[T] {
	if want := dataTypeOf[T](); raw.DType() != want {
		panic(fmt.Sprintf("tensor: raw dtype %s does not match element type %s", raw.DType(), want))
	}
	return &Tensor[T]{raw: raw, backend: backend}
}

// FromSlice copies data into a fresh tensor of the given shape.
func FromSlice[T DType](data []T, shape Shape, backend Backend) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("tensor: %d elements do not fill shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	raw := MustNewRaw(shape, dataTypeOf[T](), backend.Device())
	copy(typedData[T](raw), data)
	return &Tensor[T]{raw: raw, backend: backend}, nil
}

// MustFromSlice is FromSlice for inputs known to be consistent.
func MustFromSlice[T DType](data []T, shape Shape, backend Backend) *Tensor[T] {
	t, err := FromSlice(data, shape, backend)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Tensor[T]) Raw() *RawTensor  { return t.raw }
func (t *Tensor[T]) Backend() Backend { return t.backend }
func (t *Tensor[T]) Shape() Shape     { return t.raw.Shape() }
func (t *Tensor[T]) DType() DataType  { return t.raw.DType() }
func (t *Tensor[T]) Device() Device   { return t.raw.Device() }
func (t *Tensor[T]) NumElements() int { return t.raw.NumElements() }

// Data returns the typed element slice backing the tensor.
func (t *Tensor[T]) Data() []T {
	return typedData[T](t.raw)
}

// At reads the element at the given multi-dimensional index.
func (t *Tensor[T]) At(indices ...int) T {
	return t.Data()[t.flatIndex(indices)]
}

// Set writes the element at the given multi-dimensional index.
func (t *Tensor[T]) Set(value T, indices ...int) {
	t.Data()[t.flatIndex(indices)] = value
}

// Item returns the sole element of a one-element tensor.
func (t *Tensor[T]) Item() T {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("tensor: Item on tensor of shape %v", t.Shape()))
	}
	return t.Data()[0]
}

// Clone returns a deep copy sharing nothing with t.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return &Tensor[T]{raw: t.raw.Clone(), backend: t.backend}
}

func (t *Tensor[T]) String() string {
	data := t.Data()
	var b strings.Builder
	fmt.Fprintf(&b, "Tensor(%s, shape=%v, [", t.DType(), t.Shape())
	limit := min(len(data), 8)
	for i := 0; i < limit; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", data[i])
	}
	if len(data) > limit {
		b.WriteString(", ...")
	}
	b.WriteString("])")
	return b.String()
}

func (t *Tensor[T]) flatIndex(indices []int) int {
	shape := t.raw.shape
	if len(indices) != len(shape) {
		panic(fmt.Sprintf("tensor: %d indices for shape %v", len(indices), shape))
	}
	flat := 0
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("tensor: index %d out of range for axis %d of shape %v", idx, i, shape))
		}
		flat += idx * t.raw.stride[i]
	}
	return flat
}

func typedData[T DType](raw *RawTensor) []T {
	switch dataTypeOf[T]() {
	case Float32:
		return any(raw.AsFloat32()).([]T)
	case Int32:
		return any(raw.AsInt32()).([]T)
	default:
		panic("tensor: unreachable dtype")
	}
}
