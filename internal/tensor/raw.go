package tensor

import (
	"fmt"
	"unsafe"
)

// Device identifies where a tensor's buffer lives. Only the CPU is
// supported; the type exists so backends can report their placement.
type Device int

const (
	CPU Device = iota
)

func (d Device) String() string {
	switch d {
	case CPU:
		return "cpu"
	default:
		return fmt.Sprintf("Device(%d)", int(d))
	}
}

// RawTensor is the untyped storage shared by all tensors: a contiguous
// byte buffer plus shape, stride and dtype metadata. Backends operate on
// RawTensors; the generic Tensor wrapper restores type safety on top.
//
// RawTensors are never mutated in place by backend operations. Every op
// allocates a fresh output, which keeps autodiff bookkeeping honest.
type RawTensor struct {
	data   []byte
	shape  Shape
	stride []int
	dtype  DataType
	device Device
}

// NewRaw allocates a zero-filled RawTensor with the given shape and
// dtype.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	n := shape.NumElements()
	return &RawTensor{
		data:   make([]byte, n*dtype.Size()),
		shape:  shape.Clone(),
		stride: ComputeStrides(shape),
		dtype:  dtype,
		device: device,
	}, nil
}

// MustNewRaw is NewRaw for shapes known to be valid.
func MustNewRaw(shape Shape, dtype DataType, device Device) *RawTensor {
	rt, err := NewRaw(shape, dtype, device)
	if err != nil {
		panic(err)
	}
	return rt
}

func (rt *RawTensor) Shape() Shape     { return rt.shape }
func (rt *RawTensor) Strides() []int   { return rt.stride }
func (rt *RawTensor) DType() DataType  { return rt.dtype }
func (rt *RawTensor) Device() Device   { return rt.device }
func (rt *RawTensor) NumElements() int { return rt.shape.NumElements() }
func (rt *RawTensor) ByteSize() int    { return len(rt.data) }
func (rt *RawTensor) Data() []byte     { return rt.data }

// AsFloat32 views the buffer as []float32. Panics when the dtype does
// not match.
func (rt *RawTensor) AsFloat32() []float32 {
	if rt.dtype != Float32 {
		panic(fmt.Sprintf("tensor: AsFloat32 on %s tensor", rt.dtype))
	}
	if len(rt.data) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&rt.data[0])), rt.NumElements())
}

// AsInt32 views the buffer as []int32. Panics when the dtype does not
// match.
func (rt *RawTensor) AsInt32() []int32 {
	if rt.dtype != Int32 {
		panic(fmt.Sprintf("tensor: AsInt32 on %s tensor", rt.dtype))
	}
	if len(rt.data) == 0 {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&rt.data[0])), rt.NumElements())
}

// Clone deep-copies the tensor, buffer included.
func (rt *RawTensor) Clone() *RawTensor {
	out := MustNewRaw(rt.shape, rt.dtype, rt.device)
	copy(out.data, rt.data)
	return out
}

// WithShape returns a view-free copy of rt carrying newShape. The
// element count must be preserved.
func (rt *RawTensor) WithShape(newShape Shape) *RawTensor {
	if newShape.NumElements() != rt.NumElements() {
		panic(fmt.Sprintf("tensor: cannot reshape %v (%d elements) to %v (%d elements)",
			rt.shape, rt.NumElements(), newShape, newShape.NumElements()))
	}
	out := MustNewRaw(newShape, rt.dtype, rt.device)
	copy(out.data, rt.data)
	return out
}
