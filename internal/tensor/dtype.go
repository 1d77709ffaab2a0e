package tensor

import "fmt"

// DType is the compile-time constraint for element types carried by a
// Tensor. Float32 covers parameters and activations, Int32 covers token
// ids and argmax results.
type DType interface {
	~float32 | ~int32
}

// DataType identifies the element type of a RawTensor at runtime.
type DataType int

const (
	Float32 DataType = iota
	Int32
)

// Size returns the width of one element in bytes.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	default:
		panic(fmt.Sprintf("tensor: unknown data type %d", int(dt)))
	}
}

func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	default:
		return fmt.Sprintf("DataType(%d)", int(dt))
	}
}

// dataTypeOf maps a Go element type onto its runtime tag.
func dataTypeOf[T DType]() DataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case int32:
		return Int32
	default:
		panic(fmt.Sprintf("tensor: unsupported element type %T", zero))
	}
}
