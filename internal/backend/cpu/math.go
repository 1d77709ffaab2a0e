package cpu

import (
	"math"

	"github.com/loom-ml/loom/internal/tensor"
)

// AddScalar adds a scalar to every element.
func (b *CPUBackend) AddScalar(t *tensor.RawTensor, scalar float32) *tensor.RawTensor {
	return unary(t, "add scalar", func(v float32) float32 { return v + scalar })
}

// MulScalar multiplies every element by a scalar.
func (b *CPUBackend) MulScalar(t *tensor.RawTensor, scalar float32) *tensor.RawTensor {
	return unary(t, "mul scalar", func(v float32) float32 { return v * scalar })
}

// ReLU zeroes negative elements.
func (b *CPUBackend) ReLU(t *tensor.RawTensor) *tensor.RawTensor {
	return unary(t, "relu", func(v float32) float32 {
		if v > 0 {
			return v
		}
		return 0
	})
}

// Rsqrt computes 1/sqrt(x) per element.
func (b *CPUBackend) Rsqrt(t *tensor.RawTensor) *tensor.RawTensor {
	return unary(t, "rsqrt", func(v float32) float32 {
		return float32(1.0 / math.Sqrt(float64(v)))
	})
}

func unary(t *tensor.RawTensor, op string, f func(float32) float32) *tensor.RawTensor {
	requireFloat32(op, t)
	out := tensor.MustNewRaw(t.Shape(), tensor.Float32, t.Device())
	src, dst := t.AsFloat32(), out.AsFloat32()
	for i := range src {
		dst[i] = f(src[i])
	}
	return out
}
