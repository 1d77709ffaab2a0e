package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/loom-ml/loom/internal/tensor"
)

// MatMul multiplies [m,k] x [k,n] -> [m,n] via single-precision GEMM.
func (b *CPUBackend) MatMul(x, y *tensor.RawTensor) *tensor.RawTensor {
	requireFloat32("matmul", x, y)
	xs, ys := x.Shape(), y.Shape()
	if xs.Rank() != 2 || ys.Rank() != 2 {
		panic(fmt.Sprintf("cpu: matmul requires 2D operands, got %v and %v", xs, ys))
	}
	if xs[1] != ys[0] {
		panic(fmt.Sprintf("cpu: matmul inner dimensions mismatch: %v x %v", xs, ys))
	}
	m, k, n := xs[0], xs[1], ys[1]
	out := tensor.MustNewRaw(tensor.NewShape(m, n), tensor.Float32, x.Device())
	gemm(m, k, n, x.AsFloat32(), y.AsFloat32(), out.AsFloat32())
	return out
}

// BatchMatMul multiplies [b,m,k] x [b,k,n] -> [b,m,n], one GEMM per
// batch entry.
func (b *CPUBackend) BatchMatMul(x, y *tensor.RawTensor) *tensor.RawTensor {
	requireFloat32("batch matmul", x, y)
	xs, ys := x.Shape(), y.Shape()
	if xs.Rank() != 3 || ys.Rank() != 3 {
		panic(fmt.Sprintf("cpu: batch matmul requires 3D operands, got %v and %v", xs, ys))
	}
	if xs[0] != ys[0] {
		panic(fmt.Sprintf("cpu: batch matmul batch dimensions mismatch: %v x %v", xs, ys))
	}
	if xs[2] != ys[1] {
		panic(fmt.Sprintf("cpu: batch matmul inner dimensions mismatch: %v x %v", xs, ys))
	}
	batch, m, k, n := xs[0], xs[1], xs[2], ys[2]
	out := tensor.MustNewRaw(tensor.NewShape(batch, m, n), tensor.Float32, x.Device())

	xd, yd, od := x.AsFloat32(), y.AsFloat32(), out.AsFloat32()
	for i := 0; i < batch; i++ {
		gemm(m, k, n,
			xd[i*m*k:(i+1)*m*k],
			yd[i*k*n:(i+1)*k*n],
			od[i*m*n:(i+1)*m*n])
	}
	return out
}

func gemm(m, k, n int, a, b, c []float32) {
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
		blas32.General{Rows: m, Cols: k, Stride: k, Data: a},
		blas32.General{Rows: k, Cols: n, Stride: n, Data: b},
		0,
		blas32.General{Rows: m, Cols: n, Stride: n, Data: c})
}
