// Package autodiff provides tape-based reverse-mode differentiation as
// a decorator around any tensor backend. Forward operations execute on
// the wrapped backend and are recorded; Backward replays the tape in
// reverse to produce gradients.
package autodiff

import (
	"github.com/loom-ml/loom/internal/autodiff/ops"
	"github.com/loom-ml/loom/internal/tensor"
)

// Backend wraps an inner tensor.Backend with gradient recording. It
// satisfies tensor.Backend itself, so model code is written once and
// runs with or without gradients depending on which backend built its
// tensors.
type Backend struct {
	inner     tensor.Backend
	tape      *Tape
	recording bool
}

// New wraps inner with a fresh tape, recording enabled.
func New(inner tensor.Backend) *Backend {
	return &Backend{inner: inner, tape: NewTape(), recording: true}
}

// Inner returns the wrapped backend.
func (b *Backend) Inner() tensor.Backend { return b.inner }

// Tape returns the gradient tape.
func (b *Backend) Tape() *Tape { return b.tape }

func (b *Backend) Name() string          { return "autodiff(" + b.inner.Name() + ")" }
func (b *Backend) Device() tensor.Device { return b.inner.Device() }

// NoGrad runs fn with recording disabled, restoring the previous state
// afterwards.
func (b *Backend) NoGrad(fn func()) {
	prev := b.recording
	b.recording = false
	defer func() { b.recording = prev }()
	fn()
}

// Backward computes gradients of loss with respect to every tensor on
// the tape. Recording stays off while the backward rules run.
func (b *Backend) Backward(loss *tensor.RawTensor) map[*tensor.RawTensor]*tensor.RawTensor {
	var grads map[*tensor.RawTensor]*tensor.RawTensor
	b.NoGrad(func() {
		grads = b.tape.Backward(loss, b)
	})
	return grads
}

func (b *Backend) record(op ops.Operation) {
	if b.recording {
		b.tape.Record(op)
	}
}

func (b *Backend) Add(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Add(x, y)
	b.record(&ops.AddOp{A: x, B: y, Out: out})
	return out
}

func (b *Backend) Sub(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Sub(x, y)
	b.record(&ops.SubOp{A: x, B: y, Out: out})
	return out
}

func (b *Backend) Mul(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Mul(x, y)
	b.record(&ops.MulOp{A: x, B: y, Out: out})
	return out
}

func (b *Backend) Div(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Div(x, y)
	b.record(&ops.DivOp{A: x, B: y, Out: out})
	return out
}

func (b *Backend) MatMul(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.MatMul(x, y)
	b.record(&ops.MatMulOp{A: x, B: y, Out: out})
	return out
}

func (b *Backend) BatchMatMul(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.BatchMatMul(x, y)
	b.record(&ops.BatchMatMulOp{A: x, B: y, Out: out})
	return out
}

func (b *Backend) Reshape(t *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	out := b.inner.Reshape(t, shape)
	b.record(&ops.ReshapeOp{X: t, Out: out})
	return out
}

func (b *Backend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	rank := t.Shape().Rank()
	if len(axes) == 0 {
		axes = make([]int, rank)
		for i := range axes {
			axes[i] = rank - 1 - i
		}
	}
	out := b.inner.Transpose(t, axes...)
	b.record(&ops.TransposeOp{X: t, Out: out, Axes: axes})
	return out
}

func (b *Backend) AddScalar(t *tensor.RawTensor, scalar float32) *tensor.RawTensor {
	out := b.inner.AddScalar(t, scalar)
	b.record(&ops.AddScalarOp{X: t, Out: out})
	return out
}

func (b *Backend) MulScalar(t *tensor.RawTensor, scalar float32) *tensor.RawTensor {
	out := b.inner.MulScalar(t, scalar)
	b.record(&ops.MulScalarOp{X: t, Out: out, Scalar: scalar})
	return out
}

func (b *Backend) ReLU(t *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.ReLU(t)
	b.record(&ops.ReLUOp{X: t, Out: out})
	return out
}

func (b *Backend) Rsqrt(t *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Rsqrt(t)
	b.record(&ops.RsqrtOp{X: t, Out: out})
	return out
}

func (b *Backend) Softmax(t *tensor.RawTensor, dim int) *tensor.RawTensor {
	if dim < 0 {
		dim += t.Shape().Rank()
	}
	out := b.inner.Softmax(t, dim)
	b.record(&ops.SoftmaxOp{X: t, Out: out, Dim: dim})
	return out
}

func (b *Backend) Embedding(weight, indices *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Embedding(weight, indices)
	b.record(&ops.EmbeddingOp{Weight: weight, Indices: indices, Out: out})
	return out
}

func (b *Backend) SumDim(t *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	if dim < 0 {
		dim += t.Shape().Rank()
	}
	out := b.inner.SumDim(t, dim, keepDim)
	b.record(&ops.SumDimOp{X: t, Out: out, Dim: dim})
	return out
}

func (b *Backend) MeanDim(t *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	if dim < 0 {
		dim += t.Shape().Rank()
	}
	out := b.inner.MeanDim(t, dim, keepDim)
	b.record(&ops.MeanDimOp{X: t, Out: out, Dim: dim})
	return out
}

// Argmax is not differentiable and passes through unrecorded.
func (b *Backend) Argmax(t *tensor.RawTensor, dim int) *tensor.RawTensor {
	return b.inner.Argmax(t, dim)
}

// CrossEntropy computes the fused softmax + mean NLL loss over logits
// [batch, classes] and int32 targets [batch]. Fusing the two keeps the
// backward rule to a single probs-minus-onehot pass.
func (b *Backend) CrossEntropy(logits, targets *tensor.RawTensor) *tensor.RawTensor {
	loss, probs := ops.CrossEntropyForward(logits, targets)
	b.record(&ops.CrossEntropyOp{Logits: logits, Targets: targets, Probs: probs, Out: loss})
	return loss
}
