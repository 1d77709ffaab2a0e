package nn

import (
	"fmt"

	"github.com/loom-ml/loom/internal/autodiff/ops"
	"github.com/loom-ml/loom/internal/tensor"
)

// fusedCrossEntropy is satisfied by backends that implement the loss as
// a single differentiable operation. The autodiff backend does.
type fusedCrossEntropy interface {
	CrossEntropy(logits, targets *tensor.RawTensor) *tensor.RawTensor
}

// CrossEntropyLoss computes mean negative log-likelihood of int32
// targets under float32 logits. Logits may be [n, classes] with targets
// [n], or [batch, seq, classes] with targets [batch, seq]; the 3D form
// is flattened so every position counts once.
type CrossEntropyLoss struct {
	backend tensor.Backend
}

// NewCrossEntropyLoss builds the loss on the given backend.
func NewCrossEntropyLoss(backend tensor.Backend) *CrossEntropyLoss {
	return &CrossEntropyLoss{backend: backend}
}

// Forward returns the scalar loss. On a backend with the fused op the
// result participates in backpropagation; otherwise the value is
// computed directly and carries no gradient, which suits evaluation on
// the plain CPU backend.
func (l *CrossEntropyLoss) Forward(logits *tensor.Tensor[float32], targets *tensor.Tensor[int32]) *tensor.Tensor[float32] {
	rawLogits, rawTargets := l.flatten(logits, targets)
	if fused, ok := l.backend.(fusedCrossEntropy); ok {
		return tensor.New[float32](fused.CrossEntropy(rawLogits, rawTargets), l.backend)
	}
	loss, _ := ops.CrossEntropyForward(rawLogits, rawTargets)
	return tensor.New[float32](loss, l.backend)
}

func (l *CrossEntropyLoss) flatten(logits *tensor.Tensor[float32], targets *tensor.Tensor[int32]) (*tensor.RawTensor, *tensor.RawTensor) {
	ls, ts := logits.Shape(), targets.Shape()
	switch {
	case ls.Rank() == 2 && ts.Rank() == 1 && ls[0] == ts[0]:
		return logits.Raw(), targets.Raw()
	case ls.Rank() == 3 && ts.Rank() == 2 && ls[0] == ts[0] && ls[1] == ts[1]:
		flat := logits.Reshape(ls[0]*ls[1], ls[2])
		return flat.Raw(), targets.Raw().WithShape(tensor.NewShape(ts[0] * ts[1]))
	default:
		panic(&InvalidShapeError{
			Op:   "CrossEntropyLoss.Forward",
			Want: fmt.Sprintf("logits [n, c] with targets [n], got targets %v", ts),
			Got:  ls,
		})
	}
}

func (l *CrossEntropyLoss) Parameters() []*Parameter { return nil }
