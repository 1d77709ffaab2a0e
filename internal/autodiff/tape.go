package autodiff

import (
	"github.com/loom-ml/loom/internal/autodiff/ops"
	"github.com/loom-ml/loom/internal/tensor"
)

// Tape records operations in execution order so gradients can be
// propagated back through them.
type Tape struct {
	ops []ops.Operation
}

// NewTape returns an empty tape.
func NewTape() *Tape { return &Tape{} }

// Record appends an operation.
func (t *Tape) Record(op ops.Operation) { t.ops = append(t.ops, op) }

// Len returns the number of recorded operations.
func (t *Tape) Len() int { return len(t.ops) }

// Reset discards all recorded operations. Call between training steps.
func (t *Tape) Reset() { t.ops = t.ops[:0] }

// Backward seeds a ones-gradient at loss and walks the tape in reverse,
// accumulating gradients per RawTensor. Tensors not on any path to the
// loss are absent from the result.
func (t *Tape) Backward(loss *tensor.RawTensor, backend tensor.Backend) map[*tensor.RawTensor]*tensor.RawTensor {
	grads := make(map[*tensor.RawTensor]*tensor.RawTensor)

	seed := tensor.MustNewRaw(loss.Shape(), tensor.Float32, loss.Device())
	data := seed.AsFloat32()
	for i := range data {
		data[i] = 1
	}
	grads[loss] = seed

	for i := len(t.ops) - 1; i >= 0; i-- {
		op := t.ops[i]
		outGrad, ok := grads[op.Output()]
		if !ok {
			continue
		}
		inputGrads := op.Backward(outGrad, backend)
		for j, input := range op.Inputs() {
			g := inputGrads[j]
			if g == nil {
				continue
			}
			if existing, ok := grads[input]; ok {
				grads[input] = backend.Add(existing, g)
			} else {
				grads[input] = g
			}
		}
	}
	return grads
}
