package model

import (
	"fmt"

	"github.com/loom-ml/loom/internal/autodiff"
	"github.com/loom-ml/loom/internal/nn"
	"github.com/loom-ml/loom/internal/optim"
	"github.com/loom-ml/loom/internal/tensor"
)

// Trainer runs next-token training by prefix slicing: for every prefix
// ids[:t] of a sequence the model predicts ids[t], and only the final
// position contributes to the loss. This keeps training consistent with
// unmasked attention, where earlier positions see the whole input.
type Trainer struct {
	model   *Transformer
	loss    *nn.CrossEntropyLoss
	backend *autodiff.Backend
	opt     optim.Optimizer
}

// NewTrainer wires a model on an autodiff backend to an optimizer.
func NewTrainer(m *Transformer, backend *autodiff.Backend, opt optim.Optimizer) *Trainer {
	return &Trainer{
		model:   m,
		loss:    nn.NewCrossEntropyLoss(backend),
		backend: backend,
		opt:     opt,
	}
}

// TrainSequence performs one optimization step per prefix of ids and
// returns the mean loss across them. Sequences shorter than two tokens
// have no next-token pair to learn from.
func (t *Trainer) TrainSequence(ids []int32) (float32, error) {
	if len(ids) < 2 {
		return 0, fmt.Errorf("model: need at least 2 tokens to train, got %d", len(ids))
	}
	var total float32
	for n := 1; n < len(ids); n++ {
		loss, err := t.step(ids[:n], ids[n])
		if err != nil {
			return 0, err
		}
		total += loss
	}
	return total / float32(len(ids)-1), nil
}

func (t *Trainer) step(prefix []int32, next int32) (float32, error) {
	input, err := tensor.FromSlice(prefix, tensor.NewShape(1, len(prefix)), t.backend)
	if err != nil {
		return 0, err
	}
	logits, err := t.model.Forward(input)
	if err != nil {
		return 0, err
	}

	// Select the final position's logits with a one-hot matmul so the
	// selection stays on the tape.
	seqLen := len(prefix)
	flat := logits.Reshape(seqLen, t.model.cfg.VocabSize)
	selector := tensor.Zeros[float32](tensor.NewShape(1, seqLen), t.backend)
	selector.Set(1, 0, seqLen-1)
	last := selector.MatMul(flat)

	target := tensor.MustFromSlice([]int32{next}, tensor.NewShape(1), t.backend)
	loss := t.loss.Forward(last, target)

	grads := t.backend.Backward(loss.Raw())
	t.opt.Step(grads)
	t.backend.Tape().Reset()
	return loss.Item(), nil
}
