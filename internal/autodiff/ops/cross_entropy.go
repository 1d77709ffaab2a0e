package ops

import (
	"fmt"
	"math"

	"github.com/loom-ml/loom/internal/tensor"
)

// CrossEntropyForward computes the mean negative log-likelihood of
// int32 targets [batch] under logits [batch, classes], returning the
// scalar loss and the softmax probabilities cached for the backward
// pass. Uses log-sum-exp for stability.
func CrossEntropyForward(logits, targets *tensor.RawTensor) (loss, probs *tensor.RawTensor) {
	ls := logits.Shape()
	if ls.Rank() != 2 {
		panic(fmt.Sprintf("ops: cross entropy logits must be 2D, got %v", ls))
	}
	if targets.DType() != tensor.Int32 || targets.NumElements() != ls[0] {
		panic(fmt.Sprintf("ops: cross entropy targets must be int32 %v, got %s %v",
			tensor.NewShape(ls[0]), targets.DType(), targets.Shape()))
	}
	batch, classes := ls[0], ls[1]

	probs = tensor.MustNewRaw(ls, tensor.Float32, logits.Device())
	lossT := tensor.MustNewRaw(tensor.NewShape(1), tensor.Float32, logits.Device())

	ld, pd := logits.AsFloat32(), probs.AsFloat32()
	var total float64
	for i, target := range targets.AsInt32() {
		if target < 0 || int(target) >= classes {
			panic(fmt.Sprintf("ops: cross entropy target %d out of range [0, %d)", target, classes))
		}
		row := ld[i*classes : (i+1)*classes]

		maxVal := row[0]
		for _, v := range row[1:] {
			if v > maxVal {
				maxVal = v
			}
		}
		var sum float64
		for _, v := range row {
			sum += math.Exp(float64(v - maxVal))
		}
		logSumExp := float64(maxVal) + math.Log(sum)

		for c, v := range row {
			pd[i*classes+c] = float32(math.Exp(float64(v) - logSumExp))
		}
		total += logSumExp - float64(row[target])
	}
	lossT.AsFloat32()[0] = float32(total / float64(batch))
	return lossT, probs
}

// CrossEntropyOp records the fused softmax + NLL loss.
type CrossEntropyOp struct {
	Logits, Targets, Probs, Out *tensor.RawTensor
}

func (op *CrossEntropyOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.Logits, op.Targets}
}

func (op *CrossEntropyOp) Output() *tensor.RawTensor { return op.Out }

func (op *CrossEntropyOp) Backward(grad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	batch, classes := op.Logits.Shape()[0], op.Logits.Shape()[1]
	scale := grad.AsFloat32()[0] / float32(batch)

	out := tensor.MustNewRaw(op.Logits.Shape(), tensor.Float32, op.Logits.Device())
	pd, dst := op.Probs.AsFloat32(), out.AsFloat32()
	for i := range pd {
		dst[i] = pd[i] * scale
	}
	for i, target := range op.Targets.AsInt32() {
		dst[i*classes+int(target)] -= scale
	}
	return []*tensor.RawTensor{out, nil}
}
