// Package ops defines the differentiable operations recorded on the
// gradient tape, each pairing a cached forward result with its backward
// rule.
package ops

import "github.com/loom-ml/loom/internal/tensor"

// Operation is one recorded tape entry. Backward receives the gradient
// flowing into the output and returns gradients aligned with Inputs();
// a nil entry marks a non-differentiable input (e.g. token indices).
//
// Backward rules run their tensor math through the backend passed in,
// which during backpropagation has recording disabled.
type Operation interface {
	Inputs() []*tensor.RawTensor
	Output() *tensor.RawTensor
	Backward(grad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor
}
