// Package autodiff exposes tape-based reverse-mode differentiation as a
// decorator over any tensor backend.
package autodiff

import (
	"github.com/loom-ml/loom/internal/autodiff"
	"github.com/loom-ml/loom/internal/tensor"
)

type (
	// Backend wraps an inner backend with gradient recording.
	Backend = autodiff.Backend
	// Tape records operations for the backward pass.
	Tape = autodiff.Tape
)

// New wraps inner with a fresh tape, recording enabled.
func New(inner tensor.Backend) *Backend { return autodiff.New(inner) }

// Backward computes gradients of a scalar loss tensor with respect to
// everything on the backend's tape.
func Backward[T tensor.DType](loss *tensor.Tensor[T], backend *Backend) map[*tensor.RawTensor]*tensor.RawTensor {
	return backend.Backward(loss.Raw())
}
