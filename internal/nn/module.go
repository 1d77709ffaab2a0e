// Package nn contains the neural network layers: linear, embedding,
// positional encoding, attention, layer norm, the feed-forward block
// and the transformer block, plus the cross-entropy loss.
//
// Layers never hold global state. Each owns its parameters explicitly
// and exposes them through Parameters(), which optimizers iterate.
package nn

import "github.com/loom-ml/loom/internal/tensor"

// Module is a layer with a single float32 input and output. Layers with
// richer signatures (attention takes a mask, the loss takes targets)
// expose their own Forward and only share Parameters().
type Module interface {
	Forward(x *tensor.Tensor[float32]) *tensor.Tensor[float32]
	Parameters() []*Parameter
}
