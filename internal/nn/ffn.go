package nn

import "github.com/loom-ml/loom/internal/tensor"

// FFN is the position-wise feed-forward network: dim -> hidden with
// ReLU, then hidden -> dim.
type FFN struct {
	fc1 *Linear
	act *ReLU
	fc2 *Linear
}

// NewFFN builds the two-layer feed-forward block.
func NewFFN(dim, hidden int, backend tensor.Backend) *FFN {
	return &FFN{
		fc1: NewLinear(dim, hidden, backend),
		act: NewReLU(),
		fc2: NewLinear(hidden, dim, backend),
	}
}

// Forward applies the network position-wise. 3D inputs [batch, seq,
// dim] are flattened for the linears and restored on the way out.
func (f *FFN) Forward(x *tensor.Tensor[float32]) *tensor.Tensor[float32] {
	s := x.Shape()
	if s.Rank() == 3 {
		flat := x.Reshape(s[0]*s[1], s[2])
		out := f.fc2.Forward(f.act.Forward(f.fc1.Forward(flat)))
		return out.Reshape(s[0], s[1], s[2])
	}
	return f.fc2.Forward(f.act.Forward(f.fc1.Forward(x)))
}

func (f *FFN) Parameters() []*Parameter {
	return append(f.fc1.Parameters(), f.fc2.Parameters()...)
}
