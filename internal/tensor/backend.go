package tensor

// Backend executes tensor operations on RawTensors. The CPU backend in
// internal/backend/cpu is the reference implementation; the autodiff
// backend decorates any Backend with gradient tracking.
//
// Backend methods panic on shape or dtype violations. Those are caller
// bugs, not runtime conditions, and the panics carry the offending
// shapes. Conditions that depend on user input (unknown tokens,
// over-long sequences) are reported as errors by the layers above.
type Backend interface {
	// Elementwise arithmetic with right-aligned broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// MatMul multiplies two 2D tensors [m,k]x[k,n] -> [m,n].
	MatMul(a, b *RawTensor) *RawTensor
	// BatchMatMul multiplies two 3D tensors [b,m,k]x[b,k,n] -> [b,m,n].
	BatchMatMul(a, b *RawTensor) *RawTensor

	// Reshape returns a copy of t with a new shape of equal element
	// count. Transpose permutes axes; with no axes it reverses them.
	Reshape(t *RawTensor, shape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor

	AddScalar(t *RawTensor, scalar float32) *RawTensor
	MulScalar(t *RawTensor, scalar float32) *RawTensor

	ReLU(t *RawTensor) *RawTensor
	Rsqrt(t *RawTensor) *RawTensor
	// Softmax normalizes along dim (negative dims count from the end).
	Softmax(t *RawTensor, dim int) *RawTensor

	// Embedding gathers rows of weight [vocab,dim] by int32 indices,
	// producing indices.Shape() + [dim].
	Embedding(weight, indices *RawTensor) *RawTensor

	SumDim(t *RawTensor, dim int, keepDim bool) *RawTensor
	MeanDim(t *RawTensor, dim int, keepDim bool) *RawTensor
	// Argmax returns int32 indices of the maximum along dim, with dim
	// removed from the shape.
	Argmax(t *RawTensor, dim int) *RawTensor

	Name() string
	Device() Device
}
