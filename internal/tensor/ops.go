package tensor

// Method wrappers dispatching to the tensor's backend. Each returns a
// fresh tensor bound to the same backend, so chained expressions stay on
// whatever backend (plain or autodiff) the operands came from.

func (t *Tensor[T]) Add(other *Tensor[T]) *Tensor[T] {
	return New[T](t.backend.Add(t.raw, other.raw), t.backend)
}

func (t *Tensor[T]) Sub(other *Tensor[T]) *Tensor[T] {
	return New[T](t.backend.Sub(t.raw, other.raw), t.backend)
}

func (t *Tensor[T]) Mul(other *Tensor[T]) *Tensor[T] {
	return New[T](t.backend.Mul(t.raw, other.raw), t.backend)
}

func (t *Tensor[T]) Div(other *Tensor[T]) *Tensor[T] {
	return New[T](t.backend.Div(t.raw, other.raw), t.backend)
}

func (t *Tensor[T]) MatMul(other *Tensor[T]) *Tensor[T] {
	return New[T](t.backend.MatMul(t.raw, other.raw), t.backend)
}

func (t *Tensor[T]) BatchMatMul(other *Tensor[T]) *Tensor[T] {
	return New[T](t.backend.BatchMatMul(t.raw, other.raw), t.backend)
}

func (t *Tensor[T]) Reshape(dims ...int) *Tensor[T] {
	return New[T](t.backend.Reshape(t.raw, NewShape(dims...)), t.backend)
}

// Transpose permutes the axes; with no arguments it reverses them.
func (t *Tensor[T]) Transpose(axes ...int) *Tensor[T] {
	return New[T](t.backend.Transpose(t.raw, axes...), t.backend)
}

func (t *Tensor[T]) AddScalar(scalar float32) *Tensor[T] {
	return New[T](t.backend.AddScalar(t.raw, scalar), t.backend)
}

func (t *Tensor[T]) MulScalar(scalar float32) *Tensor[T] {
	return New[T](t.backend.MulScalar(t.raw, scalar), t.backend)
}

func (t *Tensor[T]) ReLU() *Tensor[T] {
	return New[T](t.backend.ReLU(t.raw), t.backend)
}

func (t *Tensor[T]) Rsqrt() *Tensor[T] {
	return New[T](t.backend.Rsqrt(t.raw), t.backend)
}

func (t *Tensor[T]) Softmax(dim int) *Tensor[T] {
	return New[T](t.backend.Softmax(t.raw, dim), t.backend)
}

// Embedding treats t as a [vocab, dim] weight matrix and gathers rows by
// the given indices.
func (t *Tensor[T]) Embedding(indices *Tensor[int32]) *Tensor[T] {
	return New[T](t.backend.Embedding(t.raw, indices.raw), t.backend)
}

func (t *Tensor[T]) SumDim(dim int, keepDim bool) *Tensor[T] {
	return New[T](t.backend.SumDim(t.raw, dim, keepDim), t.backend)
}

func (t *Tensor[T]) MeanDim(dim int, keepDim bool) *Tensor[T] {
	return New[T](t.backend.MeanDim(t.raw, dim, keepDim), t.backend)
}

func (t *Tensor[T]) Argmax(dim int) *Tensor[int32] {
	return New[int32](t.backend.Argmax(t.raw, dim), t.backend)
}
