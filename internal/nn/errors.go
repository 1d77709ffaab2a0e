package nn

import (
	"fmt"

	"github.com/loom-ml/loom/internal/tensor"
)

// SequenceTooLongError reports an input sequence longer than the
// positional encoding table. It depends on user input and is returned,
// not panicked.
type SequenceTooLongError struct {
	Length int
	MaxLen int
}

func (e *SequenceTooLongError) Error() string {
	return fmt.Sprintf("nn: sequence length %d exceeds maximum %d", e.Length, e.MaxLen)
}

// InvalidShapeError reports a tensor whose shape does not fit the
// operation. Shape mismatches are caller bugs; layers panic with this
// error so the offending call site surfaces in the stack.
type InvalidShapeError struct {
	Op   string
	Want string
	Got  tensor.Shape
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("nn: %s expects %s, got shape %v", e.Op, e.Want, e.Got)
}
