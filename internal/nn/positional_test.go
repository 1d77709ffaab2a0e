package nn

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/loom-ml/loom/internal/backend/cpu"
	"github.com/loom-ml/loom/internal/tensor"
)

func TestPositionalEncodingFirstRow(t *testing.T) {
	pe := NewSinusoidalPositionalEncoding(10, 6, cpu.New())

	// Position 0: sin(0)=0 on even indices, cos(0)=1 on odd.
	enc := pe.Encoding()
	for i := 0; i < 6; i++ {
		want := float32(0)
		if i%2 == 1 {
			want = 1
		}
		if got := enc.At(0, i); got != want {
			t.Errorf("PE[0,%d] = %v, want %v", i, got, want)
		}
	}
}

func TestPositionalEncodingValues(t *testing.T) {
	dim := 4
	pe := NewSinusoidalPositionalEncoding(8, dim, cpu.New())
	enc := pe.Encoding()

	for pos := 0; pos < 8; pos++ {
		for i := 0; i < dim; i++ {
			angle := float64(pos) / math.Pow(10000.0, float64(2*(i/2))/float64(dim))
			want := float32(math.Sin(angle))
			if i%2 == 1 {
				want = float32(math.Cos(angle))
			}
			if got := enc.At(pos, i); got != want {
				t.Errorf("PE[%d,%d] = %v, want %v", pos, i, got, want)
			}
		}
	}
}

func TestPositionalEncodingDeterministic(t *testing.T) {
	a := NewSinusoidalPositionalEncoding(50, 16, cpu.New())
	b := NewSinusoidalPositionalEncoding(50, 16, cpu.New())

	if diff := cmp.Diff(a.Encoding().Data(), b.Encoding().Data()); diff != "" {
		t.Errorf("two encoders with equal config differ (-a +b):\n%s", diff)
	}
}

func TestPositionalEncodingForward(t *testing.T) {
	backend := cpu.New()
	pe := NewSinusoidalPositionalEncoding(10, 4, backend)

	x := tensor.Zeros[float32](tensor.NewShape(2, 3, 4), backend)
	out, err := pe.Forward(x)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if !out.Shape().Equal(tensor.NewShape(2, 3, 4)) {
		t.Fatalf("Forward shape = %v, want [2, 3, 4]", out.Shape())
	}

	// Zero input means the output is the table itself, per batch entry.
	enc := pe.Encoding()
	for b := 0; b < 2; b++ {
		for pos := 0; pos < 3; pos++ {
			for i := 0; i < 4; i++ {
				if got, want := out.At(b, pos, i), enc.At(pos, i); got != want {
					t.Errorf("out[%d,%d,%d] = %v, want %v", b, pos, i, got, want)
				}
			}
		}
	}
}

func TestPositionalEncodingSequenceTooLong(t *testing.T) {
	backend := cpu.New()
	pe := NewSinusoidalPositionalEncoding(4, 2, backend)

	x := tensor.Zeros[float32](tensor.NewShape(1, 5, 2), backend)
	_, err := pe.Forward(x)
	if err == nil {
		t.Fatal("Forward accepted a sequence longer than maxLen")
	}
	var tooLong *SequenceTooLongError
	if !errors.As(err, &tooLong) {
		t.Fatalf("error type = %T, want *SequenceTooLongError", err)
	}
	if tooLong.Length != 5 || tooLong.MaxLen != 4 {
		t.Errorf("error = %+v, want Length=5 MaxLen=4", tooLong)
	}
}

func TestPositionalEncodingBadShapePanics(t *testing.T) {
	backend := cpu.New()
	pe := NewSinusoidalPositionalEncoding(10, 4, backend)

	tests := []struct {
		name  string
		shape tensor.Shape
	}{
		{"2D input", tensor.NewShape(3, 4)},
		{"wrong dim", tensor.NewShape(1, 3, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Forward accepted shape %v", tt.shape)
				}
			}()
			pe.Forward(tensor.Zeros[float32](tt.shape, backend))
		})
	}
}
