package vocab

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewAssignsSequentialIDs(t *testing.T) {
	v := New([]string{"hello", "world", "how", "are", "you"})

	if v.Size() != 6 {
		t.Fatalf("Size() = %d, want 6 (five words plus %s)", v.Size(), UnknownToken)
	}
	for i, tok := range []string{"hello", "world", "how", "are", "you"} {
		if got := v.ID(tok); got != int32(i) {
			t.Errorf("ID(%q) = %d, want %d", tok, got, i)
		}
	}
	if v.UnknownID() != 5 {
		t.Errorf("UnknownID() = %d, want 5", v.UnknownID())
	}
}

func TestUnknownWordsMapToUnk(t *testing.T) {
	v := New([]string{"hello", "world"})

	if got := v.ID("zebra"); got != v.UnknownID() {
		t.Errorf("ID(zebra) = %d, want %d", got, v.UnknownID())
	}
	got := v.Encode("hello zebra world")
	want := []int32{0, v.UnknownID(), 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Encode mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	v := New([]string{"hello", "world", "how", "are", "you"})

	text := "how are you hello world"
	if got := v.Decode(v.Encode(text)); got != text {
		t.Errorf("round trip = %q, want %q", got, text)
	}
}

func TestDecodeOutOfRange(t *testing.T) {
	v := New([]string{"a"})
	if got := v.Decode([]int32{0, 99, -1}); got != "a <UNK> <UNK>" {
		t.Errorf("Decode = %q", got)
	}
}

func TestDuplicateTokensKeepFirstID(t *testing.T) {
	v := New([]string{"a", "b", "a"})
	if v.Size() != 3 {
		t.Errorf("Size() = %d, want 3", v.Size())
	}
	if v.ID("a") != 0 || v.ID("b") != 1 {
		t.Errorf("ids = %d, %d", v.ID("a"), v.ID("b"))
	}
}

func TestExplicitUnknownToken(t *testing.T) {
	v := New([]string{"a", UnknownToken, "b"})
	if v.Size() != 3 {
		t.Errorf("Size() = %d, want 3", v.Size())
	}
	if v.UnknownID() != 1 {
		t.Errorf("UnknownID() = %d, want 1", v.UnknownID())
	}
}

func TestEncodeWhitespace(t *testing.T) {
	v := New([]string{"a", "b"})
	got := v.Encode("  a\tb\n a ")
	want := []int32{0, 1, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Encode mismatch (-want +got):\n%s", diff)
	}
}
