package turboshake

import (
	"errors"
	"testing"

	"github.com/go-turboshake/turboshake/internal/sponge"
)

// TestInternalPanicValueConvertsBufferFull checks that the one invariant
// violation the sponge layer can report (ErrBufferFull) is translated into
// an *InternalError before it would reach a caller of Context.
func TestInternalPanicValueConvertsBufferFull(t *testing.T) {
	got := internalPanicValue(sponge.ErrBufferFull)

	ie, ok := got.(*InternalError)
	if !ok {
		t.Fatalf("internalPanicValue(sponge.ErrBufferFull) = %T, want *InternalError", got)
	}
	if ie.Error() == "" {
		t.Error("InternalError.Error() returned an empty string")
	}
}

// TestInternalPanicValuePassesThroughOtherPanics checks that panics
// unrelated to the sponge's buffer invariant are left untouched.
func TestInternalPanicValuePassesThroughOtherPanics(t *testing.T) {
	other := errors.New("unrelated panic")
	if got := internalPanicValue(other); got != other {
		t.Errorf("internalPanicValue(%v) = %v, want passthrough", other, got)
	}

	if got := internalPanicValue("a string panic"); got != "a string panic" {
		t.Errorf("internalPanicValue(string) = %v, want passthrough", got)
	}
}
