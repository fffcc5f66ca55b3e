package sponge

import (
	"bytes"
	"testing"
)

func TestWriteAfterReadRejected(t *testing.T) {
	st := New(168, 0x1f)
	var out [8]byte
	_, _ = st.Read(out[:])

	if _, err := st.Write([]byte("too late")); err != ErrFinalized {
		t.Errorf("Write after Read returned %v, want %v", err, ErrFinalized)
	}
}

func TestSqueezeContinuity(t *testing.T) {
	a := New(168, 0x1f)
	_, _ = a.Write([]byte("squeeze continuity"))
	want := make([]byte, 500)
	_, _ = a.Read(want)

	b := New(168, 0x1f)
	_, _ = b.Write([]byte("squeeze continuity"))
	got := make([]byte, 500)
	_, _ = b.Read(got[:200])
	_, _ = b.Read(got[200:337])
	_, _ = b.Read(got[337:])

	if !bytes.Equal(got, want) {
		t.Errorf("split squeeze diverged from single squeeze")
	}
}

func TestEmptySqueezeIsNoOp(t *testing.T) {
	st := New(168, 0x1f)
	_, _ = st.Write([]byte("hello"))

	n, err := st.Read(nil)
	if n != 0 || err != nil {
		t.Errorf("Read(nil) = (%d, %v), want (0, nil)", n, err)
	}

	want := make([]byte, 32)
	got := make([]byte, 32)

	ref := New(168, 0x1f)
	_, _ = ref.Write([]byte("hello"))
	_, _ = ref.Read(want)
	_, _ = st.Read(got)

	if !bytes.Equal(got, want) {
		t.Errorf("Read(0) advanced the stream: got %x, want %x", got, want)
	}
}

// TestFinalizeInvariantViolationPanicsWithErrBufferFull checks that finalize
// reports a broken pos>=rate invariant as ErrBufferFull, the value callers
// outside this package recover and translate into their own typed error.
func TestFinalizeInvariantViolationPanicsWithErrBufferFull(t *testing.T) {
	st := New(168, 0x1f)
	st.pos = st.rate // corrupt the invariant Write always maintains

	defer func() {
		r := recover()
		if r != ErrBufferFull {
			t.Fatalf("finalize panicked with %v, want %v", r, ErrBufferFull)
		}
	}()

	st.finalize()
}

func TestChunkedAbsorptionMatchesSingleWrite(t *testing.T) {
	msg := bytes.Repeat([]byte{0xfb}, 4913)

	oneShot := New(168, 0x1f)
	_, _ = oneShot.Write(msg)
	want := make([]byte, 64)
	_, _ = oneShot.Read(want)

	for _, chunkSize := range []int{1, 7, 13, 168, 169} {
		chunked := New(168, 0x1f)
		for i := 0; i < len(msg); i += chunkSize {
			end := min(i+chunkSize, len(msg))
			_, _ = chunked.Write(msg[i:end])
		}
		got := make([]byte, 64)
		_, _ = chunked.Read(got)

		if !bytes.Equal(got, want) {
			t.Errorf("chunkSize=%d: got %x, want %x", chunkSize, got, want)
		}
	}
}
