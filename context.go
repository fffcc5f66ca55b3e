// Package turboshake implements the TurboSHAKE128 and TurboSHAKE256
// extendable-output functions (XOFs): a sponge construction built on a
// 12-round Keccak-p[1600] permutation, as specified by the Keccak team.
//
// A XOF absorbs an arbitrary-length message together with a caller-chosen
// domain separation byte, then produces an output stream of arbitrary
// requested length. Outputs are a deterministic function of
// (rate, domain separation byte, message): identical inputs yield identical
// outputs.
//
// Both a one-shot API (TurboShake128, TurboShake256, and their Hex variants)
// and an incremental streaming API (Context, via NewTurboShake128 and
// NewTurboShake256) are provided.
package turboshake

import (
	"errors"

	"github.com/go-turboshake/turboshake/internal/sponge"
)

// Default is the conventional domain separation byte used for plain
// TurboSHAKE. Other values support domain-separated uses of the same
// permutation.
const Default byte = 0x1F

// Context is an incremental TurboSHAKE instance. It implements
// io.ReadWriter: writes absorb data into the sponge, and reads squeeze
// output from it. Once a Context has produced output, it must not be
// written to again.
//
// A Context is not safe for concurrent use by multiple goroutines.
type Context struct {
	sp sponge.State
}

// NewTurboShake128 returns a new incremental TurboSHAKE128 Context (rate 168
// bytes) with the given domain separation byte. ds must be in [0x01, 0xFF];
// NewTurboShake128 panics with an *ArgumentError otherwise.
func NewTurboShake128(ds byte) *Context {
	return newContext(Variant128, ds)
}

// NewTurboShake256 returns a new incremental TurboSHAKE256 Context (rate 136
// bytes) with the given domain separation byte. ds must be in [0x01, 0xFF];
// NewTurboShake256 panics with an *ArgumentError otherwise.
func NewTurboShake256(ds byte) *Context {
	return newContext(Variant256, ds)
}

func newContext(v Variant, ds byte) *Context {
	validateDS(ds)
	return &Context{sp: sponge.New(v.Rate(), ds)}
}

// Update absorbs p into the transcript and returns c for chaining. Update
// panics with a *UsageError if c has already produced output; the update is
// never partially applied; c is left unchanged.
//
// Multiple Update calls are equivalent to a single call on the concatenated
// input: Update(a) followed by Update(b) absorbs the same bytes, in the same
// order, as a single Update(a‖b).
func (c *Context) Update(p []byte) *Context {
	if _, err := c.sp.Write(p); err != nil {
		panic(&UsageError{Msg: "update after finalization"})
	}
	return c
}

// Write absorbs p, satisfying io.Writer. It returns a *UsageError, rather
// than panicking, if c has already produced output — unlike Update, Write is
// meant for use through the io.Writer interface (io.Copy and friends), which
// has no room for a chainable panic-on-misuse API.
func (c *Context) Write(p []byte) (int, error) {
	n, err := c.sp.Write(p)
	if err != nil {
		return n, &UsageError{Msg: "write after finalization"}
	}
	return n, nil
}

// Read squeezes output into p, satisfying io.Reader. On the first call to
// Read or any Squeeze* method, it finalizes absorption; afterward, Update and
// Write are no longer permitted. Read always fills p completely and never
// returns an error.
func (c *Context) Read(p []byte) (int, error) {
	return c.read(p)
}

// Squeeze returns the next length bytes of output, finalizing absorption on
// the first call. length must be non-negative; Squeeze panics with an
// *ArgumentError otherwise.
//
// Calls compose: Squeeze(a) followed by Squeeze(b) returns the same bytes,
// in the same order, as a single Squeeze(a+b) would have, split at offset a.
func (c *Context) Squeeze(length int) []byte {
	validateLength(length)
	out := make([]byte, length)
	_, _ = c.read(out)
	return out
}

// SqueezeInto writes the next length bytes of output into target starting at
// offset, finalizing absorption on the first call, and returns target.
// offset and length must be non-negative and offset+length must not exceed
// len(target); SqueezeInto panics with an *ArgumentError otherwise.
func (c *Context) SqueezeInto(target []byte, offset, length int) []byte {
	validateTarget(target, offset, length)
	_, _ = c.read(target[offset : offset+length])
	return target
}

// read wraps the sponge's Read, translating a broken internal invariant
// (sponge.ErrBufferFull, which Write's own bookkeeping should never allow)
// into an *InternalError rather than letting the bare sentinel escape.
func (c *Context) read(p []byte) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			panic(internalPanicValue(r))
		}
	}()
	return c.sp.Read(p)
}

// internalPanicValue re-maps a recovered panic value from the sponge layer
// into an *InternalError when it reports the one invariant violation this
// package knows how to name; any other panic value passes through unchanged.
func internalPanicValue(r any) any {
	if err, ok := r.(error); ok && errors.Is(err, sponge.ErrBufferFull) {
		return &InternalError{Msg: err.Error()}
	}
	return r
}

// SqueezeHex returns the next length bytes of output as uppercase
// hexadecimal (2*length characters, no separators).
func (c *Context) SqueezeHex(length int) string {
	return BytesToHex(c.Squeeze(length))
}

// Clone returns an independent copy of c's current state. The clone and the
// original evolve independently from the point of the call.
//
// This is the opt-in snapshot extension the TurboSHAKE sponge contract
// allows but does not require; it is safe because Context holds no pointers
// of its own.
func (c *Context) Clone() *Context {
	clone := *c
	return &clone
}
