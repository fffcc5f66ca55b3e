// Package sponge implements the absorb/pad/squeeze state machine shared by
// TurboSHAKE128 and TurboSHAKE256: a Keccak-p[1600,12] sponge parameterized
// by a byte rate and a domain separation byte.
package sponge

import (
	"errors"

	"github.com/go-turboshake/turboshake/internal/keccak"
	"github.com/go-turboshake/turboshake/internal/mem"
)

// ErrFinalized is returned by Write when called after the sponge has begun
// squeezing output.
var ErrFinalized = errors.New("sponge: write after finalize")

// ErrBufferFull is the value finalize panics with if it observes pos >= rate,
// a state Write is never supposed to leave behind. Callers that want to
// surface this as a typed error of their own should recover and check
// errors.Is(r, ErrBufferFull).
var ErrBufferFull = errors.New("sponge: buffer full before finalize")

// State is an absorb/pad/squeeze Keccak-p[1600,12] sponge.
//
// The zero value is not meaningful on its own (it has rate 0); construct a
// usable State with New.
type State struct {
	s         [200]byte
	rate      int
	ds        byte
	pos       int // bufLen while absorbing; squeeze cursor once squeezing
	squeezing bool
}

// New returns a State with the given rate, in bytes (must be > 0 and < 200),
// and domain separation byte.
func New(rate int, ds byte) State {
	return State{rate: rate, ds: ds}
}

// Rate returns the configured rate in bytes.
func (st *State) Rate() int { return st.rate }

// Write absorbs p into the sponge, permuting each time the rate region
// fills. It returns ErrFinalized without modifying state if the sponge has
// already begun squeezing.
func (st *State) Write(p []byte) (int, error) {
	if st.squeezing {
		return 0, ErrFinalized
	}

	n := len(p)
	for len(p) > 0 {
		w := min(st.rate-st.pos, len(p))
		mem.XORInPlace(st.s[st.pos:st.pos+w], p[:w])
		st.pos += w
		p = p[w:]
		if st.pos == st.rate {
			keccak.P1600(&st.s)
			st.pos = 0
		}
	}
	return n, nil
}

// finalize applies pad10*1 domain-separated by ds and permutes, transitioning
// the sponge from absorbing to squeezing. It is idempotent: subsequent calls
// are no-ops.
func (st *State) finalize() {
	if st.squeezing {
		return
	}
	if st.pos >= st.rate {
		// Write never leaves pos == rate unconsumed; this would indicate a
		// broken invariant rather than bad caller input.
		panic(ErrBufferFull)
	}

	st.s[st.pos] ^= st.ds
	st.s[st.rate-1] ^= 0x80
	keccak.P1600(&st.s)
	st.pos = 0
	st.squeezing = true
}

// Read squeezes output from the sponge into p, finalizing absorption on the
// first call. It always fills p completely and never returns an error.
//
// Repeated calls form a continuous output stream: Read(a) followed by
// Read(b) yields the same bytes as a single Read(a+b) would have, split at
// the same offset.
func (st *State) Read(p []byte) (int, error) {
	st.finalize()

	n := len(p)
	for len(p) > 0 {
		if st.pos == st.rate {
			keccak.P1600(&st.s)
			st.pos = 0
		}
		r := mem.ReadBytes(p, st.s[st.pos:st.rate])
		st.pos += r
		p = p[r:]
	}
	return n, nil
}
