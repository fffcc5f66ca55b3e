// Package mem provides the small, allocation-free byte-level primitives the
// sponge state machine uses to move data into and out of the Keccak state.
//
// The state is kept as a flat, little-endian-ordered byte array (see
// [github.com/go-turboshake/turboshake/internal/keccak.P1600]), so absorbing
// and squeezing are ordinary byte-slice operations: no lane-boundary
// bit-shuffling is needed outside the permutation itself.
package mem

// XORInPlace sets dst[i] ^= src[i] for each i in range, absorbing up to
// len(dst) bytes of src into the state region addressed by dst.
//
// len(src) must be >= len(dst).
func XORInPlace(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// ReadBytes copies min(len(dst), len(src)) bytes from src into dst and
// returns the number of bytes copied, draining output from the state region
// addressed by src.
func ReadBytes(dst, src []byte) int {
	return copy(dst, src)
}
