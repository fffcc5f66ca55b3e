// Package keccak implements the Keccak-p[1600,12] permutation: the trailing
// twelve rounds of the standard 24-round Keccak-f[1600] step mapping,
// operating on a 1600-bit (200-byte) state. This is the permutation TurboSHAKE
// builds its sponge on.
package keccak

import "encoding/binary"

// firstRound is the index of the first round this permutation applies.
// Keccak-f[1600] is numbered 0..23; TurboSHAKE uses only the last twelve.
const firstRound = 12

// roundConstants are the standard 24 Keccak-f[1600] round constants RC[0..23].
// Only RC[firstRound..23] are ever read, but the full table is kept so round
// indices need no translation.
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// rotationConstants[i] is the rho rotation offset applied at step i of the
// combined rho/pi sweep, which starts at lane (1,0) and visits piLane[i] next.
var rotationConstants = [24]uint{
	1, 3, 6, 10, 15, 21, 28, 36,
	45, 55, 2, 14, 27, 41, 56, 8,
	25, 43, 62, 18, 39, 61, 20, 44,
}

// piLane[i] is the destination lane index (x + 5y) written at step i of the
// rho/pi sweep.
var piLane = [24]uint{
	10, 7, 11, 17, 18, 3, 5, 16,
	8, 21, 24, 4, 15, 23, 19, 13,
	12, 2, 20, 14, 22, 9, 6, 1,
}

// P1600 applies the Keccak-p[1600,12] permutation to state in place.
func P1600(state *[200]byte) {
	var a [25]uint64
	for i := range a {
		a[i] = binary.LittleEndian.Uint64(state[i*8:])
	}

	f1600(&a)

	for i := range a {
		binary.LittleEndian.PutUint64(state[i*8:], a[i])
	}
}

// f1600 runs rounds firstRound..23 of theta, rho+pi, chi, and iota over the
// 25-lane state.
func f1600(a *[25]uint64) {
	var c [5]uint64

	for round := firstRound; round < 24; round++ {
		// Theta: mix the parities of each column's two neighbors (the left
		// one as is, the right one rotated by 1) into every lane of the column.
		for x := range c {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := range c {
			d := c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				a[x+y] ^= d
			}
		}

		// Rho and pi: rotate each lane and permute it to its new position,
		// walking the fixed 24-step cycle starting from lane (1,0).
		cur := a[1]
		for i := range piLane {
			j := piLane[i]
			next := a[j]
			a[j] = rotl64(cur, rotationConstants[i])
			cur = next
		}

		// Chi: combine each lane with its two row-neighbors, from a snapshot
		// taken before any write in the row.
		for y := 0; y < 25; y += 5 {
			var row [5]uint64
			copy(row[:], a[y:y+5])
			for x := range row {
				a[y+x] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
			}
		}

		// Iota: break the round's symmetry with the round constant.
		a[0] ^= roundConstants[round]
	}
}

// rotl64 rotates v left by s bits. s is normalized modulo 64 and the zero
// case is handled explicitly, since a native shift by 64 is undefined.
func rotl64(v uint64, s uint) uint64 {
	s %= 64
	if s == 0 {
		return v
	}
	return (v << s) | (v >> (64 - s))
}
