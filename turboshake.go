package turboshake

// TurboShake128 computes TurboSHAKE128(message, ds, length): a one-shot
// construct-absorb-squeeze call at rate 168 bytes. ds must be in
// [0x01, 0xFF] and length must be non-negative; TurboShake128 panics with an
// *ArgumentError otherwise.
func TurboShake128(message []byte, ds byte, length int) []byte {
	return oneShot(Variant128, message, ds, length)
}

// TurboShake256 computes TurboSHAKE256(message, ds, length): a one-shot
// construct-absorb-squeeze call at rate 136 bytes. ds must be in
// [0x01, 0xFF] and length must be non-negative; TurboShake256 panics with an
// *ArgumentError otherwise.
func TurboShake256(message []byte, ds byte, length int) []byte {
	return oneShot(Variant256, message, ds, length)
}

// TurboShake128Hex is TurboShake128, with the output encoded as uppercase
// hexadecimal (2*length characters, no separators).
func TurboShake128Hex(message []byte, ds byte, length int) string {
	return BytesToHex(TurboShake128(message, ds, length))
}

// TurboShake256Hex is TurboShake256, with the output encoded as uppercase
// hexadecimal (2*length characters, no separators).
func TurboShake256Hex(message []byte, ds byte, length int) string {
	return BytesToHex(TurboShake256(message, ds, length))
}

func oneShot(v Variant, message []byte, ds byte, length int) []byte {
	c := newContext(v, ds)
	c.Update(message)
	return c.Squeeze(length)
}
