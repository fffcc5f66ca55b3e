package turboshake

import (
	"encoding/hex"
	"os"
	"strings"
)

// BytesToHex returns the uppercase hexadecimal encoding of b, with no
// separators.
func BytesToHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// HexToBytes decodes s as hexadecimal and returns the result. By default it
// is permissive: any character that is not a hex digit is silently dropped
// before decoding, and case is ignored. Setting the TURBOSHAKE_STRICT_HEX
// environment variable to any non-empty value switches the default to
// strict, equivalent to always calling HexToBytesStrict.
//
// HexToBytes returns an *ArgumentError if, after filtering, the input has odd
// length; in strict mode, also if it contains a character that is not a hex
// digit.
func HexToBytes(s string) ([]byte, error) {
	if os.Getenv("TURBOSHAKE_STRICT_HEX") != "" {
		return HexToBytesStrict(s)
	}
	return decodeHex(filterHex(s))
}

// HexToBytesStrict decodes s as hexadecimal, rejecting any character that is
// not a hex digit (case-insensitive) and any odd-length input. It returns an
// *ArgumentError on any such input.
func HexToBytesStrict(s string) ([]byte, error) {
	return decodeHex(s)
}

func decodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &ArgumentError{Msg: "invalid hex string: " + err.Error()}
	}
	return b, nil
}

func filterHex(s string) string {
	filtered := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isHexDigit(c) {
			filtered = append(filtered, c)
		}
	}
	return string(filtered)
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
