// Package bits provides small bit-arithmetic helpers used by the register
// file's flag computation.
package bits

import _bits "math/bits"

// Parity reports whether b has an even number of set bits.
func Parity(b byte) bool {
	return _bits.OnesCount8(b)%2 == 0
}
