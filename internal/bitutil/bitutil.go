// Package bitutil provides low-level helpers for bit-packed byte slices.
//
// Bits are addressed LSB-first: bit i lives in byte i/8 at position i%8,
// where position 0 is the least-significant bit of the byte. This is the
// packing order shared by the bitmap package and every bit-packed buffer
// in this module.
package bitutil

import "math/bits"

// bitMask[i] selects bit i within a byte.
var bitMask = [8]byte{1, 2, 4, 8, 16, 32, 64, 128}

// flippedMask[i] clears bit i within a byte.
var flippedMask = [8]byte{254, 253, 251, 247, 239, 223, 191, 127}

// BytesForBits returns the number of bytes required to hold n bits.
func BytesForBits(n int) int {
	return (n + 7) / 8
}

// BitIsSet reports whether bit i is set in buf.
//
// The caller must ensure i is within range; no bounds checking beyond the
// slice access itself is performed.
func BitIsSet(buf []byte, i int) bool {
	return buf[i/8]&bitMask[i%8] != 0
}

// SetBit sets bit i in buf.
func SetBit(buf []byte, i int) {
	buf[i/8] |= bitMask[i%8]
}

// ClearBit clears bit i in buf.
func ClearBit(buf []byte, i int) {
	buf[i/8] &= flippedMask[i%8]
}

// SetBitTo sets bit i in buf to v.
func SetBitTo(buf []byte, i int, v bool) {
	if v {
		SetBit(buf, i)
	} else {
		ClearBit(buf, i)
	}
}

// CountSetBits returns the number of set bits among the first n bits of buf.
//
// Trailing bits beyond n in the final byte are masked out, so their values
// do not affect the count.
func CountSetBits(buf []byte, n int) int {
	if n == 0 {
		return 0
	}

	count := 0
	full := n / 8
	for _, b := range buf[:full] {
		count += bits.OnesCount8(b)
	}

	if rem := n % 8; rem != 0 {
		count += bits.OnesCount8(buf[full] & (byte(1)<<rem - 1))
	}

	return count
}
