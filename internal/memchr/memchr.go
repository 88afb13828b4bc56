// Package memchr implements a SIMD-equivalent single-byte search, the
// memchr-style primitive the anchor+scan strategy in package wildscan uses to
// jump directly to literal occurrences of the chosen anchor byte instead of
// testing every offset. Architectures get a chunked, word-at-a-time (SWAR)
// kernel; anything else falls back to the standard library.
package memchr

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// IndexByte returns the index of the first occurrence of c in data, or -1.
// Implemented per architecture in memchr_amd64.go / memchr_arm64.go /
// memchr_other.go.

// indexByteGeneric is the portable SWAR kernel: it broadcasts c across a
// 64-bit word, XORs it against 8-byte chunks of data, and uses the classic
// has-zero-byte trick to locate a matching byte within the chunk without a
// byte-by-byte compare. Unrolled by 4 words (32 bytes) per iteration to hide
// load-to-use latency; short inputs and trailing bytes fall through to a
// scalar loop.
func indexByteGeneric(data []byte, c byte) int {
	n := len(data)
	i := 0
	bcast := uint64(c) * 0x0101010101010101

	for ; i+32 <= n; i += 32 {
		w0 := binary.LittleEndian.Uint64(data[i:]) ^ bcast
		w1 := binary.LittleEndian.Uint64(data[i+8:]) ^ bcast
		w2 := binary.LittleEndian.Uint64(data[i+16:]) ^ bcast
		w3 := binary.LittleEndian.Uint64(data[i+24:]) ^ bcast

		if m := hasZeroByte(w0); m != 0 {
			return i + bits.TrailingZeros64(m)/8
		}
		if m := hasZeroByte(w1); m != 0 {
			return i + 8 + bits.TrailingZeros64(m)/8
		}
		if m := hasZeroByte(w2); m != 0 {
			return i + 16 + bits.TrailingZeros64(m)/8
		}
		if m := hasZeroByte(w3); m != 0 {
			return i + 24 + bits.TrailingZeros64(m)/8
		}
	}

	for ; i+8 <= n; i += 8 {
		if m := hasZeroByte(binary.LittleEndian.Uint64(data[i:]) ^ bcast); m != 0 {
			return i + bits.TrailingZeros64(m)/8
		}
	}

	for ; i < n; i++ {
		if data[i] == c {
			return i
		}
	}
	return -1
}

// hasZeroByte flags zero byte lanes of v by setting their high bit. The
// lowest flagged lane is always the first zero byte; a borrow can also flag
// a lane above a zero byte, so only the lowest set bit is exact.
func hasZeroByte(v uint64) uint64 {
	return (v - 0x0101010101010101) & ^v & 0x8080808080808080
}

// indexByteStdlib is the universal fallback used on architectures without a
// dedicated chunked kernel, and whenever the chunked kernel isn't worth its
// setup cost on a short input. bytes.IndexByte already carries its own
// assembly on most platforms, so this is never a regression.
func indexByteStdlib(data []byte, c byte) int {
	return bytes.IndexByte(data, c)
}
