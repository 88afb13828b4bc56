//go:build !noasm && amd64

package memchr

import "golang.org/x/sys/cpu"

// chunkedOK gates the SWAR kernel on unaligned 8-byte loads being cheap,
// which holds for every amd64 chip Go still supports; kept as a variable
// rather than a compile-time constant so it mirrors the runtime
// feature-detection dispatch used elsewhere in this module and stays easy to
// gate more tightly if a narrower target ever needs it.
var chunkedOK = cpu.X86.HasSSE2

const chunkThreshold = 32

// IndexByte returns the index of the first occurrence of c in data, or -1.
func IndexByte(data []byte, c byte) int {
	if chunkedOK && len(data) >= chunkThreshold {
		return indexByteGeneric(data, c)
	}
	return indexByteStdlib(data, c)
}
