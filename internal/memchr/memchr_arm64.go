//go:build !noasm && arm64

package memchr

import "golang.org/x/sys/cpu"

var chunkedOK = cpu.ARM64.HasASIMD

const chunkThreshold = 32

// IndexByte returns the index of the first occurrence of c in data, or -1.
func IndexByte(data []byte, c byte) int {
	if chunkedOK && len(data) >= chunkThreshold {
		return indexByteGeneric(data, c)
	}
	return indexByteStdlib(data, c)
}
