//go:build noasm || (!amd64 && !arm64)

package memchr

// IndexByte returns the index of the first occurrence of c in data, or -1.
// No chunked kernel is wired up for this architecture (or it was disabled
// via the noasm build tag), so this falls straight through to the standard
// library's own memchr-equivalent.
func IndexByte(data []byte, c byte) int {
	return indexByteStdlib(data, c)
}
