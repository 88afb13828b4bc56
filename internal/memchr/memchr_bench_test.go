package memchr

import (
	"math/rand"
	"testing"

	segAscii "github.com/segmentio/asm/ascii"
)

// corpus returns n uniformly random bytes from a seeded source, so any given
// target byte occurs sparsely (about once per 256 positions).
func corpus(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	buf := make([]byte, n)
	r.Read(buf)
	return buf
}

// asciiCorpus is like corpus but restricted to the low 7 bits, so it can be
// cross-checked against segmentio/asm's independently implemented ASCII
// validator: if our byte-level generation ever drifted into the 0x80-0xFF
// range by mistake, this would catch it before it silently skewed a
// benchmark's branch-prediction profile.
func asciiCorpus(n int, seed int64) []byte {
	buf := corpus(n, seed)
	for i, b := range buf {
		buf[i] = b & 0x7F
	}
	return buf
}

func TestAsciiCorpusIsValidASCII(t *testing.T) {
	data := asciiCorpus(8192, 1)
	if !segAscii.ValidString(string(data)) {
		t.Fatalf("asciiCorpus produced a non-ASCII byte")
	}
}

func BenchmarkIndexByteDispatch(b *testing.B) {
	data := corpus(64*1024, 2)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		IndexByte(data, 0xEE)
	}
}

func BenchmarkIndexByteGeneric(b *testing.B) {
	data := corpus(64*1024, 2)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		indexByteGeneric(data, 0xEE)
	}
}

func BenchmarkIndexByteStdlib(b *testing.B) {
	data := corpus(64*1024, 2)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		indexByteStdlib(data, 0xEE)
	}
}
