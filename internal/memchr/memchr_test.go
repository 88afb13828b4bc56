package memchr

import (
	"bytes"
	"testing"
)

func TestIndexByteAgreesWithStdlib(t *testing.T) {
	sizes := []int{0, 1, 7, 8, 9, 31, 32, 33, 63, 64, 65, 257, 4096}
	for _, n := range sizes {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i*7 + 3)
		}

		for _, c := range []byte{0x00, 0x13, 0xFF} {
			want := bytes.IndexByte(data, c)
			got := IndexByte(data, c)
			if got != want {
				t.Errorf("n=%d c=%#x: IndexByte = %d, want %d", n, c, got, want)
			}
		}
	}
}

func TestIndexByteNotPresent(t *testing.T) {
	data := bytes.Repeat([]byte{0x01}, 200)
	if got := IndexByte(data, 0x02); got != -1 {
		t.Errorf("IndexByte = %d, want -1", got)
	}
}

func TestIndexByteAtEveryPosition(t *testing.T) {
	const n = 130
	for pos := 0; pos < n; pos++ {
		data := bytes.Repeat([]byte{0x55}, n)
		data[pos] = 0xAA
		if got := IndexByte(data, 0xAA); got != pos {
			t.Errorf("target at %d: IndexByte = %d", pos, got)
		}
	}
}

func TestIndexByteGenericDirect(t *testing.T) {
	data := bytes.Repeat([]byte{0x00}, 100)
	data[77] = 0x42
	if got := indexByteGeneric(data, 0x42); got != 77 {
		t.Errorf("indexByteGeneric = %d, want 77", got)
	}
	if got := indexByteGeneric(data, 0x99); got != -1 {
		t.Errorf("indexByteGeneric = %d, want -1", got)
	}
}

func TestHasZeroByte(t *testing.T) {
	if hasZeroByte(0x0102030405060700) == 0 {
		t.Errorf("expected a zero byte to be detected in the low byte")
	}
	if hasZeroByte(0x0102030405060708) != 0 {
		t.Errorf("no byte in this word is zero, expected 0")
	}
}
