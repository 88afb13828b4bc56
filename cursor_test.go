package wildscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func addrs(base uintptr, offsets ...int) []Address {
	out := make([]Address, len(offsets))
	for i, off := range offsets {
		out[i] = base + uintptr(off)
	}
	return out
}

func TestScanAllFindsOverlappingMatches(t *testing.T) {
	p := FromIDA("01 02 01")
	data := []byte{0x01, 0x02, 0x01, 0x02, 0x01, 0x02, 0x01}
	region := NewRegion(0x2000, data)

	for _, s := range []*Scanner{Compile(p, nil), CompileNoASM(p, nil)} {
		assert.Equal(t, addrs(0x2000, 0, 2, 4), s.ScanAll(region))
	}
}

func TestScanFirst(t *testing.T) {
	p := FromIDA("DE AD BE EF")
	data := []byte{0, 0, 0xDE, 0xAD, 0xBE, 0xEF, 0xDE, 0xAD, 0xBE, 0xEF}
	region := NewRegion(0x400000, data)

	addr, ok := region.Base+2, true
	got, gotOK := Compile(p, nil).ScanFirst(region)
	if gotOK != ok || got != addr {
		t.Fatalf("ScanFirst = (%#x, %v), want (%#x, %v)", got, gotOK, addr, ok)
	}
}

func TestScanFirstNoMatch(t *testing.T) {
	p := FromIDA("FF FF FF FF")
	region := NewRegion(0, []byte{1, 2, 3})
	if _, ok := Compile(p, nil).ScanFirst(region); ok {
		t.Fatalf("expected no match")
	}
}

func TestScanWithStopsEarly(t *testing.T) {
	p := FromIDA("01")
	data := []byte{0x01, 0x01, 0x01, 0x01}
	region := NewRegion(0, data)

	var seen []Address
	Compile(p, nil).ScanWith(region, func(addr Address) ControlFlow {
		seen = append(seen, addr)
		if len(seen) == 2 {
			return Stop
		}
		return Continue
	})
	assert.Equal(t, addrs(0, 0, 1), seen)
}

func TestScanWithMaskedPattern(t *testing.T) {
	p := FromIDA("48 8B ?? 24")
	data := []byte{0x90, 0x48, 0x8B, 0x05, 0x24, 0x00, 0x48, 0x8B, 0xFF, 0x24}
	region := NewRegion(0, data)

	assert.Equal(t, addrs(0, 1, 6), Compile(p, nil).ScanAll(region))
}

func TestCountMatchesScanAllLength(t *testing.T) {
	p := FromIDA("AA")
	data := []byte{0xAA, 0xBB, 0xAA, 0xAA, 0xCC}
	region := NewRegion(0, data)
	s := Compile(p, nil)

	if n, all := s.Count(region), s.ScanAll(region); n != len(all) {
		t.Fatalf("Count() = %d, len(ScanAll()) = %d", n, len(all))
	}
}

func TestNoAnchorScanFindsMaskedMatches(t *testing.T) {
	p := FromIDA("?1 ?2 ?3")
	data := []byte{0x11, 0x22, 0x13, 0x01, 0x12, 0x23, 0xFF}
	region := NewRegion(0, data)

	s := Compile(p, nil)
	if s.strategy() != strategyNoAnchor {
		t.Fatalf("expected strategyNoAnchor for this pattern")
	}
	assert.Equal(t, addrs(0, 0, 3), s.ScanAll(region))
}

func TestScanAgreesAcrossStrategies(t *testing.T) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i*37 + 11)
	}
	// Plant a handful of known matches for "90 90 ?? E8" amid the noise.
	plant := []byte{0x90, 0x90, 0x55, 0xE8}
	for _, off := range []int{10, 500, 501, 4000} {
		copy(data[off:], plant)
	}
	region := NewRegion(0x555000, data)
	p := FromIDA("90 90 ?? E8")

	fast := Compile(p, nil).ScanAll(region)
	slow := CompileNoASM(p, nil).ScanAll(region)
	assert.Equal(t, slow, fast, "memchr and Horspool strategies disagree")
}
