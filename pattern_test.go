package wildscan

import "testing"

func TestPatternMatch(t *testing.T) {
	p := FromIDA("01 ?? 03")
	data := []byte{0xFF, 0x01, 0x99, 0x03, 0xFF}
	region := NewRegion(0x1000, data)

	if !p.Match(region, region.addr(1)) {
		t.Fatalf("expected match at offset 1")
	}
	if p.Match(region, region.addr(0)) {
		t.Fatalf("unexpected match at offset 0")
	}
}

func TestPatternMatchOutOfRange(t *testing.T) {
	p := FromIDA("01 02 03")
	data := []byte{0x01, 0x02}
	region := NewRegion(0, data)

	if p.Match(region, region.addr(0)) {
		t.Fatalf("match should fail: pattern longer than remaining data")
	}
	if p.Match(region, 0xFFFFFFFF) {
		t.Fatalf("match should fail: address beyond region end")
	}
}

func TestPatternMatchEmptyPattern(t *testing.T) {
	p := FromIDA("? ?")
	region := NewRegion(0, []byte{0x01, 0x02})
	if p.Match(region, region.addr(0)) {
		t.Fatalf("an empty (all-wildcard) pattern should never match")
	}
}

func TestCompatible(t *testing.T) {
	bytes := []byte{0x12, 0x12, 0x34}
	masks := []byte{0xFF, 0x0F, 0xFF}

	if !compatible(bytes, masks, 0, 1) {
		t.Errorf("0x12 (literal) and 0x_2 (low-nibble only) should be compatible")
	}
	if compatible(bytes, masks, 0, 2) {
		t.Errorf("0x12 and 0x34 are both fully literal and differ: should be incompatible")
	}
}
