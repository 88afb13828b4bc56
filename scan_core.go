package wildscan

import "github.com/mhr3/wildscan/internal/memchr"

// scanWith dispatches once to the strategy chosen at Compile time, then runs
// a loop over region.Data that branches only on the candidate bytes
// themselves, never on the scanner's configuration (spec.md section 9).
func (s *Scanner) scanWith(region Region, fn func(Address) ControlFlow) {
	p := s.pattern
	if p.trimmedSize == 0 || p.size > len(region.Data) {
		return
	}

	switch s.strategy() {
	case strategyMemchr:
		s.scanMemchr(region, fn)
	case strategyHorspool:
		s.scanHorspool(region, fn)
	default:
		s.scanNoAnchor(region, fn)
	}
}

// scanMemchr is the primary strategy: memchr.IndexByte jumps straight to the
// next literal occurrence of the anchor byte, the candidate is verified
// tail-first then in descending position order, and on a confirmed match the scan
// resumes just one byte later so overlapping matches are never skipped. On a
// mismatch, suffixSkip advances past the largest span provably incompatible
// with any match.
func (s *Scanner) scanMemchr(region Region, fn func(Address) ControlFlow) {
	p := s.pattern
	data := region.Data
	bytes, masks := p.bytes, p.masks
	trimmed := p.trimmedSize
	last := trimmed - 1
	anchor := s.anchor
	anchorByte := bytes[anchor]
	suffixSkip := s.suffixSkip

	end := len(data) - p.size + 1
	if end <= 0 {
		return
	}

	p0 := 0
	for p0 < end {
		searchFrom := p0 + anchor
		searchTo := end + anchor

		idx := memchr.IndexByte(data[searchFrom:searchTo], anchorByte)
		if idx < 0 {
			return
		}
		candidate := searchFrom + idx - anchor

		if data[candidate+last]&masks[last] != bytes[last] {
			p0 = candidate + suffixSkip[last]
			continue
		}

		mismatch := -1
		for i := last - 1; i >= 0; i-- {
			if i == anchor {
				continue
			}
			if data[candidate+i]&masks[i] != bytes[i] {
				mismatch = i
				break
			}
		}
		if mismatch >= 0 {
			p0 = candidate + suffixSkip[mismatch]
			continue
		}

		if fn(region.addr(candidate)) == Stop {
			return
		}
		p0 = candidate + 1
	}
}

// scanHorspool is the alternative strategy, selected only by CompileNoASM
// and used for differential testing and benchmarking against the primary
// strategy. It checks the
// anchor position directly rather than searching for it, and on a mismatch
// there advances by the larger of the Horspool bad-byte skip and the
// good-suffix skip, per original_source/mem_pattern.h's scan_predicate.
func (s *Scanner) scanHorspool(region Region, fn func(Address) ControlFlow) {
	p := s.pattern
	data := region.Data
	bytes, masks := p.bytes, p.masks
	trimmed := p.trimmedSize
	last := trimmed - 1
	anchor := s.anchor
	skipTable := &s.skipTable
	suffixSkip := s.suffixSkip

	end := len(data) - p.size + 1
	if end <= 0 {
		return
	}

	for p0 := 0; p0 < end; {
		anchorVal := data[p0+anchor]
		if anchorVal != bytes[anchor] {
			p0 += skipTable[anchorVal]
			continue
		}

		mismatch := -1
		for i := last; i >= 0; i-- {
			if i == anchor {
				continue
			}
			if data[p0+i]&masks[i] != bytes[i] {
				mismatch = i
				break
			}
		}
		if mismatch >= 0 {
			bc := skipTable[anchorVal]
			gs := suffixSkip[mismatch]
			if bc > gs {
				p0 += bc
			} else {
				p0 += gs
			}
			continue
		}

		if fn(region.addr(p0)) == Stop {
			return
		}
		p0++
	}
}

// scanNoAnchor handles the degenerate all-wildcard-literal-free pattern: no
// position is literal, so there is no anchor to search for and no skip
// tables to lean on. Every offset is checked, ascending, advancing by one
// regardless of the outcome.
func (s *Scanner) scanNoAnchor(region Region, fn func(Address) ControlFlow) {
	p := s.pattern
	data := region.Data
	bytes, masks := p.bytes, p.masks
	trimmed := p.trimmedSize

	end := len(data) - p.size + 1
	for p0 := 0; p0 < end; p0++ {
		ok := true
		for i := 0; i < trimmed; i++ {
			if data[p0+i]&masks[i] != bytes[i] {
				ok = false
				break
			}
		}
		if ok && fn(region.addr(p0)) == Stop {
			return
		}
	}
}
