package wildscan

// ControlFlow is returned by the callback passed to ScanWith to decide
// whether the scan continues past the match just reported.
type ControlFlow int

const (
	// Continue resumes the scan after a reported match.
	Continue ControlFlow = iota
	// Stop ends the scan immediately after a reported match.
	Stop
)

// ScanWith runs the compiled Scanner over region, invoking fn once per match
// address in ascending order. Matches overlap freely: after a match at p,
// the next candidate considered is p+1, never p+Scanner's skip distance.
// ScanWith returns once fn returns Stop or the region is exhausted.
func (s *Scanner) ScanWith(region Region, fn func(Address) ControlFlow) {
	s.scanWith(region, fn)
}

// ScanFirst returns the address of the first match in region, or false if
// none exists.
func (s *Scanner) ScanFirst(region Region) (Address, bool) {
	var found Address
	ok := false
	s.scanWith(region, func(addr Address) ControlFlow {
		found, ok = addr, true
		return Stop
	})
	return found, ok
}

// ScanAll returns every match address in region, in ascending order,
// including overlapping matches.
func (s *Scanner) ScanAll(region Region) []Address {
	var matches []Address
	s.scanWith(region, func(addr Address) ControlFlow {
		matches = append(matches, addr)
		return Continue
	})
	return matches
}

// Count returns the number of matches in region without allocating a slice
// to hold them.
func (s *Scanner) Count(region Region) int {
	n := 0
	s.scanWith(region, func(Address) ControlFlow {
		n++
		return Continue
	})
	return n
}
