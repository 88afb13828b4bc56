package wildscan

// anchorCostFreqWeight (K in spec terms) penalises anchor candidates whose
// byte value recurs often elsewhere in the pattern's literal positions: a
// repeated byte produces more false-positive candidate sites regardless of
// how rare it is globally.
const anchorCostFreqWeight = 50

// strategy identifies which of the three scan loops a Scanner was built to
// run, decided once at Compile time so the hot loop never branches on
// anything but the candidate bytes themselves (spec.md section 9).
type strategy int

const (
	strategyNoAnchor strategy = iota
	strategyMemchr
	strategyHorspool
)

// Scanner is an immutable, compiled view over a Pattern plus the anchor and
// skip tables derived from it and a FrequencyTable. Scanners are read-only
// after Compile returns and safe to share across any number of concurrently
// running scans.
type Scanner struct {
	pattern Pattern

	hasAnchor bool
	anchor    int

	skipTable   [256]int // valid iff hasAnchor; Horspool bad-byte table
	suffixSkip  []int    // len == pattern.trimmedSize
	useHorspool bool     // strategyHorspool vs strategyMemchr when hasAnchor
}

// Compile builds a Scanner from a Pattern, choosing a literal anchor byte
// and deriving its skip tables using freq (DefaultFrequencyTable if nil).
// Compile never fails: an empty or anchor-less Pattern simply yields a
// Scanner that reports zero matches, or falls back to the no-anchor scalar
// strategy, respectively.
func Compile(p Pattern, freq *FrequencyTable) *Scanner {
	if freq == nil {
		freq = &DefaultFrequencyTable
	}

	s := &Scanner{pattern: p}
	if p.trimmedSize == 0 {
		return s
	}

	bytes, masks := p.bytes[:p.trimmedSize], p.masks[:p.trimmedSize]

	s.anchor, s.hasAnchor = chooseAnchor(bytes, masks, p.trimmedSize, freq)
	if s.hasAnchor {
		s.skipTable = buildSkipTable(bytes, masks, p.trimmedSize, s.anchor)
	}
	s.suffixSkip = buildSuffixSkips(bytes, masks, p.trimmedSize)
	return s
}

// CompileNoASM forces the Horspool scan strategy even when the
// memchr-equivalent primitive is available, for testing and benchmarking
// the two strategies against each other. A pattern with no literal byte
// still uses the no-anchor strategy. Production callers should use
// Compile.
func CompileNoASM(p Pattern, freq *FrequencyTable) *Scanner {
	s := Compile(p, freq)
	s.useHorspool = true
	return s
}

// Pattern returns the compiled Pattern this Scanner was built from.
func (s *Scanner) Pattern() Pattern { return s.pattern }

// AnchorByte returns the index of the chosen literal anchor within the
// trimmed prefix, and whether one was found (false iff every position in
// the pattern is masked).
func (s *Scanner) AnchorByte() (int, bool) { return s.anchor, s.hasAnchor }

func (s *Scanner) strategy() strategy {
	switch {
	case !s.hasAnchor:
		return strategyNoAnchor
	case s.useHorspool:
		return strategyHorspool
	default:
		return strategyMemchr
	}
}

// chooseAnchor picks the literal position minimising
// pattern_hist[b]*K + freq[b] + (trimmedSize-i), breaking ties by lowest
// index. Returns ok == false if no literal byte exists in the trimmed prefix.
func chooseAnchor(bytes, masks []byte, trimmed int, freq *FrequencyTable) (int, bool) {
	var hist [256]int
	for i := 0; i < trimmed; i++ {
		if masks[i] == 0xFF {
			hist[bytes[i]]++
		}
	}

	best := -1
	bestCost := 0
	for i := 0; i < trimmed; i++ {
		if masks[i] != 0xFF {
			continue
		}
		b := bytes[i]
		cost := hist[b]*anchorCostFreqWeight + int(freq[b]) + (trimmed - i)
		if best == -1 || cost < bestCost {
			best, bestCost = i, cost
		}
	}
	return best, best != -1
}

// buildSkipTable derives a Boyer-Moore-Horspool bad-byte table keyed at
// position `anchor` rather than at the pattern's last byte: for each
// observed byte value c at the anchor position, the skip is the distance to
// the nearest earlier position compatible with c, or anchor+1 if no such
// position exists. Used by the Horspool scan strategy (see scan_core.go),
// which only CompileNoASM selects.
func buildSkipTable(bytes, masks []byte, trimmed, anchor int) [256]int {
	var table [256]int
	for c := 0; c < 256; c++ {
		skip := anchor + 1
		for j := anchor - 1; j >= 0; j-- {
			if byte(c)&masks[j] == bytes[j] {
				skip = anchor - j
				break
			}
		}
		if skip > trimmed {
			skip = trimmed
		}
		if skip < 1 {
			skip = 1
		}
		table[c] = skip
	}
	return table
}

// isPrefix reports whether the suffix starting at pos is a prefix of the
// whole trimmed pattern, under mask-aware compatibility.
func isPrefix(bytes, masks []byte, trimmed, pos int) bool {
	suffixLen := trimmed - pos
	for i := 0; i < suffixLen; i++ {
		if !compatible(bytes, masks, i, pos+i) {
			return false
		}
	}
	return true
}

// suffixLength returns the length of the longest substring ending at pos
// that is also a mask-compatible suffix of the pattern.
func suffixLength(bytes, masks []byte, trimmed, pos int) int {
	last := trimmed - 1
	i := 0
	for i < pos && compatible(bytes, masks, pos-i, last-i) {
		i++
	}
	return i
}

// buildSuffixSkips computes the mask-aware Boyer-Moore good-suffix table:
// suffixSkip[i] is the forward shift that, on a mismatch at position i after
// positions i+1..trimmed-1 were already confirmed to match, is guaranteed
// not to skip past a valid match; the scan loops add it to the candidate's
// start offset. Always computed for every non-empty pattern, although only
// the anchor-based strategies use it; the no-anchor sweep advances by one.
// Grounded in
// original_source/mem_pattern.h's finalize(), generalised with masks.
func buildSuffixSkips(bytes, masks []byte, trimmed int) []int {
	skips := make([]int, trimmed)
	if trimmed == 1 {
		skips[0] = 1
		return skips
	}

	last := trimmed - 1
	lastPrefix := last

	for i := trimmed - 1; i >= 0; i-- {
		if isPrefix(bytes, masks, trimmed, i+1) {
			lastPrefix = i + 1
		}
		skips[i] = lastPrefix + (last - i)
	}

	for i := 0; i < last; i++ {
		sLen := suffixLength(bytes, masks, trimmed, i)
		pos := last - sLen
		if !compatible(bytes, masks, i-sLen, pos) {
			if shift := sLen + (last - i); shift < skips[pos] {
				skips[pos] = shift
			}
		}
	}

	for i := range skips {
		// The tables above hold the classic Boyer-Moore shift of the
		// mismatched position; subtract its distance to the end to get the
		// shift of the pattern start.
		skips[i] -= last - i
		if skips[i] < 1 {
			skips[i] = 1
		}
		if skips[i] > trimmed {
			skips[i] = trimmed
		}
	}
	return skips
}
