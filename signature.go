package wildscan

import "strconv"

// bytePair is the raw (value, mask) produced by a dialect parser, before
// canonicalisation.
type bytePair struct {
	v, m byte
}

const defaultWildcard = '?'

// hexNibble maps an ASCII byte to its hex value, or -1 if it isn't a hex
// digit. Mirrors the lookup table approach of the reference parser, which
// uses a 256-entry table rather than a switch to keep the tokenizer branch
// cheap.
var hexNibble = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for d := byte(0); d <= 9; d++ {
		t['0'+d] = int8(d)
	}
	for d := byte(0); d <= 5; d++ {
		t['a'+d] = int8(10 + d)
		t['A'+d] = int8(10 + d)
	}
	return t
}()

func isHexDigit(c byte) (byte, bool) {
	v := hexNibble[c]
	if v < 0 {
		return 0, false
	}
	return byte(v), true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// FromIDA parses Dialect A ("IDA-style" text): whitespace-separated tokens of
// one or two hex nibbles, the wildcard '?', an optional "&HH" AND-mask, and
// an optional "#N" repeat count. Any parse error yields the empty Pattern.
func FromIDA(text string) Pattern {
	return FromIDAWithWildcard(text, defaultWildcard)
}

// FromIDAWithWildcard is FromIDA with a caller-chosen wildcard byte instead
// of the default '?'.
func FromIDAWithWildcard(text string, wildcard byte) Pattern {
	pairs, ok := parseIDA(text, wildcard)
	if !ok {
		return Pattern{}
	}
	return compile(pairs)
}

func parseIDA(text string, wildcard byte) ([]bytePair, bool) {
	var pairs []bytePair
	n := len(text)
	pos := 0

	for pos < n {
		for pos < n && isSpace(text[pos]) {
			pos++
		}
		if pos >= n {
			break
		}

		var v, m byte
		nibbles := 0
		for nibbles < 2 && pos < n {
			c := text[pos]
			switch {
			case c == wildcard:
				v <<= 4
				m <<= 4
				nibbles++
				pos++
			default:
				d, ok := isHexDigit(c)
				if !ok {
					goto tokenDone
				}
				v = v<<4 | d
				m = m<<4 | 0xF
				nibbles++
				pos++
			}
		}
	tokenDone:
		if nibbles == 0 {
			return nil, false
		}
		if nibbles == 1 && m != 0 {
			m |= 0xF0
		}

		if pos < n && text[pos] == '&' {
			pos++
			maskVal, consumed, ok := readHex(text, pos, 2)
			if !ok || consumed == 0 {
				return nil, false
			}
			pos += consumed
			m &= maskVal
			v &= m
		}

		count := 1
		if pos < n && text[pos] == '#' {
			pos++
			start := pos
			for pos < n && text[pos] >= '0' && text[pos] <= '9' {
				pos++
			}
			if pos == start {
				return nil, false
			}
			parsed, err := strconv.Atoi(text[start:pos])
			if err != nil || parsed <= 0 {
				return nil, false
			}
			count = parsed
		}

		for i := 0; i < count; i++ {
			pairs = append(pairs, bytePair{v: v, m: m})
		}
	}

	if len(pairs) == 0 {
		return nil, false
	}
	return pairs, true
}

// readHex parses up to maxDigits hex digits starting at pos, returning the
// accumulated byte value and how many characters were consumed.
func readHex(text string, pos, maxDigits int) (byte, int, bool) {
	var v byte
	n := 0
	for n < maxDigits && pos+n < len(text) {
		d, ok := isHexDigit(text[pos+n])
		if !ok {
			break
		}
		v = v<<4 | d
		n++
	}
	if n == 0 {
		return 0, 0, false
	}
	return v, n, true
}

// FromCode parses Dialect B (code+mask pair): for each index i, mask[i] ==
// wildcard emits a full wildcard byte, otherwise code[i] is emitted as a
// literal. mask == nil means code is purely literal.
func FromCode(code, mask []byte, wildcard byte) Pattern {
	if mask == nil {
		pairs := make([]bytePair, len(code))
		for i, c := range code {
			pairs[i] = bytePair{v: c, m: 0xFF}
		}
		return compile(pairs)
	}
	if len(code) != len(mask) {
		return Pattern{}
	}
	pairs := make([]bytePair, len(code))
	for i := range code {
		if mask[i] == wildcard {
			pairs[i] = bytePair{}
		} else {
			pairs[i] = bytePair{v: code[i], m: 0xFF}
		}
	}
	return compile(pairs)
}

// FromRaw parses Dialect C (raw byte/mask buffers): emits (bytes[i] &
// masks[i], masks[i]) for each i. masks == nil means fully literal.
func FromRaw(data, masks []byte) Pattern {
	if masks == nil {
		pairs := make([]bytePair, len(data))
		for i, b := range data {
			pairs[i] = bytePair{v: b, m: 0xFF}
		}
		return compile(pairs)
	}
	if len(data) != len(masks) {
		return Pattern{}
	}
	pairs := make([]bytePair, len(data))
	for i := range data {
		pairs[i] = bytePair{v: data[i] & masks[i], m: masks[i]}
	}
	return compile(pairs)
}
