package wildscan

// Pattern is an immutable canonicalised signature produced by one of the
// FromIDA/FromCode/FromRaw constructors. The zero Pattern is the empty
// pattern: it matches nothing. A Pattern carries only the canonical
// byte/mask data; anchor selection and the derived skip tables are computed
// per Scanner (see Compile), since they depend on a frequency table that can
// vary per caller.
type Pattern struct {
	bytes []byte
	masks []byte

	size        int // original length, including trailing wildcards
	trimmedSize int // length after trailing-wildcard removal

	needsMasks bool
}

// Size is the pattern's original length, including any trailing wildcards.
func (p Pattern) Size() int { return p.size }

// TrimmedSize is the number of leading bytes the scanner actually verifies;
// trailing wildcards never participate in matching.
func (p Pattern) TrimmedSize() int { return p.trimmedSize }

// NeedsMasks reports whether any byte in the trimmed prefix has a mask other
// than 0xFF.
func (p Pattern) NeedsMasks() bool { return p.needsMasks }

// Empty reports whether the pattern can never match (TrimmedSize == 0).
func (p Pattern) Empty() bool { return p.trimmedSize == 0 }

// Bytes and Masks return the trimmed byte/mask prefix. Callers must not
// mutate the returned slices.
func (p Pattern) Bytes() []byte { return p.bytes[:p.trimmedSize] }
func (p Pattern) Masks() []byte { return p.masks[:p.trimmedSize] }

// Match re-checks a single candidate address against the pattern, without
// scanning. Callers typically use this to revalidate a match obtained some
// other way, e.g. from a persisted cache of previous scan results.
func (p Pattern) Match(region Region, addr Address) bool {
	if p.trimmedSize == 0 || addr < region.Base {
		return false
	}
	offset := int(addr - region.Base)
	if offset < 0 || offset+p.size > len(region.Data) {
		return false
	}
	data := region.Data[offset:]
	if p.needsMasks {
		for i := p.trimmedSize - 1; i >= 0; i-- {
			if data[i]&p.masks[i] != p.bytes[i] {
				return false
			}
		}
		return true
	}
	for i := p.trimmedSize - 1; i >= 0; i-- {
		if data[i] != p.bytes[i] {
			return false
		}
	}
	return true
}

// compile canonicalises a raw (value, mask) sequence into an immutable
// Pattern: trims trailing wildcards and computes NeedsMasks.
func compile(pairs []bytePair) Pattern {
	size := len(pairs)
	if size == 0 {
		return Pattern{}
	}

	bytes := make([]byte, size)
	masks := make([]byte, size)
	for i, pr := range pairs {
		masks[i] = pr.m
		bytes[i] = pr.v & pr.m
	}

	trimmed := size
	for trimmed > 0 && masks[trimmed-1] == 0 {
		trimmed--
	}
	if trimmed == 0 {
		return Pattern{}
	}

	needsMasks := false
	for i := 0; i < trimmed; i++ {
		if masks[i] != 0xFF {
			needsMasks = true
			break
		}
	}

	return Pattern{
		bytes:       bytes,
		masks:       masks,
		size:        size,
		trimmedSize: trimmed,
		needsMasks:  needsMasks,
	}
}

// compatible reports whether positions a and b of the trimmed pattern could
// simultaneously hold the same underlying byte value, generalising equality
// with the mask-aware formula from spec.md: (bytes[a]^bytes[b]) &
// (masks[a]&masks[b]) == 0.
func compatible(bytes, masks []byte, a, b int) bool {
	return (bytes[a]^bytes[b])&(masks[a]&masks[b]) == 0
}
