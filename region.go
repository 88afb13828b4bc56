package wildscan

import "unsafe"

// Address is a location within a scanned Region, reported as the base plus
// the byte offset of a match.
type Address = uintptr

// Region is an opaque, read-only view over a contiguous range of bytes.
// Scanners never read outside [0, len(Data)) of a Region's Data; callers are
// responsible for ensuring Data was obtained from memory that is actually
// readable (typically via a module-walker collaborator, see external.go).
type Region struct {
	// Base is the address Data[0] corresponds to. It is used only to turn
	// match offsets into Addresses; the scanner never dereferences it
	// directly.
	Base uintptr
	Data []byte
}

// NewRegion wraps an already-available byte slice as a Region. Use this when
// the caller has the bytes in hand (a file mapping, a captured snapshot of
// process memory, a test fixture).
func NewRegion(base uintptr, data []byte) Region {
	return Region{Base: base, Data: data}
}

// RegionFromPointer builds a Region directly from a base address and length,
// for callers (typically a module walker) that only have a raw pointer into
// live process memory. This is the module's only unsafe boundary.
//
// The caller must guarantee that [base, base+length) is mapped and readable
// for the lifetime of the returned Region; wildscan performs no validation
// and has no crash-translation of its own (see CrashGuard in external.go).
func RegionFromPointer(base uintptr, length int) Region {
	if length <= 0 {
		return Region{Base: base}
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(base)), length)
	return Region{Base: base, Data: data}
}

func (r Region) addr(offset int) Address {
	return r.Base + uintptr(offset)
}
