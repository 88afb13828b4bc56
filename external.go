package wildscan

// The types below describe, but do not implement, the external collaborators
// spec.md places out of scope for the core: module/executable-image walking,
// memory-protection primitives, and platform crash translation. wildscan
// depends only on these interfaces so a caller can supply a real Windows/
// Linux/macOS-specific implementation without the core importing any
// OS-specific package.

// Protection is a bitmask of the access permissions of a Region.
type Protection uint8

const (
	ProtRead Protection = 1 << iota
	ProtWrite
	ProtExecute
)

// Readable reports whether a Region with this protection may be scanned.
func (p Protection) Readable() bool { return p&ProtRead != 0 }

// ModuleWalker enumerates the readable regions of an on-disk or in-memory
// executable image (PE/ELF/Mach-O). wildscan consumes only regions whose
// Protection includes ProtRead; it has no opinion on how they were obtained.
type ModuleWalker interface {
	// Walk calls yield once per region in the image, in arbitrary order.
	// Walk stops early if yield returns false.
	Walk(yield func(Region, Protection) bool)
}

// ProtectionPrimitive wraps the platform's mprotect/VirtualProtect calls.
// wildscan's Scanner never calls these; they exist purely so callers that
// need to temporarily relax protection before scanning writable-but-swapped
// or guard-paged memory have a documented seam to plug into.
type ProtectionPrimitive interface {
	Query(addr uintptr) (Protection, error)
	Modify(addr uintptr, length int, prot Protection) (previous Protection, err error)
}

// CrashGuard runs fn and converts a platform-level access violation
// (SIGSEGV / structured exception) raised while fn executes into a returned
// error instead of terminating the process. A speculative scan over a
// caller-supplied Region that turns out to be unmapped or protection-changed
// mid-scan is exactly the kind of fault this is meant to catch; wildscan's
// scan loop itself has no knowledge of signals or SEH and assumes it is
// always invoked inside an active CrashGuard when scanning regions whose
// validity isn't otherwise guaranteed.
type CrashGuard interface {
	Run(fn func() error) (err error)
}
