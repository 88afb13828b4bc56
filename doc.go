// Package wildscan locates byte patterns with wildcards inside memory regions.
//
// A Pattern is compiled once from one of three signature dialects (IDA-style
// text, a code+mask pair, or raw byte/mask buffers) and then scanned against
// any number of Regions via a Scanner. Compilation selects a literal anchor
// byte using a frequency-weighted cost function, and precomputes a
// Boyer-Moore-Horspool bad-byte table and a mask-aware good-suffix table so
// the hot scan loop never branches on anything but the candidate bytes
// themselves.
//
// Scanning is single-threaded and allocation-free; a compiled Scanner is
// immutable and safe to share across concurrently running scans.
package wildscan
