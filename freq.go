package wildscan

// FrequencyTable scores each byte value by how common it is in a typical
// haystack. Lower scores mean rarer bytes, which make better anchors: a
// rarer anchor byte produces fewer false-positive candidate sites for the
// scanner to verify and discard.
type FrequencyTable [256]byte

// DefaultFrequencyTable is tuned for x86/x86_64 machine code, the typical
// haystack for signature scanning. Values are derived from corpus byte
// frequency analysis (CIA World Factbook, rustc source, Septuaginta) in the
// style of memchr's anchor-selection heuristic; UTF-8 continuation/prefix
// bytes are scored the way they occur in practice in binary data rather than
// text, since this table's audience is raw executable bytes, not strings.
var DefaultFrequencyTable = FrequencyTable{
	// 0x00-0x0F
	55, 52, 51, 50, 49, 48, 47, 46, 45, 103, 242, 66, 67, 229, 44, 43,
	// 0x10-0x1F
	42, 41, 40, 39, 38, 37, 36, 35, 34, 33, 56, 32, 31, 30, 29, 28,
	// 0x20-0x2F
	255, 148, 164, 149, 136, 160, 155, 173, 221, 222, 134, 122, 232, 202, 215, 224,
	// 0x30-0x3F
	208, 220, 204, 187, 183, 179, 177, 168, 178, 200, 226, 195, 154, 184, 174, 126,
	// 0x40-0x4F
	120, 191, 157, 194, 170, 189, 162, 161, 150, 193, 142, 137, 171, 176, 185, 167,
	// 0x50-0x5F
	186, 112, 175, 192, 188, 156, 140, 143, 123, 133, 128, 147, 138, 146, 114, 223,
	// 0x60-0x6F
	151, 249, 216, 238, 236, 253, 227, 218, 230, 247, 135, 180, 241, 233, 246, 244,
	// 0x70-0x7F
	231, 139, 245, 243, 251, 235, 201, 196, 240, 214, 152, 182, 205, 181, 127, 27,
	// 0x80-0x8F
	212, 211, 210, 213, 228, 197, 169, 159, 131, 172, 105, 80, 98, 96, 97, 81,
	// 0x90-0x9F
	207, 145, 116, 115, 144, 130, 153, 121, 107, 132, 109, 110, 124, 111, 82, 108,
	// 0xA0-0xAF
	118, 141, 113, 129, 119, 125, 165, 117, 92, 106, 83, 72, 99, 93, 65, 79,
	// 0xB0-0xBF
	166, 237, 163, 199, 190, 225, 209, 203, 198, 217, 219, 206, 234, 248, 158, 239,
	// 0xC0-0xFF: forced to the maximum (common) score, since these values
	// recur constantly as prefix/ModRM bytes in x86 code and make poor
	// anchors despite being individually rare in a byte-value histogram.
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
}
