package normalize

// isBidiControl reports whether r is a bidirectional formatting control
// stripped by the normalizer alongside cantillation (spec §4.1).
func isBidiControl(r rune) bool {
	switch r {
	case 0x200E, 0x200F, // LRM, RLM
		0x202A, 0x202B, 0x202C, 0x202D, 0x202E, // LRE/RLE/PDF/LRO/RLO
		0x2066, 0x2067, 0x2068, 0x2069: // LRI/RLI/FSI/PDI
		return true
	}
	return false
}
