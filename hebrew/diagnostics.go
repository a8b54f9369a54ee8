package hebrew

// DiagnosticFlag is a recoverable-ambiguity or informational marker
// raised alongside a ParseResult (spec §7). Flags never alter the
// symbol sequence; they only inform the caller that a best-effort
// default was applied or that an input oddity was observed.
type DiagnosticFlag uint16

const (
	// FlagHasNoNiqqud marks a word with no niqqud at all (an unpointed
	// or partially pointed word); information loss is expected.
	FlagHasNoNiqqud DiagnosticFlag = 1 << iota

	// FlagAmbiguousQamats marks a qamats whose qamats-gadol/qamats-qatan
	// classification would require full-word stress inference the
	// parser does not perform (spec §4.3.7 rule 3, §9 H501/H504).
	FlagAmbiguousQamats

	// FlagAmbiguousShevaHataf marks a cluster that supplied both a
	// sheva and a hataf vowel; the hataf won (spec §4.2).
	FlagAmbiguousShevaHataf

	// FlagMissingShinSinDot marks a shin letter with neither shin-dot
	// nor sin-dot attached (spec §4.3.1).
	FlagMissingShinSinDot

	// FlagUnknownCodepoints marks input containing code points outside
	// the recognized Hebrew inventory (spec §4.1).
	FlagUnknownCodepoints

	// FlagLikelyPrefixBeLe marks a word that looks like it opens with a
	// detached be-/le- prefix cluster, used only as a hint; prefix
	// detection proper is out of scope (spec §4.3.7 rule 3, §9 H504).
	FlagLikelyPrefixBeLe
)

// Set is a small bitset of DiagnosticFlag values.
type Set uint16

// Has reports whether f is present in the set.
func (s Set) Has(f DiagnosticFlag) bool { return s&Set(f) != 0 }

// With returns a copy of s with f added.
func (s Set) With(f DiagnosticFlag) Set { return s | Set(f) }

// Merge returns the union of s and other.
func (s Set) Merge(other Set) Set { return s | other }

var diagnosticNames = map[DiagnosticFlag]string{
	FlagHasNoNiqqud:         "has_no_niqqud",
	FlagAmbiguousQamats:     "ambiguous_qamats",
	FlagAmbiguousShevaHataf: "ambiguous_sheva_hataf",
	FlagMissingShinSinDot:   "missing_shin_sin_dot",
	FlagUnknownCodepoints:   "unknown_codepoints",
	FlagLikelyPrefixBeLe:    "likely_prefix_be_le",
}

func (f DiagnosticFlag) String() string {
	if name, ok := diagnosticNames[f]; ok {
		return name
	}
	return "unknown_flag"
}

// Strings returns the human-readable names of every flag present in s,
// in a fixed, deterministic order.
func (s Set) Strings() []string {
	order := []DiagnosticFlag{
		FlagHasNoNiqqud, FlagAmbiguousQamats, FlagAmbiguousShevaHataf,
		FlagMissingShinSinDot, FlagUnknownCodepoints, FlagLikelyPrefixBeLe,
	}
	var out []string
	for _, f := range order {
		if s.Has(f) {
			out = append(out, f.String())
		}
	}
	return out
}
