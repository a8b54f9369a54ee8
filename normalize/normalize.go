package normalize

import (
	"unicode/utf8"

	"github.com/hebphonics/hebparse/hebrew"
	"golang.org/x/text/unicode/norm"
)

// Rune is one classified code point in normalized order (spec §4.1
// "(code_point_class, original_code_point) pairs in canonical order").
type Rune struct {
	Class hebrew.CodepointClass
	CP    rune
}

// diacriticRank orders the diacritic classes within a cluster: dagesh,
// then shin/sin dot, then vowel/sheva (spec §4.1 "canonical order"),
// ahead of any other combining mark. Unicode's own canonical combining
// classes disagree with this order (dagesh sorts after the vowel
// points), so the table below is HebPhonics' own and takes priority; a
// mark outside it falls back to its Unicode canonical combining class
// via golang.org/x/text/unicode/norm, mirroring the way othebrew's
// hebrewModifiedCombiningClass defers to norm for marks its own table
// doesn't cover. Classes outside both (consonant, maqaf, whitespace,
// unmarked "other") are never reordered relative to one another.
func diacriticRank(r Rune) (rank int, isDiacritic bool) {
	switch r.Class {
	case hebrew.ClassDagesh:
		return 0, true
	case hebrew.ClassShinDot, hebrew.ClassSinDot:
		return 1, true
	case hebrew.ClassNiqqud, hebrew.ClassHataf, hebrew.ClassSheva:
		return 2, true
	}
	if ccc := norm.NFD.Properties([]byte(string(r.CP))).CCC(); ccc > 0 {
		return 100 + int(ccc), true
	}
	return 0, false
}

// Normalize runs spec §4.1 over s: it strips cantillation and bidi
// controls, decomposes precomposed shin/sin presentation forms,
// classifies every remaining code point, and reorders each cluster's
// diacritics into canonical order. The relative order of consonants,
// maqaf and whitespace/punctuation is preserved.
func Normalize(s string) ([]Rune, hebrew.Set, error) {
	if !utf8.ValidString(s) {
		return nil, 0, ErrInvalidUTF8
	}

	// norm.NFKD carries Unicode's own decomposition data for the Hebrew
	// presentation-form block (U+FB1D..U+FB4F), splitting every
	// precomposed shin/sin/dagesh form back into base letter plus
	// combining mark(s) before clustering ever sees it.
	s = norm.NFKD.String(s)

	var flags hebrew.Set
	classified := make([]Rune, 0, len(s))
	for _, r := range s {
		if isBidiControl(r) || hebrew.IsCantillation(r) {
			continue
		}
		class := hebrew.ClassOf(r)
		if class == hebrew.ClassOther {
			flags = flags.With(hebrew.FlagUnknownCodepoints)
			tracer().Debugf("unknown codepoint U+%04X", r)
		}
		classified = append(classified, Rune{Class: class, CP: r})
	}

	out := reorderClusters(classified)
	tracer().Debugf("normalized %d code points into %d", utf8.RuneCountInString(s), len(out))
	return out, flags, nil
}

// reorderClusters re-emits each run of diacritics immediately following
// a consonant in canonical rank order, using a stable sort so that
// diacritics of the same rank (which well-formed input never repeats
// within one cluster) keep their relative input order. Diacritics not
// preceded by a consonant (for example at the very start of the stream)
// pass through in input order.
func reorderClusters(in []Rune) []Rune {
	out := make([]Rune, 0, len(in))
	i := 0
	for i < len(in) {
		out = append(out, in[i])
		i++
		if in[i-1].Class != hebrew.ClassConsonant {
			continue
		}
		start := i
		for i < len(in) {
			if _, isDiacritic := diacriticRank(in[i]); !isDiacritic {
				break
			}
			i++
		}
		out = append(out, stableSortByRank(in[start:i])...)
	}
	return out
}

func stableSortByRank(run []Rune) []Rune {
	sorted := append([]Rune(nil), run...)
	for i := 1; i < len(sorted); i++ {
		rank, _ := diacriticRank(sorted[i])
		j := i
		for j > 0 {
			prevRank, _ := diacriticRank(sorted[j-1])
			if prevRank <= rank {
				break
			}
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
			j--
		}
	}
	return sorted
}
