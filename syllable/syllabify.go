package syllable

import "github.com/hebphonics/hebparse/hebrew"

// Syllabify groups a word's classified symbol sequence into syllable
// spans (spec §4.4). The first cluster always opens the first syllable
// (rule 3); every later cluster that carries a vowel or a sheva-na
// opens a new syllable, and every other cluster (bare, or carrying
// sheva-nah) extends the current one as a coda (rules 1, 2, 5).
func Syllabify(symbols []hebrew.Symbol) []hebrew.Syllable {
	if len(symbols) == 0 {
		return nil
	}

	starts := clusterStarts(symbols)
	boundaries := make([]int, 0, len(starts))
	for i, start := range starts {
		if i == 0 {
			boundaries = append(boundaries, start) // rule 3
			continue
		}
		end := len(symbols)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		if clusterOpensSyllable(symbols[start:end]) {
			boundaries = append(boundaries, start)
		}
	}

	syllables := make([]hebrew.Syllable, len(boundaries))
	for i, start := range boundaries {
		end := len(symbols)
		if i+1 < len(boundaries) {
			end = boundaries[i+1]
		}
		syllables[i] = hebrew.Syllable{
			Start: start,
			End:   end,
			Open:  symbols[end-1].IsVowel(), // rule 4
		}
	}
	tracer().Debugf("syllabified %d symbols into %d syllables", len(symbols), len(syllables))
	return syllables
}

// clusterStarts returns the index of every letter symbol in symbols:
// the position where a new cluster's contribution to the flat sequence
// begins. A consumed cluster contributes no symbols at all, so it never
// produces an entry here.
func clusterStarts(symbols []hebrew.Symbol) []int {
	var starts []int
	for i, s := range symbols {
		if s.IsLetter() {
			starts = append(starts, i)
		}
	}
	return starts
}

// clusterOpensSyllable reports whether a cluster's symbol slice carries
// a true vowel (including hataf-* and any -male form) or a voiced
// sheva-na — the spec §4.3.4 nucleus that starts a fresh syllable.
// sheva-nah never qualifies (rule 2).
func clusterOpensSyllable(clusterSymbols []hebrew.Symbol) bool {
	for _, s := range clusterSymbols {
		if s.IsVowel() || s == hebrew.SymShevaNa {
			return true
		}
	}
	return false
}
