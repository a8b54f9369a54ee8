package cluster

import (
	"github.com/hebphonics/hebparse/hebrew"
	"github.com/hebphonics/hebparse/normalize"
)

// Tokenize folds a normalized code-point stream into words, attaching
// each diacritic to the most recently opened cluster (spec §4.2). A
// run of ClassWhitespace or ClassOther code points ends the current
// word outright; a ClassMaqaf code point ends it but flags the word
// FollowedByMaqaf instead of leaving a gap (spec §4.1).
func Tokenize(runes []normalize.Rune) ([]hebrew.Word, hebrew.Set) {
	var (
		words   []hebrew.Word
		current []hebrew.Cluster
		flags   hebrew.Set
	)

	flush := func(followedByMaqaf bool) {
		if len(current) == 0 {
			return
		}
		current[0].IsFirst = true
		current[len(current)-1].IsLast = true
		words = append(words, hebrew.Word{Clusters: current, FollowedByMaqaf: followedByMaqaf})
		current = nil
	}

	for _, item := range runes {
		switch item.Class {
		case hebrew.ClassWhitespace, hebrew.ClassOther:
			flush(false)
		case hebrew.ClassMaqaf:
			flush(true)
		case hebrew.ClassConsonant:
			current = append(current, hebrew.Cluster{
				Letter:      hebrew.Letter(item.CP),
				LetterClass: hebrew.ClassOfLetter(hebrew.Letter(item.CP)),
			})
		case hebrew.ClassDagesh:
			if n := len(current); n > 0 {
				current[n-1].Dagesh = true
			}
		case hebrew.ClassShinDot:
			if n := len(current); n > 0 {
				current[n-1].ShinDot = true
			}
		case hebrew.ClassSinDot:
			if n := len(current); n > 0 {
				current[n-1].SinDot = true
			}
		case hebrew.ClassNiqqud, hebrew.ClassHataf, hebrew.ClassSheva:
			if n := len(current); n > 0 {
				if attachVowel(&current[n-1], item) {
					flags = flags.With(hebrew.FlagAmbiguousShevaHataf)
				}
			}
		}
	}
	flush(false)

	tracer().Debugf("tokenized %d words", len(words))
	return words, flags
}

// attachVowel sets c's vowel slot to item's code point, applying spec
// §4.2's hataf-wins-over-sheva rule when both were supplied on one
// cluster. It reports whether the ambiguity actually fired.
func attachVowel(c *hebrew.Cluster, item normalize.Rune) (ambiguous bool) {
	isHataf := item.Class == hebrew.ClassHataf
	isSheva := item.Class == hebrew.ClassSheva

	switch {
	case !c.HasVowel():
		c.Vowel = item.CP
		return false
	case c.IsSheva() && isHataf:
		c.Vowel = item.CP // hataf wins over a previously attached sheva
		return true
	case c.IsHataf() && isSheva:
		return true // sheva loses to a previously attached hataf; drop it
	default:
		// Two plain niqqud/sheva code points landed on one cluster; this
		// cannot arise from well-formed pointed text. Keep the first.
		return false
	}
}
