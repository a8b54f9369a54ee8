package hebrew

// Cluster is one consonant letter together with its attached diacritics
// (spec §3 "Cluster"). Vowel holds the raw niqqud code point attached to
// the cluster — a plain vowel, a hataf vowel, or the sheva code point —
// or 0 if the cluster carries no vowel/sheva at all. A cluster never
// holds both a sheva and a hataf vowel (spec §4.2): the hataf wins and
// the tokenizer raises FlagAmbiguousShevaHataf when both were present in
// the input.
type Cluster struct {
	Letter      Letter
	LetterClass LetterClass

	Dagesh  bool
	ShinDot bool
	SinDot  bool

	Vowel rune // 0, or one of the niqqud/sheva/hataf code points in hebrew.Rune*

	IsFirst bool // first cluster of its word
	IsLast  bool // last cluster of its word
}

// HasVowel reports whether the cluster carries any vowel/sheva code point.
func (c Cluster) HasVowel() bool { return c.Vowel != 0 }

// IsSheva reports whether the cluster's vowel slot holds the plain
// sheva code point (not a hataf vowel).
func (c Cluster) IsSheva() bool { return c.Vowel == RuneSheva }

// IsHataf reports whether the cluster's vowel slot holds a hataf vowel.
func (c Cluster) IsHataf() bool {
	switch c.Vowel {
	case RuneHatafSegol, RuneHatafPatah, RuneHatafQamats:
		return true
	}
	return false
}

// Word is an ordered, non-empty sequence of clusters (spec §3 "A word").
type Word struct {
	Clusters []Cluster

	// FollowedByMaqaf marks a word joined to the next by a maqaf (spec
	// §4.1); the word remains its own unit for classification but is
	// not the final word of its phrase.
	FollowedByMaqaf bool
}
