package classify

import "github.com/hebphonics/hebparse/hebrew"

// Classify turns one tokenized word into its ordered grammatical
// symbol sequence (spec §4.3). It walks the word's clusters exactly
// once, left to right, building a draft per cluster and letting each
// rule group mutate only the current draft or the single neighboring
// draft it is explicitly allowed to touch (spec §9 "Cyclic references
// avoidance"): vav-composition reaches one step back into an already
// finalized draft, and mater lectionis marks the next, not-yet-visited
// draft consumed after reading the raw fields of that draft and of the
// one after it (to let a following vav claim the letter first).
func Classify(word hebrew.Word) ([]hebrew.Symbol, hebrew.Set) {
	drafts := make([]draft, len(word.Clusters))
	for i, c := range word.Clusters {
		drafts[i].raw = c
		drafts[i].followedByMaqaf = word.FollowedByMaqaf
	}

	for i := range drafts {
		if drafts[i].consumed {
			continue
		}
		c := drafts[i].raw

		if c.Letter == hebrew.Vav {
			if resolveVav(i, drafts) {
				drafts[i].consumed = true
			}
			continue
		}

		letter, flags := classifyLetter(c)
		drafts[i].flags = drafts[i].flags.Merge(flags)

		letter, dageshSym := resolveDagesh(i, letter, drafts)
		drafts[i].letter = letter
		drafts[i].dagesh = dageshSym

		if c.HasVowel() {
			drafts[i].vowel = resolveResidualVowel(i, drafts)
		}
	}

	var (
		symbols []hebrew.Symbol
		flags   hebrew.Set
	)
	for _, d := range drafts {
		symbols = append(symbols, d.symbols()...)
		flags = flags.Merge(d.flags)
	}
	tracer().Debugf("classified %d clusters into %d symbols", len(drafts), len(symbols))
	return symbols, flags
}
