package classify

import "github.com/hebphonics/hebparse/hebrew"

// resolveVav applies spec §4.3.3's ordered vav-composition rules
// (H301-H305) to a vav cluster, in place of the generic letters/dagesh
// groups. It may mutate the previous draft's vowel slot (rules H302 and
// H304 "consume" the vav onto the preceding consonant) and reports
// whether the vav cluster itself was consumed.
func resolveVav(i int, drafts []draft) (consumed bool) {
	c := drafts[i].raw
	prevEmpty := i > 0 && drafts[i-1].raw.Vowel == 0 && !drafts[i-1].consumed

	switch {
	case c.Dagesh && !c.HasVowel() && prevEmpty: // H304: shuruq
		drafts[i-1].vowel = hebrew.SymShuruq
		return true
	case c.Dagesh: // H305: vav + dagesh-hazaq, whether or not it also has its own vowel
		drafts[i].letter = hebrew.SymVav
		drafts[i].dagesh = hebrew.SymDageshHazaq
		if c.HasVowel() {
			drafts[i].vowel = resolveResidualVowel(i, drafts)
		}
		return false
	case c.Vowel == hebrew.RuneHolamHaserForVav: // H301: never upgraded
		drafts[i].letter = hebrew.SymVav
		drafts[i].vowel = hebrew.SymHolamHaser
		return false
	case c.Vowel == hebrew.RuneHolam && prevEmpty: // H302
		drafts[i-1].vowel = hebrew.SymHolamMaleVav
		return true
	case c.Vowel == hebrew.RuneHolam: // H303: after a vowel or sheva
		drafts[i].letter = hebrew.SymVav
		drafts[i].vowel = hebrew.SymHolamHaser
		return false
	default:
		// Plain vav, or vav carrying some other vowel/sheva: not part of
		// vav-composition at all, resolved like any other consonant.
		drafts[i].letter = hebrew.SymVav
		if c.HasVowel() {
			drafts[i].vowel = resolveResidualVowel(i, drafts)
		}
		return false
	}
}
