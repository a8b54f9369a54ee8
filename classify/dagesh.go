package classify

import "github.com/hebphonics/hebparse/hebrew"

// resolveDagesh applies spec §4.3.2's ordered dagesh rules (H101-H106)
// to a non-vav cluster carrying a dagesh (vav's own dagesh is resolved
// by resolveVav instead, since §4.3.3 supersedes the generic rules for
// that letter). It returns the possibly-overridden letter symbol and
// the separate dagesh symbol, or SymbolNone for either when the rule
// suppresses it (mapiq rules emit one merged symbol, not two).
func resolveDagesh(i int, letter hebrew.Symbol, drafts []draft) (outLetter, dageshSym hebrew.Symbol) {
	c := drafts[i].raw
	if !c.Dagesh {
		return letter, hebrew.SymbolNone
	}
	switch {
	case c.Letter == hebrew.Alef: // H101
		return hebrew.SymMapiqAlef, hebrew.SymbolNone
	case c.Letter == hebrew.He && c.IsLast: // H102
		return hebrew.SymMapiqHe, hebrew.SymbolNone
	case c.Letter == hebrew.He: // H103: non-final he with dagesh is not mapiq-he
		return hebrew.SymHe, hebrew.SymDageshHazaq
	case c.Letter.TakesDageshQal():
		if i > 0 && drafts[i-1].endsWithVowelSound() {
			return letter, hebrew.SymDageshHazaq // H104
		}
		return letter, hebrew.SymDageshQal // H105: includes word-start and after silent sheva
	default: // H106
		return letter, hebrew.SymDageshHazaq
	}
}
