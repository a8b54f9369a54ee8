package classify

import "github.com/hebphonics/hebparse/hebrew"

// draft carries one cluster's working classification state through the
// rule groups. A consumed draft contributes no symbols at all: it was
// absorbed into a neighbor by vav-composition (H302/H304) or by a
// mater-lectionis vowel (H4xx).
type draft struct {
	raw hebrew.Cluster

	letter hebrew.Symbol // SymbolNone only while consumed
	dagesh hebrew.Symbol // SymbolNone if this cluster has no separate dagesh symbol
	vowel  hebrew.Symbol // SymbolNone if this cluster has no vowel/sheva symbol

	consumed        bool
	followedByMaqaf bool // word-level flag, copied onto every draft for rule H502

	flags hebrew.Set // diagnostics raised while resolving this cluster
}

// symbols returns the draft's emitted symbols in canonical order: letter,
// then dagesh, then vowel/sheva (spec §3 invariant "vowels/sheva/dagesh
// from that cluster are emitted immediately after the letter symbol").
func (d draft) symbols() []hebrew.Symbol {
	if d.consumed {
		return nil
	}
	out := make([]hebrew.Symbol, 0, 3)
	if d.letter != hebrew.SymbolNone {
		out = append(out, d.letter)
	}
	if d.dagesh != hebrew.SymbolNone {
		out = append(out, d.dagesh)
	}
	if d.vowel != hebrew.SymbolNone {
		out = append(out, d.vowel)
	}
	return out
}

// endsWithVowelSound reports whether d closed with a voiced nucleus:
// any vowel, or a sheva-na (spec §4.3.2 dagesh rule H104).
func (d draft) endsWithVowelSound() bool {
	if d.consumed {
		return false
	}
	if d.vowel == hebrew.SymbolNone {
		return false
	}
	if d.vowel.IsSheva() {
		return d.vowel == hebrew.SymShevaNa
	}
	return true
}
