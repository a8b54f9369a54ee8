package classify

import "github.com/hebphonics/hebparse/hebrew"

// materAlefHe holds the two letters that patah, qamats and holam are
// willing to consume as a mater lectionis (spec §4.3.5 rules
// H464-H466). Holam's vav case is handled separately by resolveVav
// (H302), since there the vav is the trigger rather than the target.
var materAlefHe = map[hebrew.Letter]bool{hebrew.Alef: true, hebrew.He: true}

// resolveResidualVowel resolves a non-vav cluster's own vowel/sheva
// slot: sheva (delegated to resolveSheva), hataf (H451), a possible
// mater-lectionis upgrade (H461-H466), patah-genuvah (H471),
// qamats-qatan (H501-H504), or the plain residual symbol (H601-H605).
// It may mark the following draft consumed and may raise diagnostics
// onto drafts[i].flags.
func resolveResidualVowel(i int, drafts []draft) hebrew.Symbol {
	c := drafts[i].raw

	if c.IsSheva() {
		return resolveSheva(i, drafts, drafts[i].dagesh)
	}
	if c.IsHataf() {
		return resolveHataf(c.Vowel) // H451
	}

	if sym, ok := resolveMaterLectionis(i, drafts); ok {
		return sym
	}

	switch c.Vowel {
	case hebrew.RunePatah:
		if isPatahGenuvah(c) {
			return hebrew.SymPatahGenuvah // H471
		}
		return hebrew.SymPatah // H601
	case hebrew.RuneQamats:
		return resolveQamatsQatan(i, drafts) // H501-H504
	case hebrew.RuneHiriq:
		return hebrew.SymHiriq // H602
	case hebrew.RuneTsere:
		return hebrew.SymTsere // H603
	case hebrew.RuneSegol:
		return hebrew.SymSegol // H604
	case hebrew.RuneHolam, hebrew.RuneHolamHaserForVav:
		return hebrew.SymHolamHaser // H605
	case hebrew.RuneQubuts:
		return hebrew.SymQubuts // H605
	default:
		return hebrew.SymbolNone
	}
}

// resolveHataf maps a hataf code point directly to its symbol (H451):
// hataf vowels never compose with a mater or qamats-qatan.
func resolveHataf(vowel rune) hebrew.Symbol {
	switch vowel {
	case hebrew.RuneHatafSegol:
		return hebrew.SymHatafSegol
	case hebrew.RuneHatafPatah:
		return hebrew.SymHatafPatah
	case hebrew.RuneHatafQamats:
		return hebrew.SymHatafQamats
	default:
		return hebrew.SymbolNone
	}
}

// resolveMaterLectionis checks whether the cluster at i carries a vowel
// that, per spec §4.3.5, upgrades to a "-male" form by consuming the
// immediately following bare letter. It mutates drafts[i+1].consumed
// when it fires. It defers to a vav-composition claim on the same
// letter (see revoweledByFollowingVav) so group 3 always resolves
// before group 6, per spec §4.3's fixed rule order.
func resolveMaterLectionis(i int, drafts []draft) (hebrew.Symbol, bool) {
	n := len(drafts)
	if i+1 >= n {
		return hebrew.SymbolNone, false
	}
	next := drafts[i+1].raw
	if next.HasVowel() || next.Dagesh {
		return hebrew.SymbolNone, false
	}
	if revoweledByFollowingVav(i+1, drafts) {
		return hebrew.SymbolNone, false
	}

	c := drafts[i].raw
	consume := func(sym hebrew.Symbol) (hebrew.Symbol, bool) {
		drafts[i+1].consumed = true
		return sym, true
	}

	switch c.Vowel {
	case hebrew.RuneHiriq: // H461
		if next.Letter == hebrew.Yod {
			return consume(hebrew.SymHiriqMaleYod)
		}
	case hebrew.RuneTsere: // H462
		switch next.Letter {
		case hebrew.Alef:
			return consume(hebrew.SymTsereMaleAlef)
		case hebrew.He:
			return consume(hebrew.SymTsereMaleHe)
		case hebrew.Yod:
			return consume(hebrew.SymTsereMaleYod)
		}
	case hebrew.RuneSegol: // H463
		switch next.Letter {
		case hebrew.Alef:
			return consume(hebrew.SymSegolMaleAlef)
		case hebrew.He:
			return consume(hebrew.SymSegolMaleHe)
		case hebrew.Yod:
			return consume(hebrew.SymSegolMaleYod)
		}
	case hebrew.RunePatah: // H464
		if materAlefHe[next.Letter] {
			if next.Letter == hebrew.Alef {
				return consume(hebrew.SymPatahMaleAlef)
			}
			return consume(hebrew.SymPatahMaleHe)
		}
	case hebrew.RuneQamats: // H465
		if materAlefHe[next.Letter] {
			if next.Letter == hebrew.Alef {
				return consume(hebrew.SymQamatsMaleAlef)
			}
			return consume(hebrew.SymQamatsMaleHe)
		}
	case hebrew.RuneHolam: // H466
		if materAlefHe[next.Letter] {
			if next.Letter == hebrew.Alef {
				return consume(hebrew.SymHolamMaleAlef)
			}
			return consume(hebrew.SymHolamMaleHe)
		}
	}
	return hebrew.SymbolNone, false
}

// revoweledByFollowingVav reports whether the bare letter at index j is
// about to be re-vowelled by an immediately following vav cluster's
// vav-composition (H302 holam-male-vav, H304 shuruq). Vav-composition
// (spec §4.3 group 3) is ordered ahead of male-mater (group 6), so such
// a letter is not yet a free mater target: resolveMaterLectionis must
// wait and let resolveVav claim it on that vav's own turn instead.
func revoweledByFollowingVav(j int, drafts []draft) bool {
	k := j + 1
	if k >= len(drafts) {
		return false
	}
	v := drafts[k].raw
	if v.Letter != hebrew.Vav {
		return false
	}
	switch {
	case v.Dagesh && !v.HasVowel(): // H304
		return true
	case v.Vowel == hebrew.RuneHolam: // H302
		return true
	}
	return false
}

// isPatahGenuvah reports whether c's terminal patah is a "stolen"
// patah (H471): the last cluster of the word, on a het, ayin, or
// dagesh-bearing he (mapiq-he).
func isPatahGenuvah(c hebrew.Cluster) bool {
	if !c.IsLast {
		return false
	}
	switch c.Letter {
	case hebrew.Het, hebrew.Ayin:
		return true
	case hebrew.He:
		return c.Dagesh
	}
	return false
}

// resolveQamatsQatan applies spec §4.3.6's ordered qamats rules
// (H501-H504). Stress is never inferred (spec §9 Open Question): the
// be-/le- prefix heuristic raises FlagAmbiguousQamats and
// FlagLikelyPrefixBeLe rather than guessing qatan outright, defaulting
// to the unmarked qamats-gadol reading instead.
func resolveQamatsQatan(i int, drafts []draft) hebrew.Symbol {
	n := len(drafts)

	switch {
	case drafts[i].followedByMaqaf: // H502: any qamats in a maqaf-joined word
		return hebrew.SymQamatsQatan
	case i+1 < n && drafts[i+1].raw.Vowel == hebrew.RuneHatafQamats: // H503
		return hebrew.SymQamatsQatan
	case i > 0 && isDetachedBeLePrefix(drafts[i-1].raw): // H504
		drafts[i].flags = drafts[i].flags.With(hebrew.FlagAmbiguousQamats).With(hebrew.FlagLikelyPrefixBeLe)
		return hebrew.SymQamatsGadol
	default: // H501
		return hebrew.SymQamatsGadol
	}
}

// isDetachedBeLePrefix reports whether prev is a word-initial bet or
// lamed cluster carrying a vocal-shaped sheva, the pattern rule H504
// treats as a likely detached preposition prefix.
func isDetachedBeLePrefix(prev hebrew.Cluster) bool {
	return prev.IsFirst && (prev.Letter == hebrew.Bet || prev.Letter == hebrew.Lamed) && prev.Vowel == hebrew.RuneSheva
}
