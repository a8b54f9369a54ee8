package classify

import "github.com/hebphonics/hebparse/hebrew"

// identityLetters maps consonants whose grammatical symbol is simply
// their own identity, regardless of dagesh (spec §4.3.1 "All other
// letters map identity" — H206).
var identityLetters = map[hebrew.Letter]hebrew.Symbol{
	hebrew.Alef:       hebrew.SymAlef,
	hebrew.Gimel:      hebrew.SymGimel,
	hebrew.Dalet:      hebrew.SymDalet,
	hebrew.He:         hebrew.SymHe,
	hebrew.Vav:        hebrew.SymVav,
	hebrew.Zayin:      hebrew.SymZayin,
	hebrew.Het:        hebrew.SymHet,
	hebrew.Tet:        hebrew.SymTet,
	hebrew.Yod:        hebrew.SymYod,
	hebrew.Lamed:      hebrew.SymLamed,
	hebrew.Mem:        hebrew.SymMem,
	hebrew.MemSofit:   hebrew.SymMemSofit,
	hebrew.Nun:        hebrew.SymNun,
	hebrew.NunSofit:   hebrew.SymNunSofit,
	hebrew.Samekh:     hebrew.SymSamekh,
	hebrew.Ayin:       hebrew.SymAyin,
	hebrew.Tsadi:      hebrew.SymTsadi,
	hebrew.TsadiSofit: hebrew.SymTsadiSofit,
	hebrew.Qof:        hebrew.SymQof,
	hebrew.Resh:       hebrew.SymResh,
}

// classifyLetter resolves spec §4.3.1's letter rule group (H201-H206):
// the BGDKFT non-dagesh/dagesh alternation, the shin/sin split, and
// letter identity for everything else. It never looks past the current
// cluster's own raw fields.
func classifyLetter(c hebrew.Cluster) (hebrew.Symbol, hebrew.Set) {
	switch c.Letter {
	case hebrew.Bet: // H201
		if c.Dagesh {
			return hebrew.SymBet, 0
		}
		return hebrew.SymVet, 0
	case hebrew.Kaf: // H202
		if c.Dagesh {
			return hebrew.SymKaf, 0
		}
		return hebrew.SymKhaf, 0
	case hebrew.KafSofit: // H202
		if c.Dagesh {
			return hebrew.SymKafSofit, 0
		}
		return hebrew.SymKhafSofit, 0
	case hebrew.Pe: // H203
		if c.Dagesh {
			return hebrew.SymPe, 0
		}
		return hebrew.SymFe, 0
	case hebrew.PeSofit: // H203
		if c.Dagesh {
			return hebrew.SymPeSofit, 0
		}
		return hebrew.SymFeSofit, 0
	case hebrew.Tav: // H204
		if c.Dagesh {
			return hebrew.SymTav, 0
		}
		return hebrew.SymSav, 0
	case hebrew.Shin: // H205
		switch {
		case c.ShinDot:
			return hebrew.SymShin, 0
		case c.SinDot:
			return hebrew.SymSin, 0
		default:
			return hebrew.SymShin, hebrew.Set(0).With(hebrew.FlagMissingShinSinDot)
		}
	default: // H206
		if sym, ok := identityLetters[c.Letter]; ok {
			return sym, 0
		}
		return hebrew.SymbolNone, 0
	}
}
