package classify

import "github.com/hebphonics/hebparse/hebrew"

// phoneticEquivalents groups letters traditionally taught as sounding
// alike, for sheva rule H409's "identical in identity or in phonetic
// value" clause: vet/vav both [v], khaf/het both the guttural [ḥ] sound
// in common pedagogical pronunciation, sav/samekh both [s], alef/ayin
// both silent glottal stops.
var phoneticEquivalents = map[hebrew.Letter]hebrew.Letter{
	hebrew.Vav:    hebrew.Bet, // vet <-> vav
	hebrew.Bet:    hebrew.Vav,
	hebrew.Het:    hebrew.Kaf, // khaf <-> het
	hebrew.Kaf:    hebrew.Het,
	hebrew.Tav:    hebrew.Samekh, // sav <-> samekh
	hebrew.Samekh: hebrew.Tav,
	hebrew.Alef:   hebrew.Ayin,
	hebrew.Ayin:   hebrew.Alef,
}

func lettersPhoneticallyEqual(a, b hebrew.Letter) bool {
	if a == b {
		return true
	}
	return phoneticEquivalents[a] == b
}

// resolveSheva applies spec §4.3.4's ordered sheva rules (H401-H410) to
// a sheva-bearing cluster. dageshSym is the cluster's own already
// resolved dagesh symbol (rule H405 "sheva sharing a cluster with
// dagesh-hazaq").
func resolveSheva(i int, drafts []draft, dageshSym hebrew.Symbol) hebrew.Symbol {
	c := drafts[i].raw
	n := len(drafts)

	pairFirst := i+1 < n && !drafts[i+1].consumed && drafts[i+1].raw.Vowel == hebrew.RuneSheva
	pairSecond := i > 0 && !drafts[i-1].consumed && drafts[i-1].raw.Vowel == hebrew.RuneSheva

	// The immediately preceding vowel sits on the nearest non-consumed
	// draft: a letter absorbed by a male vowel or by vav-composition
	// carries none of its own.
	prevVowel := hebrew.SymbolNone
	for j := i - 1; j >= 0; j-- {
		if !drafts[j].consumed {
			prevVowel = drafts[j].vowel
			break
		}
	}

	switch {
	case pairFirst: // H401/H402
		if drafts[i+1].raw.IsLast {
			return hebrew.SymShevaNa // H401: pair at the end of the word
		}
		return hebrew.SymShevaNah // H402: pair mid-word
	case pairSecond: // H401/H402: second of either pair is always sheva-na
		return hebrew.SymShevaNa
	case c.IsLast: // H403
		return hebrew.SymShevaNah
	case c.IsFirst: // H404
		return hebrew.SymShevaNa
	case dageshSym == hebrew.SymDageshHazaq: // H405
		return hebrew.SymShevaNa
	case prevVowel.IsLongVowel(): // H406
		return hebrew.SymShevaNa
	case prevVowel.IsShortVowel(): // H407
		return hebrew.SymShevaNah
	case i+1 < n && drafts[i+1].raw.IsLast && drafts[i+1].raw.Letter == hebrew.Alef && !drafts[i+1].raw.HasVowel(): // H408
		return hebrew.SymShevaNah
	case i+1 < n && lettersPhoneticallyEqual(c.Letter, drafts[i+1].raw.Letter): // H409
		return hebrew.SymShevaNa
	default: // H410
		return hebrew.SymShevaNah
	}
}
