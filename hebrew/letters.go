package hebrew

// Letter identifies one of the 27 base Hebrew consonants, including the
// five sofit (final) variants, by Unicode code point.
type Letter rune

const (
	Alef       Letter = RuneAlef
	Bet        Letter = RuneBet
	Gimel      Letter = RuneGimel
	Dalet      Letter = RuneDalet
	He         Letter = RuneHe
	Vav        Letter = RuneVav
	Zayin      Letter = RuneZayin
	Het        Letter = RuneHet
	Tet        Letter = RuneTet
	Yod        Letter = RuneYod
	KafSofit   Letter = RuneKafSofit
	Kaf        Letter = RuneKaf
	Lamed      Letter = RuneLamed
	MemSofit   Letter = RuneMemSofit
	Mem        Letter = RuneMem
	NunSofit   Letter = RuneNunSofit
	Nun        Letter = RuneNun
	Samekh     Letter = RuneSamekh
	Ayin       Letter = RuneAyin
	PeSofit    Letter = RunePeSofit
	Pe         Letter = RunePe
	TsadiSofit Letter = RuneTsadiSofit
	Tsadi      Letter = RuneTsadi
	Qof        Letter = RuneQof
	Resh       Letter = RuneResh
	Shin       Letter = RuneShin
	Tav        Letter = RuneTav
)

// LetterClass groups consonants by the phonological behavior spec §3
// and §4.3 condition on: BGDKFT letters take dagesh-qal/dagesh-hazaq,
// guttural letters resist dagesh and prefer hataf vowels, resh behaves
// as "semi-guttural" (resists dagesh like a guttural, but is not
// followed by hataf vowels the way alef/he/het/ayin are).
type LetterClass uint8

const (
	ClassLetterOther LetterClass = iota
	ClassBGDKFT
	ClassGuttural
	ClassSemiGuttural
)

func (c LetterClass) String() string {
	switch c {
	case ClassBGDKFT:
		return "bgdkft"
	case ClassGuttural:
		return "guttural"
	case ClassSemiGuttural:
		return "semi-guttural"
	default:
		return "other"
	}
}

// ClassOfLetter returns the letter class; the dagesh rules consult it
// through TakesDageshQal.
func ClassOfLetter(l Letter) LetterClass {
	switch l {
	case Bet, Gimel, Dalet, Kaf, KafSofit, Pe, PeSofit, Tav:
		return ClassBGDKFT
	case Alef, He, Het, Ayin:
		return ClassGuttural
	case Resh:
		return ClassSemiGuttural
	default:
		return ClassLetterOther
	}
}

// IsSofit reports whether l is one of the five final-form letters.
func (l Letter) IsSofit() bool {
	switch l {
	case KafSofit, MemSofit, NunSofit, PeSofit, TsadiSofit:
		return true
	}
	return false
}

// TakesDageshQal reports whether l is a BGDKFT letter capable of
// carrying dagesh-qal/dagesh-hazaq (spec §4.3.2).
func (l Letter) TakesDageshQal() bool {
	return ClassOfLetter(l) == ClassBGDKFT
}
