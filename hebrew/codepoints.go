package hebrew

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Recognized Hebrew Unicode code points (Unicode block U+0590..U+05FF plus
// the presentation-form block U+FB1D..U+FB4F used by shin/sin composition).
const (
	RuneAlef  = 0x05D0
	RuneBet   = 0x05D1
	RuneGimel = 0x05D2
	RuneDalet = 0x05D3
	RuneHe    = 0x05D4
	RuneVav   = 0x05D5
	RuneZayin = 0x05D6
	RuneHet   = 0x05D7
	RuneTet   = 0x05D8
	RuneYod   = 0x05D9

	RuneKafSofit = 0x05DA
	RuneKaf      = 0x05DB
	RuneLamed    = 0x05DC
	RuneMemSofit = 0x05DD
	RuneMem      = 0x05DE
	RuneNunSofit = 0x05DF
	RuneNun      = 0x05E0
	RuneSamekh   = 0x05E1
	RuneAyin     = 0x05E2

	RunePeSofit    = 0x05E3
	RunePe         = 0x05E4
	RuneTsadiSofit = 0x05E5
	RuneTsadi      = 0x05E6
	RuneQof        = 0x05E7
	RuneResh       = 0x05E8
	RuneShin       = 0x05E9
	RuneTav        = 0x05EA

	// Niqqud vowels.
	RuneSheva            = 0x05B0
	RuneHatafSegol       = 0x05B1
	RuneHatafPatah       = 0x05B2
	RuneHatafQamats      = 0x05B3
	RuneHiriq            = 0x05B4
	RuneTsere            = 0x05B5
	RuneSegol            = 0x05B6
	RunePatah            = 0x05B7
	RuneQamats           = 0x05B8
	RuneHolam            = 0x05B9
	RuneHolamHaserForVav = 0x05BA
	RuneQubuts           = 0x05BB

	// Combining marks.
	RuneDageshOrMapiq = 0x05BC // dagesh, mapiq and shuruq share this code point
	RuneRafe          = 0x05BF
	RuneShinDot       = 0x05C1
	RuneSinDot        = 0x05C2

	RuneMaqaf = 0x05BE

	// Cantillation boundaries (stripped by the normalizer).
	runeCantillationLo = 0x0591
	runeCantillationHi = 0x05AF
	RuneMeteg          = 0x05BD
	RunePaseq          = 0x05C0
	RuneSofPasuq       = 0x05C3
	RuneNunHafukha     = 0x05C6

	// Precomposed shin/sin presentation forms, decomposed by the normalizer
	// into base shin plus the corresponding dot (and dagesh, where present).
	RuneShinWithShinDot          = 0xFB2A
	RuneShinWithSinDot           = 0xFB2B
	RuneShinWithDageshShinDot    = 0xFB2C
	RuneShinWithDageshSinDot     = 0xFB2D
)

// CodepointClass tags a raw Unicode code point by its role in the Hebrew
// phonological pipeline (spec §3 "Code-point class").
type CodepointClass uint8

const (
	ClassOther CodepointClass = iota
	ClassConsonant
	ClassNiqqud
	ClassHataf
	ClassSheva
	ClassDagesh
	ClassShinDot
	ClassSinDot
	ClassMaqaf
	ClassWhitespace
	ClassCantillation
)

func (c CodepointClass) String() string {
	switch c {
	case ClassConsonant:
		return "consonant"
	case ClassNiqqud:
		return "niqqud"
	case ClassHataf:
		return "hataf"
	case ClassSheva:
		return "sheva"
	case ClassDagesh:
		return "dagesh"
	case ClassShinDot:
		return "shin-dot"
	case ClassSinDot:
		return "sin-dot"
	case ClassMaqaf:
		return "maqaf"
	case ClassWhitespace:
		return "whitespace"
	case ClassCantillation:
		return "cantillation"
	default:
		return "other"
	}
}

// cantillationTable collects the cantillation and stripped-accent code
// points named in spec §4.1, built the way
// boxesandglue-textshape/ot/unicode_category.go assembles script-specific
// range tables rather than via a hand-rolled multi-armed switch.
var cantillationTable = func() *unicode.RangeTable {
	runes := make([]rune, 0, runeCantillationHi-runeCantillationLo+1+4)
	for r := rune(runeCantillationLo); r <= runeCantillationHi; r++ {
		runes = append(runes, r)
	}
	runes = append(runes, RuneMeteg, RuneRafe, RunePaseq, RuneSofPasuq, RuneNunHafukha)
	return rangetable.New(runes...)
}()

// IsConsonant reports whether r is one of the 27 base Hebrew consonant
// letters (including the five sofit finals).
func IsConsonant(r rune) bool {
	return r >= RuneAlef && r <= RuneTav
}

// IsCantillation reports whether r is stripped by the normalizer as
// cantillation or a bidi/accent mark outside the phonological model.
func IsCantillation(r rune) bool {
	return unicode.Is(cantillationTable, r)
}

// ClassOf classifies a single raw Hebrew (or non-Hebrew) code point.
func ClassOf(r rune) CodepointClass {
	switch {
	case IsConsonant(r):
		return ClassConsonant
	case r == RuneHatafSegol || r == RuneHatafPatah || r == RuneHatafQamats:
		return ClassHataf
	case r == RuneSheva:
		return ClassSheva
	case r == RuneHiriq, r == RuneTsere, r == RuneSegol, r == RunePatah,
		r == RuneQamats, r == RuneHolam, r == RuneHolamHaserForVav, r == RuneQubuts:
		return ClassNiqqud
	case r == RuneDageshOrMapiq:
		return ClassDagesh
	case r == RuneShinDot:
		return ClassShinDot
	case r == RuneSinDot:
		return ClassSinDot
	case r == RuneMaqaf:
		return ClassMaqaf
	case IsCantillation(r):
		return ClassCantillation
	case unicode.IsSpace(r), unicode.IsPunct(r):
		return ClassWhitespace
	default:
		return ClassOther
	}
}
