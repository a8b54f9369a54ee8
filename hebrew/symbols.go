package hebrew

// Symbol is a grammatical symbol produced by the classifier (spec §3
// "Grammatical symbol"). The zero value SymbolNone never appears in a
// ParseResult; it exists only as an invalid default.
type Symbol uint8

const (
	SymbolNone Symbol = iota

	// Letters (identity, plus the BGDKFT/shin-sin alternations of §4.3.1).
	SymAlef
	SymMapiqAlef
	SymBet
	SymVet
	SymGimel
	SymDalet
	SymHe
	SymMapiqHe
	SymVav
	SymZayin
	SymHet
	SymTet
	SymYod
	SymKaf
	SymKhaf
	SymKafSofit
	SymKhafSofit
	SymLamed
	SymMem
	SymMemSofit
	SymNun
	SymNunSofit
	SymSamekh
	SymAyin
	SymPe
	SymFe
	SymPeSofit
	SymFeSofit
	SymTsadi
	SymTsadiSofit
	SymQof
	SymResh
	SymShin
	SymSin
	SymTav
	SymSav

	// Dagesh (§4.3.2).
	SymDageshQal
	SymDageshHazaq
	SymDagesh // unclassified fallback

	// Sheva (§4.3.4).
	SymShevaNa
	SymShevaNah
	SymSheva // unclassified fallback

	// Hataf vowels.
	SymHatafSegol
	SymHatafPatah
	SymHatafQamats

	// Hiriq family.
	SymHiriq
	SymHiriqMaleYod

	// Tsere family.
	SymTsere
	SymTsereMaleAlef
	SymTsereMaleHe
	SymTsereMaleYod

	// Segol family.
	SymSegol
	SymSegolMaleAlef
	SymSegolMaleHe
	SymSegolMaleYod

	// Patah family.
	SymPatah
	SymPatahMaleAlef
	SymPatahMaleHe
	SymPatahGenuvah

	// Qamats family.
	SymQamatsGadol
	SymQamatsMaleAlef
	SymQamatsMaleHe
	SymQamatsQatan
	SymQamats // unclassified fallback

	// Holam family.
	SymHolamHaser
	SymHolamMaleAlef
	SymHolamMaleHe
	SymHolamMaleVav
	SymHolam // unclassified fallback

	// Back vowels.
	SymQubuts
	SymShuruq
)

var symbolNames = map[Symbol]string{
	SymAlef: "alef", SymMapiqAlef: "mapiq-alef",
	SymBet: "bet", SymVet: "vet",
	SymGimel: "gimel", SymDalet: "dalet",
	SymHe: "he", SymMapiqHe: "mapiq-he",
	SymVav: "vav", SymZayin: "zayin",
	SymHet: "het", SymTet: "tet", SymYod: "yod",
	SymKaf: "kaf", SymKhaf: "khaf",
	SymKafSofit: "kaf-sofit", SymKhafSofit: "khaf-sofit",
	SymLamed: "lamed",
	SymMem:   "mem", SymMemSofit: "mem-sofit",
	SymNun: "nun", SymNunSofit: "nun-sofit",
	SymSamekh: "samekh", SymAyin: "ayin",
	SymPe: "pe", SymFe: "fe",
	SymPeSofit: "pe-sofit", SymFeSofit: "fe-sofit",
	SymTsadi: "tsadi", SymTsadiSofit: "tsadi-sofit",
	SymQof: "qof", SymResh: "resh",
	SymShin: "shin", SymSin: "sin",
	SymTav: "tav", SymSav: "sav",

	SymDageshQal: "dagesh-qal", SymDageshHazaq: "dagesh-hazaq", SymDagesh: "dagesh",

	SymShevaNa: "sheva-na", SymShevaNah: "sheva-nah", SymSheva: "sheva",

	SymHatafSegol: "hataf-segol", SymHatafPatah: "hataf-patah", SymHatafQamats: "hataf-qamats",

	SymHiriq: "hiriq", SymHiriqMaleYod: "hiriq-male-yod",

	SymTsere: "tsere", SymTsereMaleAlef: "tsere-male-alef",
	SymTsereMaleHe: "tsere-male-he", SymTsereMaleYod: "tsere-male-yod",

	SymSegol: "segol", SymSegolMaleAlef: "segol-male-alef",
	SymSegolMaleHe: "segol-male-he", SymSegolMaleYod: "segol-male-yod",

	SymPatah: "patah", SymPatahMaleAlef: "patah-male-alef",
	SymPatahMaleHe: "patah-male-he", SymPatahGenuvah: "patah-genuvah",

	SymQamatsGadol: "qamats-gadol", SymQamatsMaleAlef: "qamats-male-alef",
	SymQamatsMaleHe: "qamats-male-he", SymQamatsQatan: "qamats-qatan", SymQamats: "qamats",

	SymHolamHaser: "holam-haser", SymHolamMaleAlef: "holam-male-alef",
	SymHolamMaleHe: "holam-male-he", SymHolamMaleVav: "holam-male-vav", SymHolam: "holam",

	SymQubuts: "qubuts", SymShuruq: "shuruq",
}

func (s Symbol) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsVowel reports whether s is a vowel nucleus (including every -male
// and hataf- form), used by the syllabifier's boundary rule (spec §4.4
// rule 1).
func (s Symbol) IsVowel() bool {
	switch s {
	case SymHatafSegol, SymHatafPatah, SymHatafQamats,
		SymHiriq, SymHiriqMaleYod,
		SymTsere, SymTsereMaleAlef, SymTsereMaleHe, SymTsereMaleYod,
		SymSegol, SymSegolMaleAlef, SymSegolMaleHe, SymSegolMaleYod,
		SymPatah, SymPatahMaleAlef, SymPatahMaleHe, SymPatahGenuvah,
		SymQamatsGadol, SymQamatsMaleAlef, SymQamatsMaleHe, SymQamatsQatan, SymQamats,
		SymHolamHaser, SymHolamMaleAlef, SymHolamMaleHe, SymHolamMaleVav, SymHolam,
		SymQubuts, SymShuruq:
		return true
	}
	return false
}

// IsMale reports whether s is a mater-lectionis ("-male") vowel form,
// i.e. one that has consumed a following letter (spec §4.3.5).
func (s Symbol) IsMale() bool {
	switch s {
	case SymHiriqMaleYod,
		SymTsereMaleAlef, SymTsereMaleHe, SymTsereMaleYod,
		SymSegolMaleAlef, SymSegolMaleHe, SymSegolMaleYod,
		SymPatahMaleAlef, SymPatahMaleHe,
		SymQamatsMaleAlef, SymQamatsMaleHe,
		SymHolamMaleAlef, SymHolamMaleHe, SymHolamMaleVav:
		return true
	}
	return false
}

// IsLongVowel reports whether s belongs to the "long" vowel class used
// by the sheva classifier (spec §4.3.4 rule 6): qamats-gadol, tsere,
// hiriq-male-yod, any holam-*, or shuruq.
func (s Symbol) IsLongVowel() bool {
	switch s {
	case SymQamatsGadol, SymTsere, SymTsereMaleAlef, SymTsereMaleHe, SymTsereMaleYod,
		SymHiriqMaleYod,
		SymHolamHaser, SymHolamMaleAlef, SymHolamMaleHe, SymHolamMaleVav, SymHolam,
		SymShuruq:
		return true
	}
	return false
}

// IsShortVowel reports whether s belongs to the "short" vowel class
// used by the sheva classifier (spec §4.3.4 rule 7): patah, segol,
// short hiriq, qubuts, or qamats-qatan.
func (s Symbol) IsShortVowel() bool {
	switch s {
	case SymPatah, SymPatahMaleAlef, SymPatahMaleHe,
		SymSegol, SymSegolMaleAlef, SymSegolMaleHe, SymSegolMaleYod,
		SymHiriq,
		SymQubuts,
		SymQamatsQatan:
		return true
	}
	return false
}

// IsSheva reports whether s is one of the two sheva symbols or the
// unclassified fallback.
func (s Symbol) IsSheva() bool {
	return s == SymShevaNa || s == SymShevaNah || s == SymSheva
}

// IsLetter reports whether s is a consonant-letter symbol — the
// contiguous block running from SymAlef through SymSav — as opposed to
// a dagesh, sheva, or vowel symbol. Used by the syllabifier to find
// cluster boundaries in a flattened symbol sequence.
func (s Symbol) IsLetter() bool {
	return s >= SymAlef && s <= SymSav
}

// IsShevaNah reports whether s closes its syllable silently.
func (s Symbol) IsShevaNah() bool {
	return s == SymShevaNah
}
