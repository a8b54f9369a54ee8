package classify

import (
	"testing"

	"github.com/hebphonics/hebparse/hebrew"
)

// cl builds a minimal cluster for table-driven rule tests. IsFirst and
// IsLast are set by word(), never by the caller.
func cl(letter hebrew.Letter, vowel rune, dagesh bool) hebrew.Cluster {
	return hebrew.Cluster{
		Letter:      letter,
		LetterClass: hebrew.ClassOfLetter(letter),
		Vowel:       vowel,
		Dagesh:      dagesh,
	}
}

func word(followedByMaqaf bool, clusters ...hebrew.Cluster) hebrew.Word {
	clusters[0].IsFirst = true
	clusters[len(clusters)-1].IsLast = true
	return hebrew.Word{Clusters: clusters, FollowedByMaqaf: followedByMaqaf}
}

func symStrings(syms []hebrew.Symbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = s.String()
	}
	return out
}

func assertSymbols(t *testing.T, got []hebrew.Symbol, want ...hebrew.Symbol) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", symStrings(got), symStrings(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", symStrings(got), symStrings(want))
		}
	}
}

func TestLetterAlternations(t *testing.T) { // H201-H205
	syms, flags := Classify(word(false, cl(hebrew.Bet, 0, false)))
	assertSymbols(t, syms, hebrew.SymVet)

	syms, _ = Classify(word(false, cl(hebrew.Bet, 0, true)))
	assertSymbols(t, syms, hebrew.SymBet, hebrew.SymDageshQal)

	syms, _ = Classify(word(false, hebrew.Cluster{Letter: hebrew.Shin, ShinDot: true, IsFirst: true, IsLast: true}))
	assertSymbols(t, syms, hebrew.SymShin)

	syms, _ = Classify(word(false, hebrew.Cluster{Letter: hebrew.Shin, SinDot: true, IsFirst: true, IsLast: true}))
	assertSymbols(t, syms, hebrew.SymSin)

	syms, flags = Classify(word(false, hebrew.Cluster{Letter: hebrew.Shin, IsFirst: true, IsLast: true}))
	assertSymbols(t, syms, hebrew.SymShin)
	if !flags.Has(hebrew.FlagMissingShinSinDot) {
		t.Fatalf("expected FlagMissingShinSinDot")
	}
}

func TestDageshMapiq(t *testing.T) { // H101-H103
	syms, _ := Classify(word(false, cl(hebrew.Alef, 0, true)))
	assertSymbols(t, syms, hebrew.SymMapiqAlef)

	syms, _ = Classify(word(false, cl(hebrew.Qof, hebrew.RuneQamats, false), cl(hebrew.He, 0, true)))
	assertSymbols(t, syms, hebrew.SymQof, hebrew.SymQamatsGadol, hebrew.SymMapiqHe)

	syms, _ = Classify(word(false, cl(hebrew.He, 0, true), cl(hebrew.Lamed, hebrew.RuneSheva, false)))
	if syms[0] != hebrew.SymHe || syms[1] != hebrew.SymDageshHazaq {
		t.Fatalf("expected non-final he+dagesh to split into he, dagesh-hazaq; got %v", symStrings(syms))
	}
}

func TestDageshQalVsHazaq(t *testing.T) { // H104-H105
	// word-initial bet with dagesh: no preceding vowel sound -> dagesh-qal
	syms, _ := Classify(word(false, cl(hebrew.Bet, hebrew.RunePatah, true)))
	assertSymbols(t, syms, hebrew.SymBet, hebrew.SymDageshQal, hebrew.SymPatah)

	// bet with dagesh preceded by a vowel-bearing cluster -> dagesh-hazaq
	syms, _ = Classify(word(false, cl(hebrew.Resh, hebrew.RunePatah, false), cl(hebrew.Bet, 0, true)))
	assertSymbols(t, syms, hebrew.SymResh, hebrew.SymPatah, hebrew.SymBet, hebrew.SymDageshHazaq)
}

func TestVavShuruq(t *testing.T) { // H304
	syms, _ := Classify(word(false, cl(hebrew.Mem, 0, false), cl(hebrew.Vav, 0, true)))
	assertSymbols(t, syms, hebrew.SymMem, hebrew.SymShuruq)
}

func TestVavHolamMale(t *testing.T) { // H302
	syms, _ := Classify(word(false, cl(hebrew.Tav, 0, false), cl(hebrew.Vav, hebrew.RuneHolam, false)))
	assertSymbols(t, syms, hebrew.SymSav, hebrew.SymHolamMaleVav)
}

func TestVavPlainWithVowel(t *testing.T) { // H305/default
	syms, _ := Classify(word(false, cl(hebrew.Vav, hebrew.RunePatah, false)))
	assertSymbols(t, syms, hebrew.SymVav, hebrew.SymPatah)
}

func TestShevaWordInitialAndFinal(t *testing.T) { // H403, H404
	syms, _ := Classify(word(false, cl(hebrew.Lamed, hebrew.RuneSheva, false), cl(hebrew.Mem, hebrew.RunePatah, false)))
	assertSymbols(t, syms, hebrew.SymLamed, hebrew.SymShevaNa, hebrew.SymMem, hebrew.SymPatah)

	syms, _ = Classify(word(false, cl(hebrew.Mem, hebrew.RunePatah, false), cl(hebrew.Lamed, hebrew.RuneSheva, false)))
	assertSymbols(t, syms, hebrew.SymMem, hebrew.SymPatah, hebrew.SymLamed, hebrew.SymShevaNah)
}

func TestShevaAdjacentPairMidWord(t *testing.T) { // H402
	syms, _ := Classify(word(false,
		cl(hebrew.Resh, hebrew.RunePatah, false),
		cl(hebrew.Yod, hebrew.RuneSheva, false),
		cl(hebrew.Mem, hebrew.RuneSheva, false),
		cl(hebrew.Vav, 0, false),
	))
	assertSymbols(t, syms,
		hebrew.SymResh, hebrew.SymPatah,
		hebrew.SymYod, hebrew.SymShevaNah,
		hebrew.SymMem, hebrew.SymShevaNa,
		hebrew.SymVav,
	)
}

func TestShevaAdjacentPairAtWordEnd(t *testing.T) { // H401
	syms, _ := Classify(word(false,
		cl(hebrew.Resh, hebrew.RunePatah, false),
		cl(hebrew.Yod, hebrew.RuneSheva, false),
		cl(hebrew.Mem, hebrew.RuneSheva, false),
	))
	assertSymbols(t, syms,
		hebrew.SymResh, hebrew.SymPatah,
		hebrew.SymYod, hebrew.SymShevaNa,
		hebrew.SymMem, hebrew.SymShevaNa,
	)
}

func TestHatafDirect(t *testing.T) { // H451
	syms, _ := Classify(word(false, cl(hebrew.Alef, hebrew.RuneHatafPatah, false)))
	assertSymbols(t, syms, hebrew.SymAlef, hebrew.SymHatafPatah)
}

func TestMaterLectionis(t *testing.T) { // H461-H465
	syms, _ := Classify(word(false, cl(hebrew.Bet, hebrew.RuneHiriq, false), cl(hebrew.Yod, 0, false)))
	assertSymbols(t, syms, hebrew.SymVet, hebrew.SymHiriqMaleYod)

	syms, _ = Classify(word(false, cl(hebrew.Resh, hebrew.RuneTsere, false), cl(hebrew.Alef, 0, false)))
	assertSymbols(t, syms, hebrew.SymResh, hebrew.SymTsereMaleAlef)

	syms, _ = Classify(word(false, cl(hebrew.Qof, hebrew.RuneQamats, false), cl(hebrew.Alef, 0, false)))
	assertSymbols(t, syms, hebrew.SymQof, hebrew.SymQamatsMaleAlef)
}

func TestPatahGenuvah(t *testing.T) { // H471
	syms, _ := Classify(word(false, cl(hebrew.Resh, hebrew.RuneHiriq, false), cl(hebrew.Het, hebrew.RunePatah, false)))
	assertSymbols(t, syms, hebrew.SymResh, hebrew.SymHiriq, hebrew.SymHet, hebrew.SymPatahGenuvah)
}

func TestQamatsDefaultGadol(t *testing.T) { // H501
	syms, _ := Classify(word(false, cl(hebrew.Resh, hebrew.RuneQamats, false)))
	assertSymbols(t, syms, hebrew.SymResh, hebrew.SymQamatsGadol)
}

func TestQamatsQatanBeforeMaqaf(t *testing.T) { // H502
	syms, _ := Classify(word(true, cl(hebrew.Kaf, hebrew.RuneQamats, true), cl(hebrew.Lamed, 0, false)))
	assertSymbols(t, syms, hebrew.SymKaf, hebrew.SymDageshQal, hebrew.SymQamatsQatan, hebrew.SymLamed)
}

func TestQamatsAmbiguousBeLePrefix(t *testing.T) { // H504
	syms, flags := Classify(word(false,
		cl(hebrew.Lamed, hebrew.RuneSheva, false),
		cl(hebrew.Kaf, hebrew.RuneQamats, false),
	))
	if syms[3] != hebrew.SymQamatsGadol {
		t.Fatalf("expected default qamats-gadol when stress is unknown, got %v", symStrings(syms))
	}
	if !flags.Has(hebrew.FlagAmbiguousQamats) || !flags.Has(hebrew.FlagLikelyPrefixBeLe) {
		t.Fatalf("expected ambiguous-qamats and likely-prefix-be-le flags")
	}
}
