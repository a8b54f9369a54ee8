package syllable

import (
	"testing"

	"github.com/hebphonics/hebparse/hebrew"
)

func assertSpans(t *testing.T, got []hebrew.Syllable, want ...hebrew.Syllable) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d syllables %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("syllable %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestBereshit mirrors spec §8 example 1: בְּרֵאשִׁית.
func TestBereshit(t *testing.T) {
	symbols := []hebrew.Symbol{
		hebrew.SymBet, hebrew.SymDageshQal, hebrew.SymShevaNa,
		hebrew.SymResh, hebrew.SymTsereMaleAlef,
		hebrew.SymShin, hebrew.SymHiriq,
		hebrew.SymTav,
	}
	got := Syllabify(symbols)
	assertSpans(t, got,
		hebrew.Syllable{Start: 0, End: 3, Open: false},
		hebrew.Syllable{Start: 3, End: 5, Open: true},
		hebrew.Syllable{Start: 5, End: 8, Open: false},
	)
}

// TestBah mirrors spec §8 example 2: בָּהּ.
func TestBah(t *testing.T) {
	symbols := []hebrew.Symbol{hebrew.SymBet, hebrew.SymDageshQal, hebrew.SymQamatsGadol, hebrew.SymMapiqHe}
	got := Syllabify(symbols)
	assertSpans(t, got, hebrew.Syllable{Start: 0, End: 4, Open: false})
}

// TestVayhi mirrors spec §8 example 3: וַיְהִי.
func TestVayhi(t *testing.T) {
	symbols := []hebrew.Symbol{
		hebrew.SymVav, hebrew.SymPatah, hebrew.SymYod, hebrew.SymShevaNah,
		hebrew.SymHe, hebrew.SymHiriqMaleYod,
	}
	got := Syllabify(symbols)
	assertSpans(t, got,
		hebrew.Syllable{Start: 0, End: 4, Open: false},
		hebrew.Syllable{Start: 4, End: 6, Open: true},
	)
}

// TestKol mirrors spec §8 example 4: כָּל־.
func TestKol(t *testing.T) {
	symbols := []hebrew.Symbol{hebrew.SymKaf, hebrew.SymDageshQal, hebrew.SymQamatsQatan, hebrew.SymLamed}
	got := Syllabify(symbols)
	assertSpans(t, got, hebrew.Syllable{Start: 0, End: 4, Open: false})
}

// TestTohu mirrors spec §8 example 5: תֹהוּ.
func TestTohu(t *testing.T) {
	symbols := []hebrew.Symbol{hebrew.SymTav, hebrew.SymHolamHaser, hebrew.SymHe, hebrew.SymShuruq}
	got := Syllabify(symbols)
	assertSpans(t, got,
		hebrew.Syllable{Start: 0, End: 2, Open: true},
		hebrew.Syllable{Start: 2, End: 4, Open: true},
	)
}

func TestSyllabifyEmpty(t *testing.T) {
	if got := Syllabify(nil); got != nil {
		t.Fatalf("expected nil syllables for empty input, got %v", got)
	}
}

func TestSyllabifySingleLetterNoVowel(t *testing.T) {
	got := Syllabify([]hebrew.Symbol{hebrew.SymMem})
	assertSpans(t, got, hebrew.Syllable{Start: 0, End: 1, Open: false})
}
