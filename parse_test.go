package hebparse

import (
	"testing"

	"github.com/hebphonics/hebparse/hebrew"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type ParserTestSuite struct {
	suite.Suite
}

func TestParserSuite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hebphonics.parse")
	defer teardown()
	suite.Run(t, new(ParserTestSuite))
}

// --- Worked examples (spec §8) ----------------------------------------------

func (s *ParserTestSuite) assertSymbols(got []hebrew.Symbol, want ...hebrew.Symbol) {
	s.Require().Len(got, len(want))
	for i := range want {
		s.Equal(want[i], got[i], "symbol %d", i)
	}
}

func (s *ParserTestSuite) assertOpenPattern(syllables []hebrew.Syllable, open ...bool) {
	s.Require().Len(syllables, len(open))
	for i := range open {
		s.Equal(open[i], syllables[i].Open, "syllable %d open flag", i)
	}
}

// TestBereshit mirrors spec §8 example 1.
func (s *ParserTestSuite) TestBereshit() {
	r, err := Parse("בְּרֵאשִׁית")
	s.Require().NoError(err)
	s.assertSymbols(r.Symbols,
		hebrew.SymBet, hebrew.SymDageshQal, hebrew.SymShevaNa,
		hebrew.SymResh, hebrew.SymTsereMaleAlef,
		hebrew.SymShin, hebrew.SymHiriqMaleYod,
		hebrew.SymSav,
	)
	s.assertOpenPattern(r.Syllables, false, true, false)
}

// TestBah mirrors spec §8 example 2.
func (s *ParserTestSuite) TestBah() {
	r, err := Parse("בָּהּ")
	s.Require().NoError(err)
	s.assertSymbols(r.Symbols, hebrew.SymBet, hebrew.SymDageshQal, hebrew.SymQamatsGadol, hebrew.SymMapiqHe)
	s.assertOpenPattern(r.Syllables, false)
}

// TestVayhi mirrors spec §8 example 3.
func (s *ParserTestSuite) TestVayhi() {
	r, err := Parse("וַיְהִי")
	s.Require().NoError(err)
	s.assertSymbols(r.Symbols,
		hebrew.SymVav, hebrew.SymPatah, hebrew.SymYod, hebrew.SymShevaNah,
		hebrew.SymHe, hebrew.SymHiriqMaleYod,
	)
	s.assertOpenPattern(r.Syllables, false, true)
}

// TestKol mirrors spec §8 example 4: a maqaf-joined word.
func (s *ParserTestSuite) TestKol() {
	r, err := Parse("כָּל־")
	s.Require().NoError(err)
	s.assertSymbols(r.Symbols, hebrew.SymKaf, hebrew.SymDageshQal, hebrew.SymQamatsQatan, hebrew.SymLamed)
	s.assertOpenPattern(r.Syllables, false)
	s.True(r.Word.FollowedByMaqaf)
}

// TestTohu mirrors spec §8 example 5: vav+dagesh collapses into shuruq.
func (s *ParserTestSuite) TestTohu() {
	r, err := Parse("תֹהוּ")
	s.Require().NoError(err)
	s.assertSymbols(r.Symbols, hebrew.SymSav, hebrew.SymHolamHaser, hebrew.SymHe, hebrew.SymShuruq)
	s.assertOpenPattern(r.Syllables, true, true)
}

// TestHamoreihem mirrors spec §8 example 6: non-final he+dagesh is
// dagesh-hazaq, not mapiq-he, and the tsere before a bare yod becomes
// tsere-male-yod.
func (s *ParserTestSuite) TestHamoreihem() {
	r, err := Parse("חֲמֹרֵיהֶּם")
	s.Require().NoError(err)
	s.assertSymbols(r.Symbols,
		hebrew.SymHet, hebrew.SymHatafPatah,
		hebrew.SymMem, hebrew.SymHolamHaser,
		hebrew.SymResh, hebrew.SymTsereMaleYod,
		hebrew.SymHe, hebrew.SymDageshHazaq, hebrew.SymSegol,
		hebrew.SymMemSofit,
	)
}

// --- Boundaries (spec §8 "Boundaries") --------------------------------------

func (s *ParserTestSuite) TestEmptyInput() {
	r, err := Parse("")
	s.Require().NoError(err)
	s.Empty(r.Symbols)
	s.Empty(r.Syllables)
	s.Zero(r.Flags)
}

func (s *ParserTestSuite) TestCantillationOnlyInput() {
	r, err := Parse("֑֓") // etnahta, shalshelet: cantillation, no letters
	s.Require().NoError(err)
	s.Empty(r.Symbols)
	s.False(r.Flags.Has(hebrew.FlagUnknownCodepoints))
}

func (s *ParserTestSuite) TestSingleUnvoweledLetter() {
	r, err := Parse("מ")
	s.Require().NoError(err)
	s.assertSymbols(r.Symbols, hebrew.SymMem)
	s.assertOpenPattern(r.Syllables, false)
	s.True(r.Flags.Has(hebrew.FlagHasNoNiqqud))
}

// --- Quantified invariants (spec §8) ----------------------------------------

func (s *ParserTestSuite) TestSyllableSpansPartitionWithoutGapsOrOverlap() {
	words := []string{"בְּרֵאשִׁית", "בָּהּ", "וַיְהִי", "כָּל־", "תֹהוּ", "חֲמֹרֵיהֶּם"}
	for _, w := range words {
		r, err := Parse(w)
		s.Require().NoError(err)
		pos := 0
		for _, syl := range r.Syllables {
			s.Equal(pos, syl.Start, "word %q: gap or overlap before syllable starting at %d", w, syl.Start)
			pos = syl.End
		}
		s.Equal(len(r.Symbols), pos, "word %q: syllables do not cover the full symbol sequence", w)
	}
}

func (s *ParserTestSuite) TestParseIsDeterministicAndIdempotent() {
	const word = "בְּרֵאשִׁית"
	first, err := Parse(word)
	s.Require().NoError(err)
	second, err := Parse(word)
	s.Require().NoError(err)
	s.Equal(first.Symbols, second.Symbols)
	s.Equal(first.Syllables, second.Syllables)
	s.Equal(first.Flags, second.Flags)
}

func (s *ParserTestSuite) TestParseWordsPhraseGrouping() {
	results, err := ParseWords("כָּל־ נֶפֶשׁ")
	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.True(results[0].Word.FollowedByMaqaf)
	s.Equal(results[0].PhraseIndex, results[1].PhraseIndex)
}
