package hebparse

import (
	"github.com/hebphonics/hebparse/classify"
	"github.com/hebphonics/hebparse/cluster"
	"github.com/hebphonics/hebparse/hebrew"
	"github.com/hebphonics/hebparse/normalize"
	"github.com/hebphonics/hebparse/syllable"
)

// Parse runs the full pipeline over a single word (spec §6). If s
// tokenizes into more than one word (unseparated text was passed by
// mistake), only the first is parsed; if it contains no word at all —
// empty input, or cantillation/whitespace only — Parse returns a zero
// ParseResult with whatever diagnostic flags the input itself raised.
func Parse(s string) (ParseResult, error) {
	runes, flags, err := normalize.Normalize(s)
	if err != nil {
		return ParseResult{}, err
	}

	words, tflags := cluster.Tokenize(runes)
	flags = flags.Merge(tflags)

	if len(words) == 0 {
		return ParseResult{Flags: flags}, nil
	}
	result := buildResult(words[0], flags)
	tracer().Debugf("parsed %q into %d symbols, %d syllables", s, len(result.Symbols), len(result.Syllables))
	return result, nil
}

// ParseWords splits text on whitespace/maqaf and parses every word it
// finds (spec §6 batch form). Consecutive maqaf-joined words share a
// PhraseIndex.
func ParseWords(text string) ([]ParseResult, error) {
	runes, flags, err := normalize.Normalize(text)
	if err != nil {
		return nil, err
	}

	words, tflags := cluster.Tokenize(runes)
	flags = flags.Merge(tflags)

	results := make([]ParseResult, len(words))
	phrase := 0
	for i, w := range words {
		results[i] = buildResult(w, flags)
		results[i].PhraseIndex = phrase
		if !w.FollowedByMaqaf {
			phrase++
		}
	}
	tracer().Debugf("parsed %q into %d words", text, len(words))
	return results, nil
}

// buildResult runs classify and syllable over one already-tokenized
// word and folds in the has_no_niqqud diagnostic, which depends on the
// word as a whole rather than any single cluster.
func buildResult(w hebrew.Word, flags hebrew.Set) ParseResult {
	symbols, cflags := classify.Classify(w)
	flags = flags.Merge(cflags)
	if !hasNiqqud(w) {
		flags = flags.With(hebrew.FlagHasNoNiqqud)
	}
	return ParseResult{
		Word:      w,
		Symbols:   symbols,
		Syllables: syllable.Syllabify(symbols),
		Flags:     flags,
	}
}

func hasNiqqud(w hebrew.Word) bool {
	for _, c := range w.Clusters {
		if c.HasVowel() {
			return true
		}
	}
	return false
}
