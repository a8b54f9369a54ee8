package hebparse

import "github.com/hebphonics/hebparse/hebrew"

// ParseResult is the output of Parse (spec §3 "Parse result"): the
// tokenized word, its classified symbol sequence, the syllable spans
// over that sequence, and any diagnostic flags raised along the way.
type ParseResult struct {
	Word      hebrew.Word
	Symbols   []hebrew.Symbol
	Syllables []hebrew.Syllable
	Flags     hebrew.Set

	// PhraseIndex groups consecutive maqaf-joined words under one
	// shared index (SPEC_FULL.md "Supplemented features"); it is always
	// 0 for a single Parse call and only varies across ParseWords'
	// results.
	PhraseIndex int
}
