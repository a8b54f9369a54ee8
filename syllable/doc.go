/*
Package syllable implements the fourth stage of the HebPhonics pipeline
(spec §4.4): grouping a word's flat grammatical symbol sequence into
syllable spans.

A new syllable begins at each consonant cluster that carries a true
vowel nucleus (any vowel symbol, including hataf-* and every -male
form) or a voiced sheva-na; a cluster carrying sheva-nah, or no
vowel/sheva at all, extends the current syllable as a coda instead.
This is equivalent to the spec's "insert a boundary before every vowel
symbol or sheva-na" phrasing applied at cluster granularity rather than
raw symbol position, since a vowel always immediately follows its own
letter within one cluster.
*/
package syllable
