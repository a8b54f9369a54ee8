/*
Package hebparse is the Hebrew phonological parser (spec §1-§2): it
classifies pointed Hebrew text into a stream of grammatical symbols and
groups them into syllables.

The package wires together four independent, pure pipeline stages:

	normalize  strips cantillation and decomposes presentation forms
	cluster    folds the normalized stream into letter+diacritic clusters
	classify   rewrites each cluster's raw diacritics into named symbols
	syllable   groups the classified symbols into syllable spans

Parse and ParseWords are the package's only entry points (spec §6); no
other package needs to be imported directly by a caller.
*/
package hebparse
