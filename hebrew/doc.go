/*
Package hebrew holds the shared vocabulary of the HebPhonics parser: the
recognized Hebrew Unicode inventory, the closed enumerations of letters,
letter classes and grammatical symbols, and the cluster/word/syllable
data model that the normalize, cluster, classify and syllable packages
build and consume.

This package defines data only. It has no pipeline logic of its own;
see package hebparse for the entry point that wires the pipeline stages
together.
*/
package hebrew
