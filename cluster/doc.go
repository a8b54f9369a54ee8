/*
Package cluster implements the second stage of the HebPhonics pipeline
(spec §4.2): it folds a normalized code-point stream into words, each a
list of hebrew.Cluster values annotated with word-start/word-end flags
and the maqaf-joined-phrase flag.
*/
package cluster
