/*
Package normalize implements the first stage of the HebPhonics pipeline
(spec §4.1): it strips cantillation and bidi controls, decomposes
precomposed shin/sin presentation forms, and reorders the diacritics
within each cluster into canonical order (letter, dagesh, shin/sin dot,
vowel/sheva).

Its output feeds package cluster, which folds the normalized stream into
per-letter clusters.
*/
package normalize
