/*
Package classify implements the third stage of the HebPhonics pipeline
(spec §4.3): the rule engine that rewrites a word's raw cluster
diacritics into named grammatical symbols.

Rules are grouped exactly as spec §4.3 orders them — letters, dagesh,
vav-composition, sheva, hataf, male-mater, patah-genuvah, qamats-qatan,
residual vowels — and each rule is tagged with its H-number (H101-H605)
so that a failing test can cite exactly which rule produced, or failed
to produce, a symbol. Each group is a function whose ordered switch
statement encodes first-match-wins priority: letters.go, dagesh.go,
vav.go and sheva.go hold one group each, and vowels.go holds hataf,
male-mater, patah-genuvah, qamats-qatan and the residual vowels. The
rules are code, not a data table of (predicate, effect) pairs.

Classification is implemented as a single left-to-right fold over a
word's clusters (spec §9 "Cyclic references avoidance"): each cluster is
resolved using the already-resolved earlier clusters and the raw
(unclassified) data of the clusters after it, never by back-patching
further than one step. The two exceptions spec §4.3.3 and §4.3.5 call for
explicitly — a vav cluster writing its composed vowel onto the
immediately preceding cluster, and a mater-lectionis vowel consuming the
immediately following cluster — are both one-step writes relative to
the cluster currently being resolved; before consuming, the mater check
also reads the raw cluster two steps ahead, so that a vav there can
claim the letter first.
*/
package classify
