package cai

import "fmt"

// InvalidCodonError is returned when a codon outside of the standard
// 64-codon alphabet is encountered during counting.
type InvalidCodonError struct {
	// Codon is the offending triplet.
	Codon string
	// Gene is the identifier of the record the triplet was found in.
	Gene string
}

func (e *InvalidCodonError) Error() string {
	return fmt.Sprintf("illegal codon %s in gene: %s", e.Codon, e.Gene)
}

// DuplicateIndexError is returned when an index build is requested
// while the index already holds values. An index is computed at most
// once per Indexer; re-running requires a fresh instance.
type DuplicateIndexError struct {
	Kind Kind
}

func (e *DuplicateIndexError) Error() string {
	return fmt.Sprintf("a %s index has already been set", e.Kind)
}
