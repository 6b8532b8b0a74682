// Package cai computes codon-usage index tables (RCSU and NRCSU) from
// CDS sequences. See Sharp & Li (Nucleic Acids Res. 1987, 15:1281-95).
package cai

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gonum/floats"
	"github.com/op/go-logging"

	"bitbucket.org/Davydov/codonbias/bio"
	"bitbucket.org/Davydov/codonbias/codon"
)

// log is the global logging variable.
var log = logging.MustGetLogger("cai")

// Kind identifies an index table variant.
type Kind int

const (
	// RCSU is usage relative to an expected-uniform distribution
	// among synonymous codons, scaled to [0, 1] within each group.
	RCSU Kind = iota
	// NRCSU is usage normalized directly by the total group usage,
	// then scaled to [0, 1] within each group.
	NRCSU
)

func (k Kind) String() string {
	switch k {
	case RCSU:
		return "RCSU"
	case NRCSU:
		return "NRCSU"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Index maps a codon to its weight.
type Index map[string]float64

// Entry is a single (codon, weight) pair of an index table.
type Entry struct {
	Codon  string
	Weight float64
}

// Indexer computes RCSU and NRCSU tables for a set of CDS sequences.
// Each index is built at most once per instance; an Indexer is meant
// for a single accumulation cycle (construct, build, read, discard).
// Instances share no state, so independent genomes can be processed
// in parallel with one Indexer each.
type Indexer struct {
	seqs   bio.Sequences
	counts map[string]int

	rcsu       Index
	rcsuBuilt  bool
	nrcsu      Index
	nrcsuBuilt bool
}

// NewIndexer creates an Indexer for the given sequences.
func NewIndexer(seqs bio.Sequences) *Indexer {
	return &Indexer{seqs: seqs}
}

// CountCodons scans all the sequences and replaces the codon-count
// accumulator. Sequences are case-normalized, a trailing fragment
// shorter than three bases is dropped. On InvalidCodonError the
// accumulator is left empty, no partial counts are exposed.
func (ix *Indexer) CountCodons() error {
	counts := codon.CountTemplate()
	ix.counts = nil
	for _, seq := range ix.seqs {
		s := strings.ToUpper(seq.Sequence)
		for i := 0; i+3 <= len(s); i += 3 {
			c := s[i : i+3]
			if _, ok := counts[c]; !ok {
				return &InvalidCodonError{Codon: c, Gene: seq.ID()}
			}
			counts[c]++
		}
	}
	ix.counts = counts
	log.Debugf("counted codons in %d sequences", len(ix.seqs))
	return nil
}

// BuildRCSU computes the RCSU index. The counts are (re-)accumulated
// from the sequences, so the table always reflects the current cycle.
func (ix *Indexer) BuildRCSU() error {
	if ix.rcsuBuilt {
		return &DuplicateIndexError{Kind: RCSU}
	}
	if err := ix.CountCodons(); err != nil {
		return err
	}
	ix.rcsu = ix.buildIndex(RCSU)
	ix.rcsuBuilt = true
	return nil
}

// BuildNRCSU computes the NRCSU index. Unlike RCSU, the per-codon
// value is not corrected for the number of synonymous codons in the
// group before normalization.
func (ix *Indexer) BuildNRCSU() error {
	if ix.nrcsuBuilt {
		return &DuplicateIndexError{Kind: NRCSU}
	}
	if err := ix.CountCodons(); err != nil {
		return err
	}
	ix.nrcsu = ix.buildIndex(NRCSU)
	ix.nrcsuBuilt = true
	return nil
}

// groupValues returns the pre-normalization index values for the
// codons of one synonymous group, in group order. For RCSU the counts
// are divided by total/n (the count expected under uniform synonymous
// usage), for NRCSU by the total itself. An unused group yields all
// zeroes instead of dividing by zero.
func (ix *Indexer) groupValues(kind Kind, codons []string) []float64 {
	vals := make([]float64, len(codons))
	for i, c := range codons {
		vals[i] = float64(ix.counts[c])
	}
	total := floats.Sum(vals)
	if total == 0 {
		return make([]float64, len(codons))
	}
	denominator := total
	if kind == RCSU {
		denominator = total / float64(len(codons))
	}
	for i := range vals {
		vals[i] /= denominator
	}
	return vals
}

// buildIndex derives an index table from the current counts. Group
// iteration and group-internal codon order are fixed, so summation
// order does not depend on map iteration.
func (ix *Indexer) buildIndex(kind Kind) Index {
	idx := make(Index, len(codon.Codons))
	for _, label := range codon.GroupNames {
		codons := codon.Groups[label]
		vals := ix.groupValues(kind, codons)
		max := floats.Max(vals)
		for i, c := range codons {
			if max == 0 {
				idx[c] = 0
			} else {
				idx[c] = vals[i] / max
			}
		}
	}
	return idx
}

// Counts returns the codon-count accumulator from the last successful
// counting cycle, nil if counting was not run or was aborted.
func (ix *Indexer) Counts() map[string]int {
	return ix.counts
}

// Index returns the requested index table, or nil if it was not built.
func (ix *Indexer) Index(kind Kind) Index {
	switch kind {
	case RCSU:
		return ix.rcsu
	case NRCSU:
		return ix.nrcsu
	}
	return nil
}

// Entries returns the entries of an index table sorted by codon.
func (idx Index) Entries() []Entry {
	entries := make([]Entry, 0, len(idx))
	for c, w := range idx {
		entries = append(entries, Entry{Codon: c, Weight: w})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Codon < entries[j].Codon
	})
	return entries
}

// WriteTo writes the index as sorted CODON\tWEIGHT lines, weights
// formatted with three decimal places.
func (idx Index) WriteTo(w io.Writer) (n int64, err error) {
	for _, e := range idx.Entries() {
		var written int
		written, err = fmt.Fprintf(w, "%s\t%.3f\n", e.Codon, e.Weight)
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
