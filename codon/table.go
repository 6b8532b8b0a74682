// Package codon provides the standard codon table and the grouping of
// codons into synonymous classes.
package codon

import (
	"sort"

	"bitbucket.org/Davydov/codonbias/bio"
)

// alphabet is the nucleotide alphabet in the canonical positional order.
var alphabet = [...]byte{'T', 'C', 'A', 'G'}

var (
	// Codons is an array of all the 64 codons in the canonical
	// (TCAG positional) order.
	Codons []string
	// Groups maps a synonymous-group label (three-letter amino-acid
	// code or STOP) to the member codons, in the canonical codon
	// order.
	Groups map[string][]string
	// GroupNames is the sorted list of the 21 group labels.
	GroupNames []string
	// GroupOf maps a codon to its synonymous-group label.
	GroupOf map[string]string
)

// aaName maps a one-letter amino-acid code to the three-letter
// group label ('_' is the stop class).
var aaName = map[byte]string{
	'A': "ALA", 'R': "ARG", 'N': "ASN", 'D': "ASP", 'C': "CYS",
	'Q': "GLN", 'E': "GLU", 'G': "GLY", 'H': "HIS", 'I': "ILE",
	'L': "LEU", 'K': "LYS", 'M': "MET", 'F': "PHE", 'P': "PRO",
	'S': "SER", 'T': "THR", 'W': "TRP", 'Y': "TYR", 'V': "VAL",
	'_': "STOP",
}

// getCodons returns a channel with every codon (64).
func getCodons() <-chan string {
	ch := make(chan string)
	var cn func(string)
	cn = func(prefix string) {
		if len(prefix) == 3 {
			ch <- prefix
		} else {
			for _, l := range alphabet {
				cn(prefix + string(l))
			}
			if len(prefix) == 0 {
				close(ch)
			}
		}
	}
	go cn("")
	return ch
}

func init() {
	Codons = make([]string, 0, 64)
	Groups = make(map[string][]string, 21)
	GroupOf = make(map[string]string, 64)
	for codon := range getCodons() {
		Codons = append(Codons, codon)
		label := aaName[bio.GeneticCode[codon]]
		Groups[label] = append(Groups[label], codon)
		GroupOf[codon] = label
	}
	GroupNames = make([]string, 0, len(Groups))
	for label := range Groups {
		GroupNames = append(GroupNames, label)
	}
	sort.Strings(GroupNames)
}

// CountTemplate returns a fresh mapping from each of the 64 codons to
// zero, to be used as a count accumulator.
func CountTemplate() map[string]int {
	t := make(map[string]int, len(Codons))
	for _, codon := range Codons {
		t[codon] = 0
	}
	return t
}
