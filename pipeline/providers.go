package pipeline

import (
	"bufio"
	"os"
	"strings"

	"bitbucket.org/Davydov/codonbias/bio"
)

// FileProvider reads FASTA sequences from a local file.
type FileProvider struct {
	Path string
}

// Sequences parses the FASTA file. The file is closed on all paths.
func (p FileProvider) Sequences() (bio.Sequences, error) {
	f, err := os.Open(p.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return bio.ParseFasta(f)
}

// IDSelector keeps only sequences whose identifier is in the set.
type IDSelector struct {
	IDs map[string]bool
}

// NewIDSelector creates a selector from a list of identifiers.
func NewIDSelector(ids []string) *IDSelector {
	s := &IDSelector{IDs: make(map[string]bool, len(ids))}
	for _, id := range ids {
		s.IDs[id] = true
	}
	return s
}

// ReadIDSelector reads identifiers from a file, one per line. Empty
// lines are skipped. This is the surface an external alignment-hit
// filtering step hands its selection over on.
func ReadIDSelector(path string) (*IDSelector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ids := make([]string, 0, 40)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ids = append(ids, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewIDSelector(ids), nil
}

// Select returns the subset of seqs with a matching identifier.
func (s *IDSelector) Select(seqs bio.Sequences) (bio.Sequences, error) {
	hegs := make(bio.Sequences, 0, len(s.IDs))
	for _, seq := range seqs {
		if s.IDs[seq.ID()] {
			hegs = append(hegs, seq)
		}
	}
	return hegs, nil
}
