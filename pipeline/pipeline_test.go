package pipeline

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"bitbucket.org/Davydov/codonbias/bio"
)

const smallDiff = 1e-6

// memProvider is an in-memory SequenceProvider for tests.
type memProvider bio.Sequences

func (p memProvider) Sequences() (bio.Sequences, error) {
	return bio.Sequences(p), nil
}

func TestRunWithoutSelector(tst *testing.T) {
	p := New(memProvider{{Name: "seq1", Sequence: "ATGATGTTTTTC"}}, nil)
	res, err := p.Run()
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if res.NSequences != 1 {
		tst.Error("Expected 1 sequence, got", res.NSequences)
	}
	if len(res.RCSU) != 64 || len(res.NRCSU) != 64 {
		tst.Error("Index tables should cover all 64 codons")
	}
	if res.HEGFB != nil {
		tst.Error("No selector configured, HEGFB should be empty")
	}
	if math.Abs(res.RCSU["ATG"]-1) > smallDiff {
		tst.Error("RCSU(ATG)=", res.RCSU["ATG"])
	}
}

func TestRunWithSelector(tst *testing.T) {
	seqs := memProvider{
		// uses TTT only
		{Name: "heg1 elongation factor", Sequence: "ATGTTTTTT"},
		// uses TTC only
		{Name: "gene2", Sequence: "ATGTTCTTCTTC"},
	}
	p := New(seqs, NewIDSelector([]string{"heg1"}))
	res, err := p.Run()
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if res.NHEG != 1 {
		tst.Error("Expected 1 selected gene, got", res.NHEG)
	}
	// over all genes TTC dominates, over the HEG subset only TTT is used
	if res.NRCSU["TTC"] != 1 || math.Abs(res.NRCSU["TTT"]-2./3.) > smallDiff {
		tst.Error("Unexpected NRCSU weights:", res.NRCSU["TTT"], res.NRCSU["TTC"])
	}
	if res.HEGFB["TTT"] != 1 || res.HEGFB["TTC"] != 0 {
		tst.Error("Unexpected HEGFB weights:", res.HEGFB["TTT"], res.HEGFB["TTC"])
	}
}

func TestFileProvider(tst *testing.T) {
	dir := tst.TempDir()
	fn := filepath.Join(dir, "cds.fst")
	if err := os.WriteFile(fn, []byte(">seq1\nATGTTT\n"), 0666); err != nil {
		tst.Fatal("Error: ", err)
	}
	seqs, err := FileProvider{Path: fn}.Sequences()
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if len(seqs) != 1 || seqs[0].Sequence != "ATGTTT" {
		tst.Error("Unexpected sequences:", seqs)
	}
}

func TestReadIDSelector(tst *testing.T) {
	dir := tst.TempDir()
	fn := filepath.Join(dir, "hegs.txt")
	if err := os.WriteFile(fn, []byte("heg1\n\nheg2\n"), 0666); err != nil {
		tst.Fatal("Error: ", err)
	}
	s, err := ReadIDSelector(fn)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if len(s.IDs) != 2 || !s.IDs["heg1"] || !s.IDs["heg2"] {
		tst.Error("Unexpected ids:", s.IDs)
	}
	hegs, err := s.Select(bio.Sequences{
		{Name: "heg1 x", Sequence: "ATG"},
		{Name: "other", Sequence: "TTT"},
	})
	if err != nil {
		tst.Error("Error: ", err)
	}
	if len(hegs) != 1 || hegs[0].ID() != "heg1" {
		tst.Error("Unexpected selection:", hegs)
	}
}
