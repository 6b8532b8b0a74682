// Package pipeline composes a sequence source and an optional
// highly-expressed-gene selection with the codon-usage index
// computation.
package pipeline

import (
	"github.com/op/go-logging"

	"bitbucket.org/Davydov/codonbias/bio"
	"bitbucket.org/Davydov/codonbias/cai"
)

// log is the global logging variable.
var log = logging.MustGetLogger("pipeline")

// SequenceProvider supplies the CDS sequences. Implementations may
// read a local file, an upload, or an already downloaded genome.
type SequenceProvider interface {
	Sequences() (bio.Sequences, error)
}

// HEGSelector restricts a sequence set to the highly expressed genes.
// The selection itself (e.g. filtering alignment hits) happens
// elsewhere; implementations only apply its outcome.
type HEGSelector interface {
	Select(seqs bio.Sequences) (bio.Sequences, error)
}

// Result holds the computed index tables.
type Result struct {
	// RCSU is the RCSU table over all the sequences.
	RCSU cai.Index `json:"rcsu"`
	// NRCSU is the NRCSU table over all the sequences.
	NRCSU cai.Index `json:"nrcsu"`
	// HEGFB is the NRCSU table over the highly expressed genes
	// only, empty if no selector was configured.
	HEGFB cai.Index `json:"hegfb,omitempty"`
	// NSequences is the number of input sequences.
	NSequences int `json:"nSequences"`
	// NHEG is the number of selected highly expressed genes.
	NHEG int `json:"nHEG,omitempty"`
}

// Pipeline runs the codon-usage computation for one genome.
type Pipeline struct {
	Provider SequenceProvider
	Selector HEGSelector
}

// New creates a pipeline; selector may be nil.
func New(provider SequenceProvider, selector HEGSelector) *Pipeline {
	return &Pipeline{Provider: provider, Selector: selector}
}

// Run fetches the sequences and computes the RCSU and NRCSU tables,
// plus the HEG-biased table when a selector is configured. A fresh
// indexer is used per accumulation cycle.
func (p *Pipeline) Run() (*Result, error) {
	seqs, err := p.Provider.Sequences()
	if err != nil {
		return nil, err
	}
	log.Infof("Read %d sequences", len(seqs))

	res := &Result{NSequences: len(seqs)}

	ix := cai.NewIndexer(seqs)
	if err := ix.BuildRCSU(); err != nil {
		return nil, err
	}
	if err := ix.BuildNRCSU(); err != nil {
		return nil, err
	}
	res.RCSU = ix.Index(cai.RCSU)
	res.NRCSU = ix.Index(cai.NRCSU)

	if p.Selector != nil {
		hegs, err := p.Selector.Select(seqs)
		if err != nil {
			return nil, err
		}
		log.Infof("Selected %d highly expressed genes", len(hegs))
		res.NHEG = len(hegs)

		hix := cai.NewIndexer(hegs)
		if err := hix.BuildNRCSU(); err != nil {
			return nil, err
		}
		res.HEGFB = hix.Index(cai.NRCSU)
	}

	return res, nil
}
