// plotweights creates a bar chart of codon-usage index weights.
package main

import (
	"flag"
	"fmt"
	"log"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"bitbucket.org/Davydov/codonbias/cai"
	"bitbucket.org/Davydov/codonbias/pipeline"
)

func main() {
	fasta := flag.String("fasta", "", "CDS sequences in FASTA format")
	nrcsu := flag.Bool("nrcsu", false, "plot NRCSU instead of RCSU")
	out := flag.String("out", "weights.png", "output file")
	flag.Parse()

	if *fasta == "" {
		log.Fatal("no FASTA file given")
	}

	seqs, err := pipeline.FileProvider{Path: *fasta}.Sequences()
	if err != nil {
		log.Fatal(err)
	}

	ix := cai.NewIndexer(seqs)
	kind := cai.RCSU
	if *nrcsu {
		kind = cai.NRCSU
		err = ix.BuildNRCSU()
	} else {
		err = ix.BuildRCSU()
	}
	if err != nil {
		log.Fatal(err)
	}

	entries := ix.Index(kind).Entries()
	values := make(plotter.Values, len(entries))
	labels := make([]string, len(entries))
	for i, e := range entries {
		values[i] = e.Weight
		labels[i] = e.Codon
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s weights", kind)
	p.Y.Label.Text = "weight"

	bars, err := plotter.NewBarChart(values, vg.Points(4))
	if err != nil {
		log.Fatal(err)
	}
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 1.5
	p.X.Tick.Label.XAlign = -0.5
	p.X.Tick.Label.YAlign = -0.5

	if err := p.Save(12*vg.Inch, 4*vg.Inch, *out); err != nil {
		log.Fatal(err)
	}
}
