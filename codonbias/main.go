/*

Codonbias computes codon-usage index tables (RCSU and NRCSU) from a
FASTA file of CDS sequences.

The basic usage looks like this:

	codonbias cds.fst

, this will print both tables to the standard output.

An index biased towards the highly expressed genes can be computed by
providing a file with their identifiers (one per line):

	codonbias -hegs hegs.txt cds.fst

To see all the options run:

	codonbias -h

*/
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/codonbias/cai"
	"bitbucket.org/Davydov/codonbias/pipeline"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("codonbias")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("codonbias", "codon-usage index calculator").Version(version)

	// input
	fastaFileName = app.Arg("fasta", "CDS sequences in FASTA format").Required().ExistingFile()
	hegsFileName  = app.Flag("hegs", "file with identifiers of highly expressed genes (one per line)").ExistingFile()

	// output
	index = app.Flag("index", "index table to print").
		Default("both").
		Enum("rcsu", "nrcsu", "both")
	outF     = app.Flag("out", "write the tables to a file").String()
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
	jsonF = app.Flag("json", "write json output to a file").String()
)

func run() (summary *RunSummary) {
	startTime := time.Now()
	summary = &RunSummary{}

	var selector pipeline.HEGSelector
	if *hegsFileName != "" {
		s, err := pipeline.ReadIDSelector(*hegsFileName)
		if err != nil {
			log.Fatal(err)
		}
		log.Infof("Read %d highly expressed gene ids", len(s.IDs))
		selector = s
	}

	p := pipeline.New(pipeline.FileProvider{Path: *fastaFileName}, selector)
	res, err := p.Run()
	if err != nil {
		log.Fatal(err)
	}
	summary.Result = res

	f := os.Stdout
	if *outF != "" {
		f, err = os.Create(*outF)
		if err != nil {
			log.Fatal("Error creating output file:", err)
		}
		defer f.Close()
	}

	tables := make([]cai.Index, 0, 3)
	switch *index {
	case "rcsu":
		tables = append(tables, res.RCSU)
	case "nrcsu":
		tables = append(tables, res.NRCSU)
	case "both":
		tables = append(tables, res.RCSU, res.NRCSU)
	}
	if res.HEGFB != nil {
		tables = append(tables, res.HEGFB)
	}

	for i, tbl := range tables {
		if i > 0 {
			fmt.Fprintln(f)
		}
		if _, err := tbl.WriteTo(f); err != nil {
			log.Fatal("Error writing index table:", err)
		}
	}

	endTime := time.Now()

	deltaT := endTime.Sub(startTime)
	log.Noticef("Running time: %v", deltaT)
	summary.Time = deltaT.Seconds()

	return
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "codonbias")
	logging.SetLevel(level, "pipeline")
	logging.SetLevel(level, "cai")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	summary := run()
	summary.Version = version
	summary.CommandLine = os.Args

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}
