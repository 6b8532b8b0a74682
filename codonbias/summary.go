package main

import "bitbucket.org/Davydov/codonbias/pipeline"

// RunSummary is storing codonbias run summary information.
type RunSummary struct {
	// Version stores codonbias version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Result stores the computed index tables.
	Result *pipeline.Result `json:"result"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
}
