// Utility that rewrites a JSON document into its compact form.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	flag "github.com/spf13/pflag"

	jsonb "github.com/ThadThompson/jsonb"
	"github.com/ThadThompson/jsonb/transcode"
)

func main() {
	colorize := flag.BoolP("color", "c", false, "colorize the output")
	verbose := flag.BoolP("verbose", "v", false, "log builder state transitions to stderr")
	inputFile := flag.StringP("input", "i", "", "read input from file")
	outputFile := flag.StringP("output", "o", "", "write output to file")
	flag.Parse()

	var r io.Reader
	var w io.Writer

	if len(*inputFile) > 0 {
		// Read from file
		fin, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "unable to open input file: ", err)
			os.Exit(1)
		}
		r = fin
	} else if flag.NArg() > 0 {
		// Decode from command line
		r = bytes.NewReader([]byte(flag.Arg(0)))
	} else {
		// Read from stdin
		r = os.Stdin
	}

	if len(*outputFile) > 0 {
		// Write to file
		fout, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "unable to create output file: ", err)
			os.Exit(1)
		}
		w = fout
	} else {
		// Write to standard out
		w = os.Stdout
	}

	t := transcode.New()
	if *colorize {
		t.SetStyle(transcode.DefaultStyle())
	}
	if *verbose {
		logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
		t.SetTrace(jsonb.NewLogTracer(logger))
	}

	if err := t.Reflow(r, w); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Fprintln(w)
}
