// ultralog-parse is a command-line smoke test for the parser stack: it
// detects a log file's format, parses it, and prints a channel summary.
//
// Exit codes:
//
//	0  parsed successfully
//	1  unrecognized format
//	2  recognized format but the file is truncated or otherwise invalid
//	3  I/O error reading the file
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/SomethingNew71/UltraLog/internal/detect"
	"github.com/SomethingNew71/UltraLog/internal/logmodel"
	"github.com/SomethingNew71/UltraLog/internal/parsers/ecumaster"
	"github.com/SomethingNew71/UltraLog/internal/parsers/haltech"
	"github.com/SomethingNew71/UltraLog/internal/parsers/mlg"
	"github.com/SomethingNew71/UltraLog/internal/ui/render"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <log-file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(3)
	}

	path := flag.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ultralog-parse: reading %s: %v\n", path, err)
		os.Exit(3)
	}

	format, err := detect.Detect(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ultralog-parse: %v\n", err)
		os.Exit(1)
	}

	log, err := parse(format, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ultralog-parse: parsing %s as %s: %v\n", path, format, err)
		os.Exit(2)
	}

	fmt.Print(render.Summary(log))
	fmt.Print(render.ChannelTable(log))
}

func parse(format logmodel.Format, data []byte) (*logmodel.Log, error) {
	switch format {
	case logmodel.FormatHaltech:
		return haltech.Parse(data)
	case logmodel.FormatECUMaster:
		return ecumaster.Parse(data)
	case logmodel.FormatMLG:
		return mlg.Parse(data)
	default:
		return nil, errors.New("ultralog-parse: no parser for detected format")
	}
}
