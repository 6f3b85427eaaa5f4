// Command ratiorepl is an interactive calculator over exact rational
// arithmetic that reports, for every evaluated subexpression it is
// asked about, how the platform's float64 approximation diverges from
// the exact truth.
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/ratiorepl/ratiorepl/repl"
)

// version is overwritten at release-build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var estimate []string
	var showVersion bool
	var showHelp bool
	var recordPath string

	flag.StringArrayVarP(&estimate, "estimate", "e", nil, "estimate-report option tokens, comma-separated (repeatable)")
	flag.BoolVarP(&showVersion, "version", "V", false, "print version and exit")
	flag.BoolVarP(&showHelp, "help", "h", false, "print usage and exit")
	flag.StringVar(&recordPath, "record", "", "archive the session's evaluated values to this file")
	flag.Parse()

	if showHelp {
		flag.Usage()
		return 0
	}
	if showVersion {
		fmt.Println("ratiorepl", version)
		return 0
	}

	r, err := repl.New(repl.Options{
		InitialEstimate: estimate,
		RecordPath:      recordPath,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "ratiorepl:", err)
		return 1
	}

	if err := r.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "ratiorepl:", err)
		return 1
	}
	return 0
}
