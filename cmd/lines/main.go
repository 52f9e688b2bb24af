// lines - recursive line counter
//
// Walks a directory (following symlinks) and prints "<path> <line count>"
// for every file whose name ends with "." plus the given extension.
//
// Build: go build ./cmd/lines
// Usage:
//
//	lines <dir> <ext>
//
// Set LINES_VERBOSE=1 for scan diagnostics on stderr.
package main

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"github.com/chazu/stackvm/linecount"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("lines")

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "USAGE: lines <dir> <ext>")
		os.Exit(1)
	}
	dir, ext := os.Args[1], os.Args[2]

	verbosity := 0
	if os.Getenv("LINES_VERBOSE") != "" {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	log.Infof("scanning %s for *.%s files", dir, ext)
	if err := linecount.Count(dir, ext, os.Stdout); err != nil {
		log.Errorf("%s", err.Error())
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
