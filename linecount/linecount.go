// Package linecount implements a recursive, extension-filtered line
// counter: it walks a directory tree (following symlinks), and for every
// file whose name ends with "." plus a given extension, reports the file's
// path and its newline-delimited line count.
package linecount

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/karrick/godirwalk"
)

// Count walks dir recursively, following symbolic links, and writes one
// "<path> <line count>" line to out for every file whose name ends with
// "." + ext. Entries the walker cannot read are skipped; a failure to open
// or read a matched file aborts the whole run with that error.
func Count(dir, ext string, out io.Writer) error {
	suffix := "." + ext

	var countErr error
	err := godirwalk.Walk(dir, &godirwalk.Options{
		FollowSymbolicLinks: true,
		Callback: func(path string, de *godirwalk.Dirent) error {
			if de.IsDir() || !strings.HasSuffix(de.Name(), suffix) {
				return nil
			}
			info, err := os.Stat(path)
			if err != nil {
				countErr = fmt.Errorf("stat %s: %w", path, err)
				return countErr
			}
			if info.IsDir() {
				// Symlink to a directory whose name matches the suffix.
				return nil
			}
			n, err := countLines(path)
			if err != nil {
				countErr = err
				return countErr
			}
			if _, err := fmt.Fprintf(out, "%s %d\n", path, n); err != nil {
				countErr = err
				return countErr
			}
			return nil
		},
		ErrorCallback: func(path string, err error) godirwalk.ErrorAction {
			// Unwalkable entries are skipped; errors raised by the
			// callback above halt the run.
			if countErr != nil {
				return godirwalk.Halt
			}
			return godirwalk.SkipNode
		},
	})
	if countErr != nil {
		return countErr
	}
	return err
}

// countLines counts newline-delimited lines. A trailing fragment without a
// newline counts as a line; an empty file has zero lines.
func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	n := 0
	for {
		chunk, err := r.ReadString('\n')
		if len(chunk) > 0 {
			n++
		}
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return 0, fmt.Errorf("read %s: %w", path, err)
		}
	}
}
