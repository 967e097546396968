// Package demo holds the template's demonstration failures. Each function is
// a stand-in for real application logic; replace them when adopting the
// template for a new project.
package demo

import (
	"fmt"
	"io"
	"os"

	"github.com/tyg-tools/tyg-template/internal/apperr"
)

// Fail returns the canonical demonstration error. When bare is set the error
// is raised bare-style, the form meant for end users.
func Fail(bare bool) error {
	if bare {
		return apperr.Baref("Error thrown to demonstrate the error handling process")
	}
	return apperr.Errorf("Error thrown to demonstrate the error handling process")
}

// cycleLimit is where the cycle loop gives up.
const cycleLimit = 5

// RecursiveFail iterates a counter, printing each cycle to out, and fails
// once the counter reaches the limit. It shows how an error raised deep in a
// loop propagates unchanged to the top-level reporter.
func RecursiveFail(out io.Writer) error {
	fmt.Fprintf(out, "We need to fail at cycle %d\n", cycleLimit)
	for n := 1; n <= 11; n++ {
		if n >= cycleLimit {
			return apperr.Errorf("Failed at cycle %d", n)
		}
		fmt.Fprintf(out, "Cycle %d\n", n)
	}
	return nil
}

// FileFail attempts to open path and reports the failure. With better set,
// the raw I/O error is re-raised through the error reporter with the path
// prepended; otherwise the os error propagates as-is.
func FileFail(better bool, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if better {
			return apperr.Errorf("%s: %v", path, err)
		}
		return err
	}
	defer f.Close()
	return nil
}
