// Package main provides the ariasheet CLI, a WAI-ARIA cheat sheet generator
// and attribute linter built on the markuplint HTML spec dataset.
package main

import (
	"errors"
	"os"

	apperrors "github.com/reglet-dev/ariasheet/internal/application/errors"
)

// Exit codes.
const (
	exitOK         = 0
	exitLintFailed = 1
	exitError      = 2
)

func main() {
	os.Exit(exitCode(Execute()))
}

// exitCode maps a command error to the process exit status. Documents with
// error findings exit 1 so that CI can tell them apart from broken input.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var lintErr *apperrors.LintFailedError
	if errors.As(err, &lintErr) {
		return exitLintFailed
	}
	return exitError
}
