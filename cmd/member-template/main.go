// Package main provides the CLI entrypoint for member-template.
//
// member-template expands a line template once per member of a type:
//   - Loads the type from Go packages (AST + go/types) or a YAML/JSONC
//     description file
//   - Pairs fields with bean accessors ("getX()", "isX()" for booleans),
//     or lists every field with its type
//   - Substitutes ${name}, ${getter}, ${type} per member and joins the
//     lines with a separator (${newline} for a line break)
//
// Usage:
//
//	member-template [flags] TYPE [PARAM...]
//
// PARAMs are the template variable's positional parameters. Without them
// the parameters are taken from --template, --separator and
// --force-newline.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

// Exit codes.
const (
	exitFailure       = 1
	exitUsage         = 2
	exitNotApplicable = 3
)

// exitError carries a process exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func (e *exitError) ExitCode() int {
	return e.code
}

func usageError(format string, args ...any) error {
	return &exitError{code: exitUsage, err: fmt.Errorf(format, args...)}
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}

		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}

		os.Exit(exitFailure)
	}
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: member-template [flags] TYPE [PARAM...]\n\n")
	fmt.Fprintf(w, "Expands a line template once per member of TYPE.\n\n")
	fmt.Fprintf(w, "Flags:\n%s", flagSet.FlagUsages())
}
