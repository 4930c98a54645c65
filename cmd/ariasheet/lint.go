package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	apperrors "github.com/reglet-dev/ariasheet/internal/application/errors"
	"github.com/reglet-dev/ariasheet/internal/application/ports"
	"github.com/reglet-dev/ariasheet/internal/domain/entities"
)

// stdinSource names standard input on the command line and in reports.
const stdinSource = "-"

func newLintCmd() *cobra.Command {
	opts := DefaultCommonOptions(lintFormats)
	var noFail bool

	cmd := &cobra.Command{
		Use:   "lint <file.html>... | -",
		Short: "Check aria-* attributes and roles in HTML documents",
		Long: `Parse each document and report aria-* attributes that are disallowed or
discouraged on their element, unknown aria-* attributes and roles the element
may not carry. Use "-" to read the document from standard input.

Exits with status 1 when any error level finding is reported.`,
		Example: `  ariasheet lint index.html
  ariasheet lint dist/*.html --format sarif -o ariasheet.sarif
  cat page.html | ariasheet lint -`,
		Args: cobra.MinimumNArgs(1),
		RunE: withOptions(&opts, func(cc *CommandContext, cmd *cobra.Command, args []string) error {
			reports := make([]*entities.LintReport, 0, len(args))
			for _, source := range args {
				content, err := readDocument(cmd, source)
				if err != nil {
					return err
				}

				report, err := cc.Container.LintUseCase().Execute(cc.Context, dto.LintRequest{
					Dataset: opts.Dataset(),
					Version: opts.Version(),
					Source:  source,
					Content: content,
				})
				if err != nil {
					return err
				}
				reports = append(reports, report)
			}

			if err := formatWith(cc, cmd, &opts, func(f ports.OutputFormatter) error {
				return f.FormatLint(reports)
			}); err != nil {
				return err
			}

			return lintResult(reports, noFail)
		}),
	}

	opts.RegisterFlags(cmd)
	cmd.Flags().BoolVar(&noFail, "no-fail", false, "Exit 0 even when errors are found")
	return cmd
}

func readDocument(cmd *cobra.Command, source string) ([]byte, error) {
	if source == stdinSource {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return data, nil
	}

	//nolint:gosec // G304: documents to lint are user-provided paths
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return data, nil
}

// lintResult returns a LintFailedError naming the failing documents.
func lintResult(reports []*entities.LintReport, noFail bool) error {
	if noFail {
		return nil
	}

	var failed []string
	errCount := 0
	for _, r := range reports {
		if n := r.Errors(); n > 0 {
			failed = append(failed, r.Source)
			errCount += n
		}
	}
	if errCount == 0 {
		return nil
	}
	return &apperrors.LintFailedError{Source: strings.Join(failed, ", "), Errors: errCount}
}
