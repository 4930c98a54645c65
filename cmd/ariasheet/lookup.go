package main

import (
	"github.com/spf13/cobra"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	"github.com/reglet-dev/ariasheet/internal/application/ports"
)

func newLookupCmd() *cobra.Command {
	opts := DefaultCommonOptions(tableFormats)

	cmd := &cobra.Command{
		Use:   "lookup <element> [aria-attribute...]",
		Short: "Show whether aria-* attributes are allowed on an element",
		Long: `Report the verdict of each given aria-* attribute, or of every attribute
when none is given, on the element and each of its conditional patterns.`,
		Example: `  ariasheet lookup img aria-label
  ariasheet lookup h1 aria-level --aria-version 1.1
  ariasheet lookup svg:a --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: withOptions(&opts, func(cc *CommandContext, cmd *cobra.Command, args []string) error {
			resp, err := cc.Container.LookupUseCase().Execute(cc.Context, dto.LookupRequest{
				Dataset:    opts.Dataset(),
				Version:    opts.Version(),
				Element:    args[0],
				Properties: args[1:],
			})
			if err != nil {
				return err
			}

			return formatWith(cc, cmd, &opts, func(f ports.OutputFormatter) error {
				return f.FormatLookup(resp)
			})
		}),
	}

	opts.RegisterFlags(cmd)
	return cmd
}
