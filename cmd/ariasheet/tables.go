package main

import (
	"github.com/spf13/cobra"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	"github.com/reglet-dev/ariasheet/internal/application/ports"
)

// elementView selects how an element table is rendered.
type elementView func(ports.OutputFormatter, *dto.ElementTableResponse) error

func newElementsCmd() *cobra.Command {
	return newElementTableCmd(
		"elements",
		"List HTML elements with their implicit role and attribute verdict counts",
		`Print one row per element and conditional pattern with its implicit role
and the number of aria-* attributes that are allowed, discouraged or disallowed.`,
		ports.OutputFormatter.FormatElements,
	)
}

func newMatrixCmd() *cobra.Command {
	return newElementTableCmd(
		"matrix",
		"Print the element x aria-* attribute table",
		`Print the full cheat sheet: one row per element and conditional pattern,
one column per aria-* attribute, each cell marked allowed (✔), discouraged (⚠)
or disallowed (✘).`,
		ports.OutputFormatter.FormatMatrix,
	)
}

func newPermittedCmd() *cobra.Command {
	return newElementTableCmd(
		"permitted",
		"Print the roles each element may carry",
		`Print the roles permitted in the role attribute of each element and
conditional pattern. "any" means every concrete role, "none" means no role.`,
		ports.OutputFormatter.FormatPermittedRoles,
	)
}

func newElementTableCmd(use, short, long string, view elementView) *cobra.Command {
	opts := DefaultCommonOptions(tableFormats)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Example: `  ariasheet ` + use + `
  ariasheet ` + use + ` --aria-version 1.1 --show-deprecated
  ariasheet ` + use + ` --search input --format json
  ariasheet ` + use + ` --filter "conditional && implicitRole == 'img'"`,
		Args: cobra.NoArgs,
		RunE: withOptions(&opts, func(cc *CommandContext, cmd *cobra.Command, _ []string) error {
			resp, err := cc.Container.TableQueryUseCase().Elements(cc.Context, dto.TableRequest{
				Dataset: opts.Dataset(),
				Version: opts.Version(),
				Filters: opts.Filters(),
			})
			if err != nil {
				return err
			}
			cc.Logger.Debug("element table projected", "elements", resp.Elements, "patterns", resp.Patterns)

			return formatWith(cc, cmd, &opts, func(f ports.OutputFormatter) error {
				return view(f, resp)
			})
		}),
	}

	opts.RegisterFlags(cmd)
	opts.RegisterFilterFlags(cmd)
	return cmd
}

func newRolesCmd() *cobra.Command {
	opts := DefaultCommonOptions(tableFormats)

	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Print the role x aria-* attribute ownership table",
		Long: `Print which aria-* attributes each WAI-ARIA role supports, requires or
has deprecated. Abstract roles are listed but may not be used in markup.`,
		Example: `  ariasheet roles
  ariasheet roles --aria-version 1.1 --format markdown`,
		Args: cobra.NoArgs,
		RunE: withOptions(&opts, func(cc *CommandContext, cmd *cobra.Command, _ []string) error {
			resp, err := cc.Container.TableQueryUseCase().Roles(cc.Context, dto.TableRequest{
				Dataset: opts.Dataset(),
				Version: opts.Version(),
			})
			if err != nil {
				return err
			}

			return formatWith(cc, cmd, &opts, func(f ports.OutputFormatter) error {
				return f.FormatRoles(resp)
			})
		}),
	}

	opts.RegisterFlags(cmd)
	return cmd
}
