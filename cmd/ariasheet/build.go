package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	"github.com/reglet-dev/ariasheet/internal/infrastructure/system"
)

// buildOptions are the site flags shared by build and serve.
type buildOptions struct {
	CommonOptions
	OutDir string
}

func (opts *buildOptions) registerSiteFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&opts.Spec, "spec", opts.Spec,
		"Path of the markuplint html-spec index.json")
	cmd.Flags().StringVar(&opts.SpecConstraint, "spec-constraint", "",
		"Semver constraint the dataset version must satisfy")
	cmd.Flags().StringVar(&opts.OutDir, "out", opts.OutDir, "Output directory")
	opts.RegisterFilterFlags(cmd)
}

// request builds the use case input from the resolved options.
func (opts *buildOptions) request(cc *CommandContext) dto.BuildSiteRequest {
	return dto.BuildSiteRequest{
		Dataset: opts.Dataset(),
		OutDir:  cc.Settings.OutDir,
		Filters: opts.Filters(),
		Metadata: dto.RequestMetadata{
			RequestID: uuid.NewString(),
		},
	}
}

func newBuildOptions() *buildOptions {
	return &buildOptions{
		CommonOptions: DefaultCommonOptions(tableFormats),
		OutDir:        system.DefaultOutDir,
	}
}

func newBuildCmd() *cobra.Command {
	opts := newBuildOptions()

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the cheat sheet as a static site",
		Long: `Render the WAI-ARIA 1.2 page (index.html), the WAI-ARIA 1.1 page
(aria-1.1.html), data.json with the full sheet and manifest.json listing
every file with its SHA-256 digest.`,
		Example: `  ariasheet build
  ariasheet build --out public --show-deprecated`,
		Args: cobra.NoArgs,
		RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, _ []string) error {
			opts.Apply(cc.Settings)

			resp, err := cc.Container.BuildSiteUseCase().Execute(cc.Context, opts.request(cc))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "built %d files into %s (build %s, dataset %s) in %s\n",
				len(resp.Manifest.Files)+1, resp.OutDir, resp.Manifest.BuildID,
				resp.Manifest.DatasetVersion, resp.Metadata.Duration.Round(time.Millisecond))
			return err
		}),
	}

	opts.registerSiteFlags(cmd)
	return cmd
}
