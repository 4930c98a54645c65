package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/reglet-dev/ariasheet/internal/infrastructure/system"
	"github.com/reglet-dev/ariasheet/internal/infrastructure/watch"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	opts := newBuildOptions()
	var (
		addr     string
		debounce string
		noWatch  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the site, serve it locally and rebuild when the dataset changes",
		Long: `Build the static site into --out, serve it over HTTP and watch index.json
and package.json. Changes are debounced and trigger a rebuild with a fresh
dataset. Stops on SIGINT or SIGTERM.`,
		Example: `  ariasheet serve
  ariasheet serve --addr :9000 --debounce 1s`,
		Args: cobra.NoArgs,
		RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, _ []string) error {
			opts.Apply(cc.Settings)

			ctx, stop := signal.NotifyContext(cc.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rebuild := func(ctx context.Context) error {
				cc.Container.Sheets().Invalidate(opts.Spec)
				resp, err := cc.Container.BuildSiteUseCase().Execute(ctx, opts.request(cc))
				if err != nil {
					return err
				}
				cc.Logger.Info("site rebuilt", "build_id", resp.Manifest.BuildID, "duration", resp.Metadata.Duration)
				return nil
			}
			if err := rebuild(ctx); err != nil {
				return err
			}

			listener, err := net.Listen("tcp", cc.Settings.Serve.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", cc.Settings.Serve.Addr, err)
			}
			server := &http.Server{
				Handler:           http.FileServer(http.Dir(cc.Settings.OutDir)),
				ReadHeaderTimeout: 10 * time.Second,
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "serving %s on http://%s\n", cc.Settings.OutDir, listener.Addr())

			g, gCtx := errgroup.WithContext(ctx)
			g.Go(func() error {
				if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				<-gCtx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			})
			if !noWatch {
				watcher, err := watch.New(datasetFiles(opts.Spec), cc.Settings.Serve.DebounceDuration(), cc.Logger)
				if err != nil {
					stop()
					_ = g.Wait()
					return err
				}
				g.Go(func() error {
					return watcher.Run(gCtx, rebuild)
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}
			cc.Logger.Info("server stopped")
			return nil
		}),
	}

	opts.registerSiteFlags(cmd)
	cmd.Flags().StringVar(&addr, "addr", system.DefaultAddr, "Listen address")
	cmd.Flags().StringVar(&debounce, "debounce", system.DefaultDebounce.String(), "Rebuild debounce interval")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Serve without watching the dataset")
	return cmd
}

// datasetFiles lists the files whose changes trigger a rebuild.
func datasetFiles(spec string) []string {
	return []string{spec, filepath.Join(filepath.Dir(spec), "package.json")}
}
