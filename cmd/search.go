package main

import (
	"checkups/internal/config"
	"checkups/internal/searchui"
	"checkups/pkg/logger"
	"checkups/pkg/searchclient"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type searchFlags struct {
	filter  string
	html    bool
	noColor bool
}

// runSearch drives a searchui.Controller against the server and renders its
// final state to out. Loading transitions are reported on progress.
func runSearch(ctx context.Context, fetcher searchui.Fetcher, query string, flags searchFlags, out, progress io.Writer) error {
	ctrl := searchui.New(fetcher, searchui.WithObserver(func(s searchui.State) {
		if s.Loading {
			_, _ = fmt.Fprintln(progress, "Searching...")
		}
	}))

	if flags.filter != "" {
		if err := ctrl.SetFilter(ctx, flags.filter); err != nil && !errors.Is(err, searchui.ErrUnknownFilter) {
			return err
		}
	} else {
		ctrl.SetQuery(query)
		ctrl.Search(ctx)
	}

	if flags.html {
		return searchui.RenderHTML(out, ctrl.State())
	}

	return searchui.RenderText(out, ctrl.State(), searchui.TextOptions{Color: !flags.noColor})
}

func searchCommand(cfg *config.Config) *cobra.Command {
	var flags searchFlags

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Searches health checkup packages on a running server",
		Example: `  checkups search full body checkup under 3000
  checkups search --filter elderly`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			client, err := searchclient.New(&http.Client{}, searchclient.Options{
				BaseURL: cfg.Client.ServerURL,
				Timeout: cfg.Client.Timeout,
				Token:   cfg.Client.Token,
			})
			if err != nil {
				return fmt.Errorf("could not create search client: %w", err)
			}

			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				flags.noColor = true
			}

			logger.Debug(ctx, "searching", zap.String("server", cfg.Client.ServerURL), zap.String("filter", flags.filter))

			return runSearch(ctx, client, strings.Join(args, " "), flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&flags.filter, "filter", "", "Quick filter: elderly, children, women, basic or comprehensive")
	cmd.Flags().BoolVar(&flags.html, "html", false, "Render the results as an HTML fragment")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	return cmd
}
