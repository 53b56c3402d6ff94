package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var errStoreUnreachable = errors.New("store unreachable")

func newPingCmd(app *app) *cobra.Command {
	var (
		watch    bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check whether the store can be reached",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if watch {
				app.monitor.Watch(cmd.Context(), interval, app.cfg.Probe.Timeout, func(reachable bool) {
					_, _ = fmt.Fprintf(out, "%s %s\n", time.Now().Format(time.TimeOnly), reachability(reachable))
				})
				return nil
			}

			if !app.monitor.Probe(cmd.Context(), app.cfg.Probe.Timeout) {
				return fmt.Errorf("%s: %w", app.cfg.APIURL, errStoreUnreachable)
			}

			_, _ = fmt.Fprintf(out, "%s %s\n", app.cfg.APIURL, reachability(true))
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Keep probing and report changes until interrupted")
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "Probe interval with --watch")

	return cmd
}

func reachability(reachable bool) string {
	if reachable {
		return "reachable"
	}
	return "unreachable"
}
