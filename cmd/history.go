package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear recent searches",
	}

	cmd.AddCommand(newHistoryListCmd(app), newHistoryClearCmd(app))

	return cmd
}

func newHistoryListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent searches, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			history := app.history.List(cmd.Context())
			if asJSON {
				return writeJSON(cmd, history)
			}

			if len(history) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No recent searches")
				return nil
			}
			for i, term := range history {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s\n", i+1, term)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newHistoryClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget recent searches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.history.Clear(cmd.Context())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Search history cleared")
			return nil
		},
	}
}
