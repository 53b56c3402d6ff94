package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/shopassist/internal/application"
	"github.com/bnema/shopassist/internal/domain"
	"github.com/spf13/cobra"
)

func newSearchCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := strings.Join(args, " ")

			var result domain.SearchResult
			err := runWithSpinner(cmd.Context(), spinnerOutput(cmd, asJSON), "Searching...", func(ctx context.Context) error {
				var searchErr error
				result, searchErr = app.assistant.Search(ctx, keyword)
				return searchErr
			})
			if err != nil {
				reportConnectivity(cmd, app, err)
				return fmt.Errorf("search: %w", describeError(err))
			}

			if asJSON {
				return writeJSON(cmd, result)
			}

			return writeRendered(cmd, func() (string, error) {
				return app.renderer.search([]application.KeywordResult{{Keyword: strings.TrimSpace(keyword), Result: result}})
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newProductCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "product <sku>",
		Short: "Show product details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var product domain.Product
			err := runWithSpinner(cmd.Context(), spinnerOutput(cmd, asJSON), "Loading product...", func(ctx context.Context) error {
				var productErr error
				product, productErr = app.assistant.Product(ctx, args[0])
				return productErr
			})
			if err != nil {
				reportConnectivity(cmd, app, err)
				return fmt.Errorf("product %s: %w", args[0], describeError(err))
			}

			if asJSON {
				return writeJSON(cmd, product)
			}

			return writeRendered(cmd, func() (string, error) {
				return app.renderer.product(product)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newAskCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ask <message...>",
		Short: "Find products for a free-text shopping request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var answer application.Answer
			err := runWithSpinner(cmd.Context(), spinnerOutput(cmd, asJSON), "Thinking...", func(ctx context.Context) error {
				var askErr error
				answer, askErr = app.assistant.Ask(ctx, strings.Join(args, " "))
				return askErr
			})
			if errors.Is(err, domain.ErrNoKeywords) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "I could not find anything to search for in that message. Try naming a product.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("ask: %w", describeError(err))
			}

			for _, result := range answer.Results {
				if result.Err != nil {
					reportConnectivity(cmd, app, result.Err)
					break
				}
			}

			if asJSON {
				return writeJSON(cmd, newAskOutput(answer))
			}

			return writeRendered(cmd, func() (string, error) {
				return app.renderer.search(answer.Results)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

type keywordOutput struct {
	Keyword  string           `json:"keyword"`
	Products []domain.Product `json:"products"`
	Error    string           `json:"error,omitempty"`
}

type askOutput struct {
	Message  string          `json:"message"`
	Keywords []string        `json:"keywords"`
	Results  []keywordOutput `json:"results"`
}

func newAskOutput(answer application.Answer) askOutput {
	out := askOutput{Message: answer.Message, Keywords: answer.Keywords, Results: []keywordOutput{}}
	for _, result := range answer.Results {
		entry := keywordOutput{Keyword: result.Keyword, Products: result.Result.Products}
		if result.Err != nil {
			entry.Error = result.Err.Error()
		}
		out.Results = append(out.Results, entry)
	}

	return out
}

// reportConnectivity tells the user the store looks unreachable and rechecks
// once after the configured delay.
func reportConnectivity(cmd *cobra.Command, app *app, err error) {
	if !domain.IsConnectivityError(err) {
		return
	}

	out := cmd.ErrOrStderr()
	_, _ = fmt.Fprintln(out, "Connection to the store looks lost, checking again...")
	if app.monitor.CheckAfter(cmd.Context(), app.cfg.Probe.Delay, app.cfg.Probe.Timeout) {
		_, _ = fmt.Fprintln(out, "Connection restored, try again")
		return
	}
	_, _ = fmt.Fprintln(out, "Store still unreachable")
}
