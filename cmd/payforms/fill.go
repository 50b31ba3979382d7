package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-payforms/pkg/renderers/tui"
	"github.com/goliatone/go-payforms/pkg/sheet"
)

var fillFlags struct {
	clientSecret   string
	publishableKey string
	format         string
	maxAttempts    int
}

var fillCmd = &cobra.Command{
	Use:   "fill <method>",
	Short: "Fill a payment-method form interactively and print the submission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		component, err := sheet.NewComponent(
			sheet.Application{Name: "payforms", DefaultLocale: cfg.Locale},
			sheet.NewMemoryState(),
			sheet.Args{
				ClientSecret:   fillFlags.clientSecret,
				PublishableKey: fillFlags.publishableKey,
				PaymentMethod:  args[0],
				MerchantName:   cfg.MerchantName,
				Locale:         cfg.Locale,
			},
			sheet.WithLogger(logger),
		)
		if err != nil {
			return err
		}
		vm := component.ViewModel()

		renderer := tui.New(
			tui.WithPromptDriver(tui.NewSurveyDriver(os.Stderr)),
			tui.WithOutputFormat(tui.OutputFormat(fillFlags.format)),
			tui.WithMaxAttempts(fillFlags.maxAttempts),
			tui.WithSubmitTransformer(func(values map[string]string) (map[string]string, error) {
				values["type"] = string(vm.Method())
				return values, nil
			}),
		)

		items := vm.Form()
		payload, err := renderer.Render(cmd.Context(), vm.RenderForm(items), vm.RenderOptions())
		vm.Save(items)
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				logger.Warn("aborted")
			}
			return err
		}
		if _, err := vm.Submission(items); err != nil {
			return fmt.Errorf("submission rejected: %w", err)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
		return err
	},
}

func init() {
	flags := fillCmd.Flags()
	flags.StringVar(&fillFlags.clientSecret, "client-secret", os.Getenv("PAYFORMS_CLIENT_SECRET"), "Client secret of the session (env PAYFORMS_CLIENT_SECRET)")
	flags.StringVar(&fillFlags.publishableKey, "publishable-key", os.Getenv("PAYFORMS_PUBLISHABLE_KEY"), "Publishable key (env PAYFORMS_PUBLISHABLE_KEY)")
	flags.StringVarP(&fillFlags.format, "format", "f", string(tui.OutputFormatJSON), "Output format (json, form, pretty)")
	flags.IntVar(&fillFlags.maxAttempts, "max-attempts", 3, "Re-prompts per field before giving up (0 for no limit)")
}
