package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-payforms/pkg/orchestrator"
	"github.com/goliatone/go-payforms/pkg/render"
	"github.com/goliatone/go-payforms/pkg/transform"
)

var renderFlags struct {
	renderer string
	values   map[string]string
	preset   string
	output   string
	formID   string
	action   string
}

var renderCmd = &cobra.Command{
	Use:   "render <method>",
	Short: "Render a payment-method form as HTML or JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var extra []orchestrator.Option
		if renderFlags.preset != "" {
			preset, err := orchestrator.NewJSONPresetTransformerFromFS(os.DirFS("."), renderFlags.preset)
			if err != nil {
				return err
			}
			extra = append(extra, orchestrator.WithTransformers(preset))
		}

		gen := newOrchestrator(extra...)
		output, err := gen.Generate(cmd.Context(), orchestrator.Request{
			Method:       args[0],
			Values:       transform.ValuesFromStrings(renderFlags.values),
			Renderer:     renderFlags.renderer,
			ThemeName:    cfg.Theme.Name,
			ThemeVariant: cfg.Theme.Variant,
			RenderOptions: render.RenderOptions{
				Locale: cfg.Locale,
				FormID: renderFlags.formID,
				Action: renderFlags.action,
			},
		})
		if err != nil {
			return err
		}

		if renderFlags.output == "" {
			_, err = cmd.OutOrStdout().Write(output)
			return err
		}
		if err := os.WriteFile(renderFlags.output, output, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.Info("form written", "method", args[0], "path", renderFlags.output)
		return nil
	},
}

func init() {
	flags := renderCmd.Flags()
	flags.StringVarP(&renderFlags.renderer, "renderer", "r", "", "Renderer to use (vanilla, json)")
	flags.StringToStringVar(&renderFlags.values, "value", nil, "Initial field value as identifier=value (repeatable)")
	flags.StringVar(&renderFlags.preset, "preset", "", "JSON preset file relative to the working directory")
	flags.StringVarP(&renderFlags.output, "output", "o", "", "Output file (stdout if empty)")
	flags.StringVar(&renderFlags.formID, "form-id", "", "Form element id (random if empty)")
	flags.StringVar(&renderFlags.action, "action", "", "Form action URL")
}
