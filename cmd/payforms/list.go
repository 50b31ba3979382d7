package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-payforms/pkg/forms"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the payment methods and their fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		type entry struct {
			Method string   `json:"method"`
			Fields []string `json:"fields"`
		}
		var entries []entry
		for _, method := range cfg.EnabledMethods() {
			e := entry{Method: string(method)}
			for _, leaf := range forms.MustLookup(method).Leaves() {
				e.Fields = append(e.Fields, leaf.Identifier().String())
			}
			entries = append(entries, e)
		}

		if listJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}
		for _, e := range entries {
			fmt.Fprintf(out, "%s\n", e.Method)
			for _, id := range e.Fields {
				fmt.Fprintf(out, "  %s\n", id)
			}
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print JSON")
}
