package commands

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// mapKeys is the stable print order for the text format.
var mapKeys = []string{
	"appName",
	"packageName",
	"version",
	"buildNumber",
	"buildSignature",
	"installerStore",
	"installTime",
}

func (c *CLI) newShowCmd() *cobra.Command {
	var (
		output  string
		baseURL string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Fetch and print the application metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			meta, err := c.accessor.Fetch(cmd.Context(), baseURL)
			if err != nil {
				return err
			}

			view := meta.Map()
			out := cmd.OutOrStdout()

			switch output {
			case "text":
				for _, key := range mapKeys {
					if value, ok := view[key]; ok {
						_, _ = fmt.Fprintf(out, "%s: %s\n", key, value)
					}
				}
			case "json":
				data, err := json.MarshalIndent(view, "", "  ")
				if err != nil {
					return zerr.Wrap(err, "failed to encode metadata as JSON")
				}
				_, _ = fmt.Fprintln(out, string(data))
			case "yaml":
				data, err := yaml.Marshal(view)
				if err != nil {
					return zerr.Wrap(err, "failed to encode metadata as YAML")
				}
				_, _ = fmt.Fprint(out, string(data))
			default:
				return zerr.With(zerr.New("unknown output format, expected 'text', 'json' or 'yaml'"), "output", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json or yaml")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Base URL hint for manifest resolution")

	return cmd
}
