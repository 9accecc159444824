// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/moby-ipa/internal/moby"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the Moby-to-IPA symbol table",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		syms := moby.Symbols()

		switch format {
		case "text", "":
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "MOBY\tIPA")
			for _, s := range syms {
				fmt.Fprintf(tw, "%q\t%q\n", s.Moby, s.IPA)
			}
			fmt.Fprintf(tw, "\n%d symbols\n", len(syms))
			return tw.Flush()
		case "yaml":
			data, err := yaml.Marshal(syms)
			if err != nil {
				return fmt.Errorf("marshaling YAML: %w", err)
			}
			_, err = os.Stdout.Write(data)
			return err
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(syms)
		default:
			return fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
		}
	},
}

func init() {
	tableCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(tableCmd)
}
