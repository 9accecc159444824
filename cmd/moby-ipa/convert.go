// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/moby-ipa/internal/convert"
	"github.com/pdiddy/moby-ipa/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a Moby pronunciation file to an IPA table",
	Long: `Convert reads the whole Moby pronunciation file, transliterates every
entry to IPA, and writes one "word","ipa","pos" record per entry in input
order. Unknown symbols render as "?" and are reported on stderr.

Malformed lines (no space between word and pronunciation) are skipped with
a warning unless --strict is set, in which case the run aborts.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, map[string]string{
		"input":    "input",
		"output":   "output",
		"encoding": "encoding",
		"format":   "format",
		"strict":   "strict",
	}); err != nil {
		return err
	}

	cfg := types.ConvertConfig{
		Input:    viper.GetString("input"),
		Output:   viper.GetString("output"),
		Encoding: viper.GetString("encoding"),
		Format:   types.OutputFormat(viper.GetString("format")),
		Strict:   viper.GetBool("strict"),
	}

	_, err := convert.Run(cfg, logger, os.Stdout)
	return err
}

func init() {
	convertCmd.Flags().String("input", types.DefaultInput, "Moby pronunciation file")
	convertCmd.Flags().String("output", types.DefaultOutput, "output table path")
	convertCmd.Flags().String("encoding", types.DefaultEncoding, "input charset (IANA name)")
	convertCmd.Flags().String("format", string(types.FormatCSV), "output format: csv, yaml, or json")
	convertCmd.Flags().Bool("strict", false, "abort on the first malformed line")

	rootCmd.AddCommand(convertCmd)
}
