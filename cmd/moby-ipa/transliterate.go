// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/moby-ipa/internal/dictionary"
	"github.com/pdiddy/moby-ipa/internal/moby"
	"github.com/pdiddy/moby-ipa/pkg/types"
)

var transliterateCmd = &cobra.Command{
	Use:   "transliterate [moby...]",
	Short: "Transliterate Moby strings to IPA",
	Long: `Transliterate prints the IPA rendering of each Moby-encoded argument,
one per line. With --entry each argument is a full dictionary line
("word/pos/ encoding") and a "word","ipa","pos" record is printed instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTransliterate,
}

func runTransliterate(cmd *cobra.Command, args []string) error {
	entry, _ := cmd.Flags().GetBool("entry")
	tr := moby.NewTransliterator(logger)

	if !entry {
		for _, arg := range args {
			fmt.Fprintln(os.Stdout, tr.Transliterate(arg, arg))
		}
		return nil
	}

	dict, _, err := dictionary.Load(strings.NewReader(strings.Join(args, "\n")),
		dictionary.LoadOptions{Strict: true, Log: logger})
	if err != nil {
		return err
	}
	rows := make([]types.Row, 0, dict.Len())
	for _, e := range dict.Entries() {
		rows = append(rows, tr.Row(e))
	}
	return dictionary.Write(os.Stdout, rows, types.FormatCSV)
}

func init() {
	transliterateCmd.Flags().Bool("entry", false, "treat each argument as a dictionary line")

	rootCmd.AddCommand(transliterateCmd)
}
