// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/moby-ipa/internal/convert"
	"github.com/pdiddy/moby-ipa/internal/dictionary"
	"github.com/pdiddy/moby-ipa/internal/store"
	"github.com/pdiddy/moby-ipa/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the pronunciation store (ingest, lookup, export)",
	Long: `Store keeps converted pronunciation rows in a local SQLite database.
Use subcommands to ingest a Moby file, look up words, or export rows.`,
}

// --- ingest subcommand ---

var storeIngestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Convert a Moby file and index its rows",
	Long: `Ingest converts the Moby pronunciation file and replaces its rows in the
store. A file whose modification time is unchanged since the last ingest
is skipped.`,
	RunE: runStoreIngest,
}

func runStoreIngest(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, map[string]string{
		"input":    "input",
		"encoding": "encoding",
		"strict":   "strict",
	}); err != nil {
		return err
	}
	cfg := types.ConvertConfig{
		Input:    viper.GetString("input"),
		Encoding: viper.GetString("encoding"),
		Strict:   viper.GetBool("strict"),
	}.WithDefaults()

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	info, err := os.Stat(cfg.Input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	rows, _, err := convert.Load(cfg, logger)
	if err != nil {
		return err
	}

	status, err := s.Ingest(context.Background(), cfg.Input, info.ModTime(), rows)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%s %s (%d rows)\n", status, cfg.Input, len(rows))
	return nil
}

// --- lookup subcommand ---

var storeLookupCmd = &cobra.Command{
	Use:   "lookup [word]",
	Short: "Look up pronunciations by word or part of speech",
	RunE:  runStoreLookup,
}

func runStoreLookup(cmd *cobra.Command, args []string) error {
	opts := lookupOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("word or filter required: provide a word or --pos")
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	rows, err := s.Lookup(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Println("No results found.")
		return nil
	}
	for _, r := range rows {
		fmt.Fprintf(os.Stdout, "%-30s  %-30s  %s\n", r.Word, r.IPA, r.PartOfSpeech)
	}
	fmt.Fprintf(os.Stdout, "\n%d results\n", len(rows))
	return nil
}

// --- export subcommand ---

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored rows to csv, YAML, or JSON",
	RunE:  runStoreExport,
}

func runStoreExport(cmd *cobra.Command, args []string) error {
	formatName, _ := cmd.Flags().GetString("format")
	format, err := dictionary.ParseFormat(formatName)
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "data/export." + string(format)
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	n, err := s.Export(context.Background(), output, format, lookupOptsFromFlags(cmd, args))
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d rows to %s\n", n, output)
	return nil
}

// --- shared helpers ---

func openStore(cmd *cobra.Command) (*store.Store, error) {
	if err := bindFlags(cmd, map[string]string{
		"store.db":          "db",
		"store.max_results": "max-results",
	}); err != nil {
		return nil, err
	}
	return store.NewStore(types.StoreConfig{
		DB:         viper.GetString("store.db"),
		MaxResults: viper.GetInt("store.max_results"),
	})
}

func lookupOptsFromFlags(cmd *cobra.Command, args []string) store.LookupOptions {
	pos, _ := cmd.Flags().GetString("pos")
	prefix, _ := cmd.Flags().GetBool("prefix")
	limit, _ := cmd.Flags().GetInt("limit")

	return store.LookupOptions{
		Word:         strings.Join(args, " "),
		Prefix:       prefix,
		PartOfSpeech: pos,
		MaxResults:   limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	storeCmd.PersistentFlags().String("db", types.DefaultDB, "SQLite database path")
	storeCmd.PersistentFlags().Int("max-results", 20, "default maximum number of lookup results")

	storeIngestCmd.Flags().String("input", types.DefaultInput, "Moby pronunciation file")
	storeIngestCmd.Flags().String("encoding", types.DefaultEncoding, "input charset (IANA name)")
	storeIngestCmd.Flags().Bool("strict", false, "abort on the first malformed line")

	for _, c := range []*cobra.Command{storeLookupCmd, storeExportCmd} {
		c.Flags().String("pos", "", "filter by part-of-speech tag")
		c.Flags().Bool("prefix", false, "match the word as a prefix")
	}
	storeLookupCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	storeLookupCmd.Flags().Bool("json", false, "output results as JSON")

	storeExportCmd.Flags().String("format", string(types.FormatCSV), "export format: csv, yaml, or json")
	storeExportCmd.Flags().String("output", "", "export path (default data/export.<format>)")

	storeCmd.AddCommand(storeIngestCmd)
	storeCmd.AddCommand(storeLookupCmd)
	storeCmd.AddCommand(storeExportCmd)

	rootCmd.AddCommand(storeCmd)
}
