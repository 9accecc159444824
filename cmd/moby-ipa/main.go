// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the moby-ipa CLI, which converts the
// Moby pronunciation dictionary into an IPA table.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/moby-ipa/internal/logging"
	"github.com/pdiddy/moby-ipa/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// envKeyReplacer maps nested keys such as log.level to MOBY_IPA_LOG_LEVEL.
var envKeyReplacer = strings.NewReplacer(".", "_")

// logger receives conversion diagnostics. It is built from the log.* config
// keys before any subcommand runs.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// rootCmd is the base command for the moby-ipa CLI.
var rootCmd = &cobra.Command{
	Use:   "moby-ipa",
	Short: "Convert Moby pronunciation notation to IPA",
	Long: `moby-ipa converts the Moby pronunciation dictionary (mobypron.unc) into a
table of words, IPA transcriptions, and part-of-speech tags.

Use convert for a whole dictionary file, transliterate for single Moby
strings, table to inspect the symbol table, and store to index converted
rows in SQLite for lookups.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd, map[string]string{
			"log.level":  "log-level",
			"log.format": "log-format",
		}); err != nil {
			return err
		}
		logger = logging.New(types.LogConfig{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
		}, os.Stderr)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./moby-ipa.yaml or ~/.config/moby-ipa/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "diagnostic level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "diagnostic format: text or json")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("moby-ipa")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "moby-ipa"))
		}
	}

	viper.SetEnvPrefix("MOBY_IPA")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// bindFlags binds config keys to the named flags of cmd, so that a flag set
// on the command line overrides the config file and environment. Binding
// happens per invocation because several subcommands share key names.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for key, name := range keys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			return fmt.Errorf("flag --%s not defined on %s", name, cmd.Name())
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
