// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bindery CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/storyforge/bindery/internal/pageformat"
	"github.com/storyforge/bindery/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the bindery CLI.
var rootCmd = &cobra.Command{
	Use:   "bindery",
	Short: "Bind image sequences into fixed-format full-bleed PDFs",
	Long: `bindery converts an ordered image sequence (an optional cover plus story
pages) into a single PDF where each image fully covers a page of a chosen
fixed physical size, cropping at the edges as needed.

Renders are driven by a small manifest (output location, page format name,
image list) supplied as a file, an inline JSON object, or JSON on stdin.
The render result is reported as a structured JSON record on stdout.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bindery.yaml or ~/.config/bindery/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bindery")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bindery"))
		}
	}

	viper.SetDefault("render.jpeg_quality", types.DefaultJPEGQuality)
	viper.SetDefault("render.default_format", pageformat.DefaultName)
	viper.SetDefault("ledger.enabled", false)
	viper.SetDefault("ledger.dir", filepath.Join("output", "ledger"))

	viper.SetEnvPrefix("BINDERY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// appConfig materializes the stage configurations from viper.
func appConfig() types.AppConfig {
	return types.AppConfig{
		Render: types.RenderConfig{
			JPEGQuality:   viper.GetInt("render.jpeg_quality"),
			DefaultFormat: viper.GetString("render.default_format"),
		},
		Ledger: types.LedgerConfig{
			Enabled: viper.GetBool("ledger.enabled"),
			Dir:     viper.GetString("ledger.dir"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
