package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/storyforge/bindery/internal/ledger"
	"github.com/storyforge/bindery/internal/manifest"
	"github.com/storyforge/bindery/internal/render"
	"github.com/storyforge/bindery/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render [manifest]",
	Short: "Render a manifest into a full-bleed PDF",
	Long: `Render reads a manifest (a file path, an inline JSON object, or JSON on
stdin when the argument is absent or "-"), draws each image full-bleed onto
fixed-size pages, and writes a single PDF.

Progress goes to stderr. The structured result record is printed as one JSON
object on stdout, and the exit status reflects its success flag. Images that
cannot be loaded are skipped with a log line; they never abort the render.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}

		cfg := appConfig()
		if q, _ := cmd.Flags().GetInt("jpeg-quality"); q > 0 {
			cfg.Render.JPEGQuality = q
		}
		if record, _ := cmd.Flags().GetBool("record"); record {
			cfg.Ledger.Enabled = true
		}

		var result types.RenderResult
		var formatName string

		m, err := manifest.Resolve(arg, os.Stdin)
		if err == nil {
			err = manifest.Validate(m)
		}
		if err != nil {
			result = types.Failure(err)
		} else {
			formatName = m.Format
			result = render.Generate(m, cfg.Render, os.Stderr)
		}

		if cfg.Ledger.Enabled {
			if err := recordRender(result, formatName, cfg.Ledger); err != nil {
				fmt.Fprintf(os.Stderr, "warning: ledger write failed: %v\n", err)
			}
		}

		out, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Println(string(out))

		if !result.Success {
			return errors.New(result.Error)
		}
		return nil
	},
}

// recordRender appends one render outcome to the history ledger.
func recordRender(result types.RenderResult, format string, cfg types.LedgerConfig) error {
	store, err := ledger.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Append(context.Background(), result, format)
}

func init() {
	renderCmd.Flags().Int("jpeg-quality", 0, "JPEG quality for re-encoded images (default from config)")
	renderCmd.Flags().Bool("record", false, "record this render in the history ledger")

	rootCmd.AddCommand(renderCmd)
}
