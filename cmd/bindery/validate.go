package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/storyforge/bindery/internal/imageload"
	"github.com/storyforge/bindery/internal/manifest"
	"github.com/storyforge/bindery/internal/pageformat"
)

var validateCmd = &cobra.Command{
	Use:   "validate [manifest]",
	Short: "Check a manifest without writing a PDF",
	Long: `Validate parses the manifest, resolves its page format, and probes every
image source, reporting which pages would be skipped during a render.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}

		m, err := manifest.Resolve(arg, os.Stdin)
		if err != nil {
			return err
		}
		if err := manifest.Validate(m); err != nil {
			return err
		}

		name := m.Format
		if name == "" {
			name = appConfig().Render.DefaultFormat
		}
		if name == "" {
			name = pageformat.DefaultName
		}
		dims := pageformat.Dimensions(name)
		if pageformat.Known(name) {
			fmt.Printf("format: %s (%g\" x %g\")\n", name, dims.Width, dims.Height)
		} else {
			fmt.Printf("format: %s unknown, falls back to %s (%g\" x %g\")\n",
				name, pageformat.DefaultName, dims.Width, dims.Height)
		}

		renderable := 0
		total := 0

		if m.CoverImage != "" {
			total++
			if w, h, err := imageload.Probe(m.CoverImage); err != nil {
				fmt.Printf("cover: skip (%v)\n", err)
			} else {
				fmt.Printf("cover: ok (%dx%d)\n", w, h)
				renderable++
			}
		}

		for i, page := range m.Pages {
			total++
			if page.ImagePath == "" {
				fmt.Printf("page %d: skip (no image path)\n", i+1)
				continue
			}
			if w, h, err := imageload.Probe(page.ImagePath); err != nil {
				fmt.Printf("page %d: skip (%v)\n", i+1, err)
			} else {
				fmt.Printf("page %d: ok (%dx%d)\n", i+1, w, h)
				renderable++
			}
		}

		fmt.Printf("\n%d of %d pages renderable\n", renderable, total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
