package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storyforge/bindery/internal/pageformat"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported page formats",
	Long: `Formats prints the named trim sizes a manifest can request, with their
physical dimensions in inches. Manifests naming an unknown format fall back
to the 8x8 default.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range pageformat.Names() {
			dims := pageformat.Dimensions(name)
			marker := ""
			if name == pageformat.DefaultName {
				marker = " (default)"
			}
			fmt.Printf("%-10s %g\" x %g\"%s\n", name, dims.Width, dims.Height, marker)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
