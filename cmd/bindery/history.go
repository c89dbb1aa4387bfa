package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/storyforge/bindery/internal/ledger"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent renders from the history ledger",
	Long: `History lists the most recent render records from the SQLite ledger,
newest first. Records are written by "render --record" or when the ledger is
enabled in the configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")

		store, err := ledger.Open(appConfig().Ledger)
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.List(context.Background(), limit)
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		}

		if len(records) == 0 {
			fmt.Println("no renders recorded")
			return nil
		}

		for _, r := range records {
			status := "ok"
			if !r.Success {
				status = "failed"
			}
			fmt.Printf("%s  %-6s  %-10s  %3d pages  %8d bytes  %s\n",
				r.CreatedAt.Format("2006-01-02 15:04:05"), status, r.Format,
				r.PageCount, r.FileSize, r.OutputPath)
			if r.Error != "" {
				fmt.Printf("    error: %s\n", r.Error)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of records to show")
	historyCmd.Flags().Bool("json", false, "output records as JSON")

	rootCmd.AddCommand(historyCmd)
}
