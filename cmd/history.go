package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voxctl/voxctl/internal/output"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently executed commands",
	Long: `Print the most recent command executions, newest first, with their
per-step outcomes. Requires a configured history backend
(VOXCTL_HISTORY_PATH or VOXCTL_REDIS_ADDR).`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int("limit", 20, "Maximum number of records to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.HistoryPath == "" && cfg.RedisAddr == "" {
		return fmt.Errorf("history is not configured (set VOXCTL_HISTORY_PATH or VOXCTL_REDIS_ADDR)")
	}
	store, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	records, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}
	return output.Print(records)
}
