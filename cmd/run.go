package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/voxctl/voxctl/internal/output"
	"github.com/voxctl/voxctl/internal/platform"
)

var runCmd = &cobra.Command{
	Use:   "run \"<command>\"",
	Short: "Resolve and execute a natural-language command",
	Long: `Resolve a natural-language command into UI actions and execute them
against the frontmost window.

Examples:
  voxctl run "click the save button"
  voxctl run "type hello in the search box, then press enter"
  voxctl run --app Safari "scroll down scroll down"`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("app", "", "Focus this application before executing")
}

func runRun(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if appName, _ := cmd.Flags().GetString("app"); appName != "" {
		if a.provider.WindowManager == nil {
			return fmt.Errorf("window focus is not available on this platform")
		}
		if err := a.provider.WindowManager.FocusWindow(platform.FocusOptions{App: appName}); err != nil {
			return fmt.Errorf("focus %s: %w", appName, err)
		}
	}

	result, err := a.coord.Run(ctx, args[0])
	if err != nil {
		return err
	}
	return output.Print(result)
}
