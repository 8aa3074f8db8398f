package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voxctl/voxctl/internal/output"
	"github.com/voxctl/voxctl/internal/platform"
	"github.com/voxctl/voxctl/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "voxctl",
	Short: "Turn natural-language commands into desktop UI actions",
	Long: `voxctl resolves spoken or written commands ("click the save button,
then press enter") into concrete UI actions: it segments the command into
steps, classifies each step, matches target labels against on-screen
elements, and dispatches clicks, keystrokes, and scrolls.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("config", "", "Resolver scoring file (overrides VOXCTL_SCORING_FILE)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if platform.RequestPermissionsFunc != nil {
			platform.RequestPermissionsFunc()
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}
