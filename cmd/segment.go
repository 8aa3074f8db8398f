package cmd

import (
	"github.com/spf13/cobra"

	"github.com/voxctl/voxctl/internal/output"
)

var segmentCmd = &cobra.Command{
	Use:   "segment \"<command>\"",
	Short: "Split a command into classified steps without executing",
	Long: `Segment a natural-language command into atomic steps and classify
each one, printing the plan instead of executing it. Uses the deterministic
segmenter only; no external services are consulted.

Examples:
  voxctl segment "click the save button and then press enter"
  voxctl segment "escribe, hola, mundo"`,
	Args: cobra.ExactArgs(1),
	RunE: runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)
}

func runSegment(cmd *cobra.Command, args []string) error {
	return output.Print(heuristicSteps(args[0]))
}
