package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/voxctl/voxctl/internal/config"
	"github.com/voxctl/voxctl/internal/match"
	"github.com/voxctl/voxctl/internal/output"
	"github.com/voxctl/voxctl/internal/perception"
	"github.com/voxctl/voxctl/internal/platform"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <label>",
	Short: "Resolve a target label against on-screen candidates",
	Long: `Score a target label against candidate elements and print the winner
with its score and match tier. Candidates come from the live accessibility
tree, or from a YAML/JSON file given with --candidates.

Examples:
  voxctl resolve "save button"
  voxctl resolve --semantic --candidates elements.yaml "Save"
  voxctl resolve --annotate out.png "bottom OK button"`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().String("candidates", "", "YAML/JSON file with candidate elements instead of the live tree")
	resolveCmd.Flags().Bool("semantic", false, "Score with the semantic-trust table instead of the fallback table")
	resolveCmd.Flags().String("screen", "", "Screen size as WxH for directional scoring (e.g. 1440x900)")
	resolveCmd.Flags().String("annotate", "", "Write an annotated screenshot to this PNG file")
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	matchCfg, err := config.LoadScoring(cfg.ScoringPath)
	if err != nil {
		return err
	}

	candidatesFile, _ := cmd.Flags().GetString("candidates")
	semanticTable, _ := cmd.Flags().GetBool("semantic")
	screenSpec, _ := cmd.Flags().GetString("screen")
	annotatePath, _ := cmd.Flags().GetString("annotate")

	var provider *platform.Provider
	var candidates []perception.Candidate
	if candidatesFile != "" {
		candidates, err = loadCandidates(candidatesFile)
	} else {
		provider, err = platform.NewProvider()
		if err != nil {
			return err
		}
		detector := perception.NewAccessibilityDetector(provider.Reader, platform.ReadOptions{VisibleOnly: true})
		candidates, err = detector.Detect(cmd.Context(), perception.Snapshot{})
	}
	if err != nil {
		return err
	}

	screen, err := parseScreen(screenSpec)
	if err != nil {
		return err
	}

	result := match.Resolve(match.Request{
		Label:    args[0],
		Semantic: semanticTable,
		Screen:   screen,
	}, candidates, matchCfg)

	if annotatePath != "" {
		if err := writeAnnotated(provider, candidates, result, annotatePath); err != nil {
			return err
		}
	}
	return output.Print(result)
}

// loadCandidates reads a candidate list from a YAML or JSON file.
func loadCandidates(path string) ([]perception.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read candidates file: %w", err)
	}
	var candidates []perception.Candidate
	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(data, &candidates); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return candidates, nil
	}
	if err := yaml.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return candidates, nil
}

// parseScreen parses "WxH" into a screen size. Empty means no directional
// scoring.
func parseScreen(spec string) ([2]int, error) {
	if spec == "" {
		return [2]int{}, nil
	}
	var w, h int
	if _, err := fmt.Sscanf(spec, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return [2]int{}, fmt.Errorf("invalid screen size %q (expected WxH)", spec)
	}
	return [2]int{w, h}, nil
}

// writeAnnotated captures the screen, draws candidate boxes with the winner
// highlighted, and writes the result as PNG.
func writeAnnotated(provider *platform.Provider, candidates []perception.Candidate, result match.Result, path string) error {
	if provider == nil || provider.Screenshotter == nil {
		return fmt.Errorf("annotation requires a live screen capture backend")
	}
	raw, err := provider.Screenshotter.CaptureWindow(platform.ScreenshotOptions{Format: "png", Scale: 1.0})
	if err != nil {
		return fmt.Errorf("capture screen: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode screenshot: %w", err)
	}

	winner := -1
	if result.Found {
		winner = result.Index
	}
	annotated, err := perception.EncodeAnnotatedPNG(img, candidates, winner)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, annotated, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
