package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/palinopr/vidopt/internal"
)

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score [YouTube URL or ID]",
	Short: "Analyze SEO score of the video's current metadata",
	Example: `  # Score the video's live metadata
  vidopt score tAP1eZYEuKA

  # Save score report to file as JSON
  vidopt score tAP1eZYEuKA --json -o report.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := internal.ValidateAPIRequirements(config); err != nil {
			return err
		}

		videoID, err := internal.ParseArg(args[0])
		if err != nil {
			return err
		}

		app := internal.NewApp(config)
		result := app.ScoreStage(cmd.Context(), videoID)

		if result.Status == internal.StageDegraded {
			fmt.Fprintln(os.Stderr, "Warning: SEO analysis unavailable, showing default branding suggestions")
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		var out string
		if asJSON {
			data, err := json.MarshalIndent(result.Payload, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding report: %w", err)
			}
			out = string(data)
		} else {
			out = fmt.Sprintf("SEO score: %.0f\nSuggested tags: %s",
				result.Payload.Score, strings.Join(result.Payload.SuggestedTags, ", "))
		}

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile != "" {
			return os.WriteFile(outputFile, []byte(out), 0644)
		}

		fmt.Println(out)
		return nil
	},
}

func init() {
	internal.AddOutputFlags(scoreCmd)
	rootCmd.AddCommand(scoreCmd)
}
