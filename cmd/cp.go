package cmd

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/palinopr/vidopt/internal"
)

// cpCmd copies an optimized description or a transcript to the system clipboard.
var cpCmd = &cobra.Command{
	Use:   "cp [YouTube URL or ID]",
	Short: "Copy an optimized description or transcript to the clipboard",
	Example: `  # Copy the optimized description
  vidopt cp tAP1eZYEuKA

  # Copy the transcript instead
  vidopt cp tAP1eZYEuKA --transcript`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoID, err := internal.ParseArg(args[0])
		if err != nil {
			return err
		}

		app := internal.NewApp(config)

		var content, what string
		if wantTranscript, _ := cmd.Flags().GetBool("transcript"); wantTranscript {
			transcript := app.ResolveTranscript(cmd.Context(), videoID)
			if transcript == nil {
				return fmt.Errorf("no transcript available for %s", videoID)
			}
			content, what = transcript.Text, "Transcript"
		} else {
			if err := internal.ValidateAPIRequirements(config); err != nil {
				return err
			}
			title, _ := cmd.Flags().GetString("title")
			video := internal.VideoRecord{ID: videoID, Title: title}
			result := app.DescriptionStage(cmd.Context(), video, internal.SocialLinks{})
			content = result.Payload.FullDescription
			if len(result.Payload.Hashtags) > 0 {
				content += "\n\n" + strings.Join(result.Payload.Hashtags, " ")
			}
			what = "Description"
		}

		if err := clipboard.WriteAll(content); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}

		if !config.Quiet {
			fmt.Printf("%s copied to clipboard\n", what)
		}

		return nil
	},
}

func init() {
	cpCmd.Flags().Bool("transcript", false, "Copy the transcript instead of the description")
	cpCmd.Flags().String("title", "", "Current video title (used for the fallback description)")
	rootCmd.AddCommand(cpCmd)
}
