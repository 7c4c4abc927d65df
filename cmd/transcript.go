package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/palinopr/vidopt/internal"
)

// transcriptCmd represents the transcript command
var transcriptCmd = &cobra.Command{
	Use:   "transcript [YouTube URL or ID]",
	Short: "Resolve a video transcript (cached or free captions)",
	Example: `  # Print the transcript
  vidopt transcript "https://www.youtube.com/watch?v=tAP1eZYEuKA"
  vidopt transcript tAP1eZYEuKA

  # Save transcript to file
  vidopt transcript tAP1eZYEuKA -o transcript.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoID, err := internal.ParseArg(args[0])
		if err != nil {
			return err
		}

		app := internal.NewApp(config)
		transcript := app.ResolveTranscript(cmd.Context(), videoID)
		if transcript == nil {
			return fmt.Errorf("no transcript available for %s", videoID)
		}

		if config.Verbose {
			fmt.Printf("Transcript source: %s\n", transcript.Describe())
		}

		// Handle output flag
		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile != "" {
			return os.WriteFile(outputFile, []byte(transcript.Text), 0644)
		}

		fmt.Println(transcript.Text)
		return nil
	},
}

func init() {
	transcriptCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	rootCmd.AddCommand(transcriptCmd)
}
