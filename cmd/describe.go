package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/palinopr/vidopt/internal"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe [YouTube URL or ID]",
	Short: "Generate an optimized zone-structured description",
	Long: `Generate an optimized description for a video.

The backend may perform paid transcription synchronously if no transcript
exists yet for the video, which is why this stage has the longest timeout.
On failure a templated fallback description is produced instead.`,
	Example: `  # Generate an optimized description
  vidopt describe tAP1eZYEuKA --description "current description"

  # Include social links
  vidopt describe tAP1eZYEuKA --website https://example.com

  # Save to file
  vidopt describe tAP1eZYEuKA -o description.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := internal.ValidateAPIRequirements(config); err != nil {
			return err
		}

		videoID, err := internal.ParseArg(args[0])
		if err != nil {
			return err
		}

		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		video := internal.VideoRecord{ID: videoID, Title: title, Description: description}

		app := internal.NewApp(config)
		result := app.DescriptionStage(cmd.Context(), video, internal.SocialLinksFromFlags(cmd))

		if result.Status == internal.StageDegraded {
			fmt.Fprintln(os.Stderr, "Warning: description generation unavailable, showing fallback")
		}

		out := result.Payload.FullDescription
		if len(result.Payload.Hashtags) > 0 {
			out += "\n\n" + strings.Join(result.Payload.Hashtags, " ")
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
	describeCmd.Flags().String("title", "", "Current video title (used for the fallback description)")
	describeCmd.Flags().String("description", "", "Current video description (context for generation)")
	describeCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	internal.AddSocialFlags(describeCmd)
	rootCmd.AddCommand(describeCmd)
}
