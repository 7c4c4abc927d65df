package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/palinopr/vidopt/internal"
)

// tagsCmd represents the tags command
var tagsCmd = &cobra.Command{
	Use:   "tags [YouTube URL or ID]",
	Short: "Extract topical tags from a video transcript",
	Example: `  # Extract tags (requires a resolvable transcript)
  vidopt tags tAP1eZYEuKA --title "My current title"`,
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
		app := internal.NewApp(config)
		result := app.TagStage(cmd.Context(), internal.VideoRecord{ID: videoID, Title: title})

		if !result.Ran() {
			return fmt.Errorf("no transcript available for %s - tag extraction needs one", videoID)
		}
		if len(result.Payload) == 0 {
			fmt.Printf("No tag suggestions (%s)\n", result.Status)
			return nil
		}

		fmt.Println(strings.Join(result.Payload, ", "))
		return nil
	},
}

func init() {
	tagsCmd.Flags().String("title", "", "Current video title (context for extraction)")
	rootCmd.AddCommand(tagsCmd)
}
