package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/palinopr/vidopt/internal"
)

// saveCmd represents the save command
var saveCmd = &cobra.Command{
	Use:   "save [YouTube URL or ID]",
	Short: "Persist edited metadata to the video platform",
	Long: `Persist a title, description and tag list to the underlying video
platform via the backend. This writes to the live video, so it asks for
confirmation unless --yes is given.`,
	Example: `  # Save new metadata
  vidopt save tAP1eZYEuKA --title "New title" --description "New description" --tags "go,tutorial"

  # Skip the confirmation prompt
  vidopt save tAP1eZYEuKA --title "New title" --description "New description" --yes`,
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
		if title == "" && description == "" {
			return fmt.Errorf("nothing to save - provide --title and/or --description")
		}

		var tags []string
		if raw, _ := cmd.Flags().GetString("tags"); raw != "" {
			for _, tag := range strings.Split(raw, ",") {
				if tag = strings.TrimSpace(tag); tag != "" {
					tags = append(tags, tag)
				}
			}
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !internal.AskUser(fmt.Sprintf("Update live metadata for %s?", videoID)) {
			return fmt.Errorf("update declined by user")
		}

		app := internal.NewApp(config)
		err = app.Save(cmd.Context(), internal.UpdateRequest{
			VideoID:     videoID,
			Title:       title,
			Description: description,
			Tags:        tags,
		})
		if err != nil {
			return err
		}

		fmt.Println("Video metadata saved")
		return nil
	},
}

func init() {
	saveCmd.Flags().String("title", "", "New video title")
	saveCmd.Flags().String("description", "", "New video description")
	saveCmd.Flags().String("tags", "", "Comma-separated tag list")
	saveCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(saveCmd)
}
