package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/palinopr/vidopt/internal"
)

// titlesCmd represents the titles command
var titlesCmd = &cobra.Command{
	Use:   "titles [YouTube URL or ID]",
	Short: "Generate title candidates for a video",
	Example: `  # Generate title candidates
  vidopt titles tAP1eZYEuKA --title "My current title"`,
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
		result := app.TitleStage(cmd.Context(), internal.VideoRecord{ID: videoID, Title: title})

		if len(result.Payload) == 0 {
			fmt.Printf("No title suggestions (%s)\n", result.Status)
			return nil
		}
		for _, c := range result.Payload {
			fmt.Printf("%d. %s\n", int(c.Score), c.Title)
		}
		return nil
	},
}

func init() {
	titlesCmd.Flags().String("title", "", "Current video title (topic seed for generation)")
	rootCmd.AddCommand(titlesCmd)
}
