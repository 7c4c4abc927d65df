package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/palinopr/vidopt/internal"
)

// optimizeCmd represents the optimize command
var optimizeCmd = &cobra.Command{
	Use:   "optimize [YouTube URL or ID]",
	Short: "Run the full optimization workflow for a video",
	Example: `  # Run the full workflow
  vidopt optimize tAP1eZYEuKA --title "My current title"

  # Include social links in the generated description
  vidopt optimize tAP1eZYEuKA --title "My title" --twitter https://x.com/me

  # Save raw result as JSON
  vidopt optimize tAP1eZYEuKA --title "My title" --json -o result.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOptimize(cmd, args[0])
	},
}

// runOptimize executes the workflow shared by the root and optimize commands
func runOptimize(cmd *cobra.Command, arg string) error {
	if err := internal.ValidateAPIRequirements(config); err != nil {
		return err
	}

	videoID, err := internal.ParseArg(arg)
	if err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	video := internal.VideoRecord{
		ID:          videoID,
		Title:       title,
		Description: description,
	}

	app := internal.NewApp(config)
	result := app.Optimize(cmd.Context(), video, internal.SocialLinksFromFlags(cmd))

	return writeResult(cmd, result)
}

// writeResult renders the composite result per the output flags
func writeResult(cmd *cobra.Command, result *internal.OptimizationResult) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	outputFile, _ := cmd.Flags().GetString("output")

	var out string
	switch {
	case asJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		out = string(data)
	case outputFile == "" && isatty.IsTerminal(os.Stdout.Fd()):
		rendered, err := internal.RenderMarkdown(result.Markdown())
		if err != nil {
			// Fall through to plain text when the renderer is unavailable.
			out = result.Text()
		} else {
			out = rendered
		}
	default:
		out = result.Text()
	}

	if outputFile != "" {
		return os.WriteFile(outputFile, []byte(out), 0644)
	}

	fmt.Println(out)
	return nil
}

func init() {
	optimizeCmd.Flags().String("title", "", "Current video title (topic seed for generation)")
	optimizeCmd.Flags().String("description", "", "Current video description (context for generation)")
	internal.AddSocialFlags(optimizeCmd)
	internal.AddOutputFlags(optimizeCmd)
	rootCmd.AddCommand(optimizeCmd)
}
