package internal

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AddSocialFlags adds flags for the optional social-link bundle sent to
// description generation
func AddSocialFlags(cmd *cobra.Command) {
	cmd.Flags().String("website", "", "Website link to include in the description")
	cmd.Flags().String("twitter", "", "Twitter/X link to include in the description")
	cmd.Flags().String("instagram", "", "Instagram link to include in the description")
	cmd.Flags().String("discord", "", "Discord link to include in the description")
}

// AddOutputFlags adds flags controlling result output
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output result as JSON")
	cmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}

// SocialLinksFromFlags collects the social-link bundle from command flags
func SocialLinksFromFlags(cmd *cobra.Command) SocialLinks {
	website, _ := cmd.Flags().GetString("website")
	twitter, _ := cmd.Flags().GetString("twitter")
	instagram, _ := cmd.Flags().GetString("instagram")
	discord, _ := cmd.Flags().GetString("discord")
	return SocialLinks{
		Website:   website,
		Twitter:   twitter,
		Instagram: instagram,
		Discord:   discord,
	}
}

// HandleVerboseFlag processes the --verbose flag to update config
func HandleVerboseFlag(cmd *cobra.Command, config *Config) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	config.Verbose = verbose
	return nil
}

// ValidateAPIRequirements validates the backend API token from config
func ValidateAPIRequirements(config *Config) error {
	return ValidateAPIToken(config.APIToken)
}
