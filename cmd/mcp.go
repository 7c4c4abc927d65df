package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/palinopr/vidopt/internal"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run MCP server for vidopt",
	Long: `Run a Model Context Protocol (MCP) server that exposes vidopt functionality as tools.

The MCP server provides four tools:
- optimize_video: run the full optimization workflow
- get_video_transcript: resolve a transcript (cache or free captions, never paid)
- analyze_seo: score the video's current metadata
- update_video_metadata: persist edited metadata to the video platform

Transport options:
- stdio (default): Standard MCP transport via stdin/stdout
- http: HTTP transport on specified port (use --port to configure)`,
	Example: `  # Run MCP server with stdio transport
  vidopt mcp

  # Run MCP server with HTTP transport on port 8080
  vidopt mcp --transport=http --port=8080`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// MCP uses stdio protocol, so progress and verbose output must stay off it
		config.Verbose = false
		config.Quiet = true
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		internal.InitMCPLogging(config)

		app := internal.NewApp(config, internal.WithReporter(internal.SilentReporter{}))
		mcpServer := internal.NewMCPServer(app)

		if transport == "http" {
			fmt.Printf("Starting vidopt MCP server on HTTP port %d...\n", port)
		}

		// Start the server (this will block until context is cancelled)
		return mcpServer.Start(cmd.Context(), transport, port)
	},
}

func init() {
	mcpCmd.Flags().String("transport", "stdio", "Transport type: stdio or http")
	mcpCmd.Flags().Int("port", 8080, "Port for HTTP transport")
	rootCmd.AddCommand(mcpCmd)
}
