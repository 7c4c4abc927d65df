package internal

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MCPServer wraps the MCP server and application dependencies
type MCPServer struct {
	app       *App
	mcpServer *server.MCPServer
}

// NewMCPServer creates a new MCP server instance
func NewMCPServer(app *App) *MCPServer {
	mcpServer := server.NewMCPServer(
		"vidopt-server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s := &MCPServer{
		app:       app,
		mcpServer: mcpServer,
	}

	// Register tools
	s.registerTools()

	return s
}

// registerTools registers all available MCP tools
func (s *MCPServer) registerTools() {
	// optimize_video tool
	s.mcpServer.AddTool(mcp.NewTool("optimize_video",
		mcp.WithDescription("Run the full optimization workflow for a YouTube video: transcript resolution, title suggestions, optimized description, topical tags and SEO score. Always produces a best-effort result even when individual stages fail."),
		mcp.WithString("video_id",
			mcp.Description("YouTube video ID"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("Current video title, used as the topic seed"),
			mcp.Required(),
		),
		mcp.WithString("description",
			mcp.Description("Current video description, used as context"),
		),
	), s.handleOptimize)

	// get_video_transcript tool
	s.mcpServer.AddTool(mcp.NewTool("get_video_transcript",
		mcp.WithDescription("Resolve a video transcript with least cost: local cache first, then free YouTube captions. Reports provenance (youtube_captions or whisper) and whether it came from the cache. Never triggers paid transcription."),
		mcp.WithString("video_id",
			mcp.Description("YouTube video ID"),
			mcp.Required(),
		),
	), s.handleGetTranscript)

	// analyze_seo tool
	s.mcpServer.AddTool(mcp.NewTool("analyze_seo",
		mcp.WithDescription("Score the video's current metadata and suggest tags. Reads live metadata server-side; only needs the video ID."),
		mcp.WithString("video_id",
			mcp.Description("YouTube video ID"),
			mcp.Required(),
		),
	), s.handleAnalyzeSEO)

	// update_video_metadata tool
	s.mcpServer.AddTool(mcp.NewTool("update_video_metadata",
		mcp.WithDescription("Persist edited title, description and tags to the video platform. This writes to the live video - always confirm with the user before calling."),
		mcp.WithString("video_id",
			mcp.Description("YouTube video ID"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("New video title"),
			mcp.Required(),
		),
		mcp.WithString("description",
			mcp.Description("New video description"),
			mcp.Required(),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tag list"),
		),
	), s.handleUpdateMetadata)
}

// handleOptimize implements the optimize_video tool
func (s *MCPServer) handleOptimize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	videoID, err := request.RequireString("video_id")
	if err != nil {
		return mcp.NewToolResultError("video_id parameter is required and must be a string"), nil
	}
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title parameter is required and must be a string"), nil
	}
	description := request.GetString("description", "")

	MCPLogInfo("optimize_video %s", videoID)

	video := VideoRecord{ID: videoID, Title: title, Description: description}
	result := s.app.Optimize(ctx, video, SocialLinks{})

	MCPLogInfo("optimize_video %s complete (titles=%s description=%s tags=%s seo=%s)",
		videoID, result.Titles.Status, result.Description.Status, result.Tags.Status, result.SEO.Status)

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(result.Text())},
	}, nil
}

// handleGetTranscript implements the get_video_transcript tool
func (s *MCPServer) handleGetTranscript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	videoID, err := request.RequireString("video_id")
	if err != nil {
		return mcp.NewToolResultError("video_id parameter is required and must be a string"), nil
	}

	MCPLogInfo("get_video_transcript %s", videoID)

	transcript := s.app.ResolveTranscript(ctx, videoID)
	if transcript == nil {
		return mcp.NewToolResultError("no transcript available - the video has no captions and paid transcription is not triggered by this tool"), nil
	}

	text := fmt.Sprintf("Source: %s\n\n%s", transcript.Describe(), transcript.Text)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(text)},
	}, nil
}

// handleAnalyzeSEO implements the analyze_seo tool
func (s *MCPServer) handleAnalyzeSEO(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	videoID, err := request.RequireString("video_id")
	if err != nil {
		return mcp.NewToolResultError("video_id parameter is required and must be a string"), nil
	}

	MCPLogInfo("analyze_seo %s", videoID)

	report := s.app.scoreSEO(ctx, videoID)

	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("SEO score: %.0f\n", report.Payload.Score))
	if len(report.Payload.SuggestedTags) > 0 {
		buf.WriteString(fmt.Sprintf("Suggested tags: %s\n", strings.Join(report.Payload.SuggestedTags, ", ")))
	}
	if report.Status == StageDegraded {
		buf.WriteString("Note: analysis unavailable, showing default branding suggestions\n")
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(buf.String())},
	}, nil
}

// handleUpdateMetadata implements the update_video_metadata tool
func (s *MCPServer) handleUpdateMetadata(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	videoID, err := request.RequireString("video_id")
	if err != nil {
		return mcp.NewToolResultError("video_id parameter is required and must be a string"), nil
	}
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title parameter is required and must be a string"), nil
	}
	description, err := request.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError("description parameter is required and must be a string"), nil
	}

	var tags []string
	if raw := request.GetString("tags", ""); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	MCPLogInfo("update_video_metadata %s", videoID)

	err = s.app.Save(ctx, UpdateRequest{
		VideoID:     videoID,
		Title:       title,
		Description: description,
		Tags:        tags,
	})
	if err != nil {
		MCPLogError("update_video_metadata %s: %v", videoID, err)
		return mcp.NewToolResultErrorFromErr("failed to save video metadata", err), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent("Video metadata saved")},
	}, nil
}

// Start starts the MCP server using the specified transport
func (s *MCPServer) Start(ctx context.Context, transport string, port int) error {
	if transport == "http" {
		httpServer := server.NewStreamableHTTPServer(s.mcpServer)
		addr := fmt.Sprintf(":%d", port)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return httpServer.Start(addr)
	}

	// Default to stdio transport
	return server.ServeStdio(s.mcpServer)
}

// GetServer returns the underlying MCP server for advanced configuration
func (s *MCPServer) GetServer() *server.MCPServer {
	return s.mcpServer
}
