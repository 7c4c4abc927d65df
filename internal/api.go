package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrNoCaptions indicates the captions endpoint had no transcript for the video.
var ErrNoCaptions = errors.New("no captions available")

// APIClient defines the interface for backend API operations
type APIClient interface {
	CaptionTranscript(ctx context.Context, videoID string) (string, error)
	GenerateTitles(ctx context.Context, req TitleRequest) (string, error)
	GenerateDescription(ctx context.Context, req DescriptionRequest) (*Description, error)
	AnalyzeSEO(ctx context.Context, videoID string) (*SEOReport, error)
	ExtractMetaTags(ctx context.Context, transcript, title string) (string, error)
	UpdateMetadata(ctx context.Context, req UpdateRequest) error
}

// TitleRequest is the payload for title generation.
type TitleRequest struct {
	Topic       string   `json:"topic"`
	Celebrities []string `json:"celebrities"`
	Transcript  string   `json:"transcript,omitempty"`
}

// DescriptionRequest is the payload for description generation.
type DescriptionRequest struct {
	VideoID             string       `json:"video_id"`
	SocialLinks         *SocialLinks `json:"social_links,omitempty"`
	OriginalDescription string       `json:"original_description"`
}

// UpdateRequest is the payload for persisting edited metadata.
type UpdateRequest struct {
	VideoID     string   `json:"video_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Client talks HTTP+JSON to the vidopt backend
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	verbose    bool
}

// NewClient creates a new backend API client
func NewClient(baseURL, token string, verbose bool) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
		verbose:    verbose,
	}
}

// do issues one request and decodes the JSON response into out (if non-nil).
// Timeouts are the caller's job: every stage wraps ctx with its own deadline.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	if c.verbose {
		fmt.Printf("API %s %s\n", method, path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// CaptionTranscript fetches the free caption-derived transcript for a video
func (c *Client) CaptionTranscript(ctx context.Context, videoID string) (string, error) {
	var resp struct {
		Status   string `json:"status"`
		FullText string `json:"full_text"`
	}
	path := "/transcripts/get/" + url.PathEscape(videoID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return "", err
	}
	if resp.Status != "success" || resp.FullText == "" {
		return "", ErrNoCaptions
	}
	return resp.FullText, nil
}

// GenerateTitles requests title candidates; the response is an opaque string
// expected to contain a fenced JSON block
func (c *Client) GenerateTitles(ctx context.Context, req TitleRequest) (string, error) {
	if req.Celebrities == nil {
		req.Celebrities = []string{}
	}
	var resp struct {
		GeneratedTitles string `json:"generated_titles"`
	}
	if err := c.do(ctx, http.MethodPost, "/optimize/generate-title", req, &resp); err != nil {
		return "", err
	}
	return resp.GeneratedTitles, nil
}

// GenerateDescription requests the zone-structured description
func (c *Client) GenerateDescription(ctx context.Context, req DescriptionRequest) (*Description, error) {
	var resp struct {
		Success bool `json:"success"`
		Description
	}
	if err := c.do(ctx, http.MethodPost, "/seo/generate-description", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("description generation reported failure")
	}
	return &resp.Description, nil
}

// AnalyzeSEO scores the video's current live metadata server-side
func (c *Client) AnalyzeSEO(ctx context.Context, videoID string) (*SEOReport, error) {
	var resp struct {
		Recommendations SEOReport `json:"recommendations"`
	}
	path := "/seo/analyze/" + url.PathEscape(videoID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Recommendations, nil
}

// ExtractMetaTags requests topical tags for a transcript; the response is an
// opaque string expected to contain a fenced JSON block
func (c *Client) ExtractMetaTags(ctx context.Context, transcript, title string) (string, error) {
	body := struct {
		Transcript string `json:"transcript"`
		Title      string `json:"title"`
	}{Transcript: transcript, Title: title}

	var resp struct {
		MetaTagsResponse string `json:"meta_tags_response"`
	}
	if err := c.do(ctx, http.MethodPost, "/optimize/extract-meta-tags", body, &resp); err != nil {
		return "", err
	}
	return resp.MetaTagsResponse, nil
}

// UpdateMetadata persists edited metadata to the underlying video platform
func (c *Client) UpdateMetadata(ctx context.Context, req UpdateRequest) error {
	if req.Tags == nil {
		req.Tags = []string{}
	}
	return c.do(ctx, http.MethodPost, "/seo/update", req, nil)
}
