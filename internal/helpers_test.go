package internal

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

// fakeAPI implements APIClient with per-endpoint function hooks and call
// counters. Unset hooks return an error so tests only exercise what they wire.
type fakeAPI struct {
	captionFn  func(ctx context.Context, videoID string) (string, error)
	titlesFn   func(ctx context.Context, req TitleRequest) (string, error)
	describeFn func(ctx context.Context, req DescriptionRequest) (*Description, error)
	analyzeFn  func(ctx context.Context, videoID string) (*SEOReport, error)
	tagsFn     func(ctx context.Context, transcript, title string) (string, error)
	updateFn   func(ctx context.Context, req UpdateRequest) error

	captionCalls int
	titleCalls   int
	descCalls    int
	analyzeCalls int
	tagCalls     int
	updateCalls  int
}

var errNotWired = errors.New("endpoint not wired in test")

func (f *fakeAPI) CaptionTranscript(ctx context.Context, videoID string) (string, error) {
	f.captionCalls++
	if f.captionFn == nil {
		return "", errNotWired
	}
	return f.captionFn(ctx, videoID)
}

func (f *fakeAPI) GenerateTitles(ctx context.Context, req TitleRequest) (string, error) {
	f.titleCalls++
	if f.titlesFn == nil {
		return "", errNotWired
	}
	return f.titlesFn(ctx, req)
}

func (f *fakeAPI) GenerateDescription(ctx context.Context, req DescriptionRequest) (*Description, error) {
	f.descCalls++
	if f.describeFn == nil {
		return nil, errNotWired
	}
	return f.describeFn(ctx, req)
}

func (f *fakeAPI) AnalyzeSEO(ctx context.Context, videoID string) (*SEOReport, error) {
	f.analyzeCalls++
	if f.analyzeFn == nil {
		return nil, errNotWired
	}
	return f.analyzeFn(ctx, videoID)
}

func (f *fakeAPI) ExtractMetaTags(ctx context.Context, transcript, title string) (string, error) {
	f.tagCalls++
	if f.tagsFn == nil {
		return "", errNotWired
	}
	return f.tagsFn(ctx, transcript, title)
}

func (f *fakeAPI) UpdateMetadata(ctx context.Context, req UpdateRequest) error {
	f.updateCalls++
	if f.updateFn == nil {
		return errNotWired
	}
	return f.updateFn(ctx, req)
}

// testConfig builds a config with short timeouts rooted in a temp directory
func testConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	return &Config{
		APIBaseURL:         "http://backend.test",
		APIToken:           "test-token",
		CaptionTimeout:     time.Second,
		TitleTimeout:       time.Second,
		DescriptionTimeout: time.Second,
		TagsTimeout:        time.Second,
		ScoreTimeout:       time.Second,
		BrandHashtag:       "#Brand",
		DefaultTags:        []string{"youtube growth", "creator tips"},
		DefaultSEOScore:    50,
		ConfigDir:          dir,
		DataDir:            dir,
		CacheDir:           dir,
		TranscriptsDir:     filepath.Join(dir, "transcripts"),
	}
}

// testApp builds an App wired to a fake API, a temp-dir cache and silent UI
func testApp(t *testing.T, api APIClient) (*App, *TranscriptCache) {
	t.Helper()
	config := testConfig(t)
	cache := NewTranscriptCache(config.TranscriptsDir, false)
	app := NewApp(config,
		WithAPIClient(api),
		WithCache(cache),
		WithUI(NewUIManager(false, true)),
		WithReporter(SilentReporter{}),
	)
	return app, cache
}
