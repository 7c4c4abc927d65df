package internal

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// App holds the application state and dependencies
type App struct {
	api      APIClient
	cache    *TranscriptCache
	fallback *FallbackManager
	config   *Config
	ui       UIManager
	reporter StepReporter
}

// NewApp initializes the application
func NewApp(config *Config, options ...AppOption) *App {
	ui := NewUIManager(config.Verbose, config.Quiet)

	app := &App{
		api:      NewClient(config.APIBaseURL, config.APIToken, config.Verbose),
		cache:    NewTranscriptCache(config.TranscriptsDir, config.Verbose),
		fallback: NewFallbackManager(config.ConfigDir, config.FallbackTemplate, config.BrandHashtag),
		config:   config,
		ui:       ui,
	}
	app.reporter = ui.StepReporter()

	// Apply any custom options
	for _, option := range options {
		option(app)
	}

	return app
}

// AppOption customizes App creation
type AppOption func(*App)

// WithAPIClient sets a custom backend API client
func WithAPIClient(api APIClient) AppOption {
	return func(a *App) {
		a.api = api
	}
}

// WithCache sets a custom transcript cache
func WithCache(cache *TranscriptCache) AppOption {
	return func(a *App) {
		a.cache = cache
	}
}

// WithReporter sets a custom progress reporter
func WithReporter(reporter StepReporter) AppOption {
	return func(a *App) {
		a.reporter = reporter
	}
}

// WithUI sets a custom UI manager
func WithUI(ui UIManager) AppOption {
	return func(a *App) {
		a.ui = ui
	}
}

// report forwards a progress event to the configured reporter
func (app *App) report(step Step, detail string) {
	if app.reporter != nil {
		app.reporter.Step(step, detail)
	}
}

// Optimize runs the full optimization workflow for one video: transcript
// resolution first (two stages depend on it), then title, description, tag and
// score stages as independently-timeboxed concurrent tasks. The run always
// composes a best-effort result; no stage failure aborts it. A guard at the top
// catches anything that escapes the per-stage handling and substitutes a
// title-only fallback so the caller is never left without a result.
func (app *App) Optimize(ctx context.Context, video VideoRecord, links SocialLinks) (result *OptimizationResult) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Warning: optimization failed unexpectedly: %v\n", r)
			result = app.fallbackResult(video)
			app.report(StepComplete, "")
		}
	}()

	// Stage ordering: the resolver runs to completion before anything else.
	// Whether the cache already held an entry is checked now, before any stage
	// can write, to enforce the write-once-on-empty policy for paid entries.
	hadCacheEntry := app.cache.Has(video.ID)
	transcript := app.ResolveTranscript(ctx, video.ID)

	result = &OptimizationResult{
		VideoID:    video.ID,
		Transcript: transcript,
	}

	var wg sync.WaitGroup

	app.report(StepGeneratingTitles, "Generating title candidates...")
	wg.Add(1)
	go func() {
		defer wg.Done()
		result.Titles = guardStage([]TitleCandidate{}, func() StageResult[[]TitleCandidate] {
			return app.generateTitles(ctx, video, transcript)
		})
	}()

	app.report(StepGeneratingDescription, "Generating optimized description...")
	wg.Add(1)
	go func() {
		defer wg.Done()
		result.Description = guardStage(app.fallbackDescription(video.Title), func() StageResult[Description] {
			return app.generateDescription(ctx, video, links)
		})
	}()

	if transcript != nil {
		app.report(StepExtractingTags, "Extracting topical tags...")
		wg.Add(1)
		go func() {
			defer wg.Done()
			result.Tags = guardStage([]string{}, func() StageResult[[]string] {
				return app.extractTags(ctx, transcript, video.Title)
			})
		}()
	} else {
		// Precondition not met: the stage never runs and never counts as failed.
		result.Tags = Unavailable[[]string]()
	}

	app.report(StepScoring, "Analyzing SEO score...")
	wg.Add(1)
	go func() {
		defer wg.Done()
		result.SEO = guardStage(SEOReport{
			Score:         app.config.DefaultSEOScore,
			SuggestedTags: append([]string(nil), app.config.DefaultTags...),
		}, func() StageResult[SEOReport] {
			return app.scoreSEO(ctx, video.ID)
		})
	}()

	wg.Wait()

	// The server's reported transcript source is authoritative. If it performed
	// paid transcription and the cache was empty when the run began, record it
	// now; a populated cache is never overwritten by a paid result.
	app.applyServerProvenance(video.ID, hadCacheEntry, result)

	result.SuggestedTags = UnionTags(result.SEO.Payload.SuggestedTags, result.Tags.Payload)
	result.Analyzed = true
	app.report(StepComplete, "")

	return result
}

// guardStage converts a panic inside a stage into a Degraded result carrying
// the stage's fallback payload. Each stage runs on its own goroutine, so the
// recover on Optimize cannot reach it; without this guard a stage panic would
// take down the whole process instead of degrading the run.
func guardStage[T any](fallback T, run func() StageResult[T]) (result StageResult[T]) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Warning: stage failed unexpectedly: %v\n", r)
			result = Degraded(fallback, fmt.Sprintf("stage failed unexpectedly: %v", r))
		}
	}()
	return run()
}

// applyServerProvenance updates the transcript cache and resolved provenance
// from what the description stage reports the server actually used. The cache
// write happens here rather than inside the stage so stages stay free of
// shared-resource side effects.
func (app *App) applyServerProvenance(videoID string, hadCacheEntry bool, result *OptimizationResult) {
	if result.Description.Status != StageSuccess {
		return
	}

	desc := result.Description.Payload
	if desc.TranscriptSource != ProvenanceWhisper || desc.TranscriptText == "" {
		return
	}

	if result.Transcript == nil {
		result.Transcript = &ResolvedTranscript{
			Text:   desc.TranscriptText,
			Source: ProvenanceWhisper,
		}
	}

	if hadCacheEntry {
		return
	}
	if err := app.cache.Put(videoID, desc.TranscriptText, ProvenanceWhisper); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

// fallbackResult builds the composite returned when the top-level guard fires:
// everything derived from the title alone, run still marked complete.
func (app *App) fallbackResult(video VideoRecord) *OptimizationResult {
	reason := "optimization failed unexpectedly"
	return &OptimizationResult{
		VideoID:     video.ID,
		Titles:      Degraded([]TitleCandidate{}, reason),
		Description: Degraded(app.fallbackDescription(video.Title), reason),
		Tags:        Degraded(append([]string(nil), app.config.DefaultTags...), reason),
		SEO: Degraded(SEOReport{
			Score:         app.config.DefaultSEOScore,
			SuggestedTags: append([]string(nil), app.config.DefaultTags...),
		}, reason),
		SuggestedTags: append([]string(nil), app.config.DefaultTags...),
		Analyzed:      true,
		Notice:        "some optimization features failed - using fallback suggestions",
	}
}

// Save persists edited metadata to the underlying video platform
func (app *App) Save(ctx context.Context, req UpdateRequest) error {
	if err := app.api.UpdateMetadata(ctx, req); err != nil {
		return fmt.Errorf("saving video metadata: %w", err)
	}
	return nil
}
