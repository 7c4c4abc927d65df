package internal

import (
	"context"
	"fmt"
	"os"
)

// ResolveTranscript produces a transcript for an optimization run with least
// cost: cache first, then the free captions endpoint, else nothing. Returning
// nil is a valid terminal state, not an error; two stages downstream know how
// to proceed without a transcript.
func (app *App) ResolveTranscript(ctx context.Context, videoID string) *ResolvedTranscript {
	app.report(StepResolvingTranscript, "Checking transcript cache...")

	if entry, ok := app.cache.Get(videoID); ok {
		app.ui.Verbose("Using cached transcript for %s (source: %s)\n", videoID, entry.Source)
		return &ResolvedTranscript{
			Text:      entry.Text,
			Source:    entry.Source,
			FromCache: true,
		}
	}

	app.report(StepResolvingTranscript, "Fetching YouTube captions...")

	ctx, cancel := context.WithTimeout(ctx, app.config.CaptionTimeout)
	defer cancel()

	text, err := app.api.CaptionTranscript(ctx, videoID)
	if err != nil {
		// Timeout or network failure here is identical to "no captions": the
		// run continues without a transcript rather than aborting.
		app.ui.Verbose("No captions for %s: %v\n", videoID, err)
		return nil
	}

	if err := app.cache.Put(videoID, text, ProvenanceCaptions); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	return &ResolvedTranscript{
		Text:   text,
		Source: ProvenanceCaptions,
	}
}
