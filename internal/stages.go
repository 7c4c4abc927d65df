package internal

import (
	"context"
)

// Each stage below is independently timeboxed and converts every failure into
// a Degraded result carrying a usable fallback payload. Stage errors never
// propagate to the caller.

// generateTitles requests AI title candidates, optionally conditioned on the
// transcript. Parse failure yields an empty candidate list, not an error.
func (app *App) generateTitles(ctx context.Context, video VideoRecord, transcript *ResolvedTranscript) StageResult[[]TitleCandidate] {
	ctx, cancel := context.WithTimeout(ctx, app.config.TitleTimeout)
	defer cancel()

	req := TitleRequest{
		Topic:       video.Title,
		Celebrities: []string{},
	}
	if transcript != nil {
		req.Transcript = transcript.Text
	}

	raw, err := app.api.GenerateTitles(ctx, req)
	if err != nil {
		app.ui.Verbose("Title generation failed: %v\n", err)
		return Degraded([]TitleCandidate{}, err.Error())
	}

	candidates, ok := ParseTitleCandidates(raw)
	if !ok {
		app.ui.Verbose("Title response was not parsable, using empty candidate list\n")
		return Degraded(candidates, "unparsable title response")
	}

	return Success(candidates)
}

// generateDescription requests the zone-structured description. Its timeout is
// materially longer than the other stages because the server may perform paid
// transcription synchronously when the client resolved no transcript.
func (app *App) generateDescription(ctx context.Context, video VideoRecord, links SocialLinks) StageResult[Description] {
	ctx, cancel := context.WithTimeout(ctx, app.config.DescriptionTimeout)
	defer cancel()

	req := DescriptionRequest{
		VideoID:             video.ID,
		OriginalDescription: video.Description,
	}
	if !links.Empty() {
		req.SocialLinks = &links
	}

	desc, err := app.api.GenerateDescription(ctx, req)
	if err != nil {
		app.ui.Verbose("Description generation failed: %v\n", err)
		return Degraded(app.fallbackDescription(video.Title), err.Error())
	}

	return Success(*desc)
}

// fallbackDescription builds the templated description used whenever the
// description stage cannot deliver
func (app *App) fallbackDescription(title string) Description {
	return Description{
		FullDescription: app.fallback.Description(title),
		Hashtags:        []string{app.config.BrandHashtag},
	}
}

// extractTags requests topical tags from the transcript. Callers must gate this
// on transcript presence; passing an empty transcript is a programming error.
func (app *App) extractTags(ctx context.Context, transcript *ResolvedTranscript, title string) StageResult[[]string] {
	ctx, cancel := context.WithTimeout(ctx, app.config.TagsTimeout)
	defer cancel()

	raw, err := app.api.ExtractMetaTags(ctx, transcript.Text, title)
	if err != nil {
		app.ui.Verbose("Tag extraction failed: %v\n", err)
		return Degraded([]string{}, err.Error())
	}

	tags, ok := ParseMetaTags(raw)
	if !ok {
		app.ui.Verbose("Tag response was not parsable, using empty tag list\n")
		return Degraded(tags, "unparsable tag response")
	}

	return Success(tags)
}

// TitleStage resolves the transcript and runs title generation alone.
func (app *App) TitleStage(ctx context.Context, video VideoRecord) StageResult[[]TitleCandidate] {
	transcript := app.ResolveTranscript(ctx, video.ID)
	app.report(StepGeneratingTitles, "Generating title candidates...")
	result := app.generateTitles(ctx, video, transcript)
	app.report(StepComplete, "")
	return result
}

// DescriptionStage runs description generation alone.
func (app *App) DescriptionStage(ctx context.Context, video VideoRecord, links SocialLinks) StageResult[Description] {
	hadCacheEntry := app.cache.Has(video.ID)
	app.report(StepGeneratingDescription, "Generating optimized description...")
	result := app.generateDescription(ctx, video, links)
	app.report(StepComplete, "")

	if result.Status == StageSuccess {
		desc := result.Payload
		if desc.TranscriptSource == ProvenanceWhisper && desc.TranscriptText != "" && !hadCacheEntry {
			if err := app.cache.Put(video.ID, desc.TranscriptText, ProvenanceWhisper); err != nil {
				app.ui.Verbose("Warning: %v\n", err)
			}
		}
	}
	return result
}

// TagStage resolves the transcript and runs tag extraction alone. Without a
// transcript the stage is Unavailable and no request is made.
func (app *App) TagStage(ctx context.Context, video VideoRecord) StageResult[[]string] {
	transcript := app.ResolveTranscript(ctx, video.ID)
	if transcript == nil {
		return Unavailable[[]string]()
	}
	app.report(StepExtractingTags, "Extracting topical tags...")
	result := app.extractTags(ctx, transcript, video.Title)
	app.report(StepComplete, "")
	return result
}

// ScoreStage runs SEO scoring alone.
func (app *App) ScoreStage(ctx context.Context, videoID string) StageResult[SEOReport] {
	app.report(StepScoring, "Analyzing SEO score...")
	result := app.scoreSEO(ctx, videoID)
	app.report(StepComplete, "")
	return result
}

// scoreSEO requests a score for the video's current live metadata. On failure
// the default channel-branding tags and score keep the result renderable.
func (app *App) scoreSEO(ctx context.Context, videoID string) StageResult[SEOReport] {
	ctx, cancel := context.WithTimeout(ctx, app.config.ScoreTimeout)
	defer cancel()

	report, err := app.api.AnalyzeSEO(ctx, videoID)
	if err != nil {
		app.ui.Verbose("SEO analysis failed: %v\n", err)
		return Degraded(SEOReport{
			Score:         app.config.DefaultSEOScore,
			SuggestedTags: append([]string(nil), app.config.DefaultTags...),
		}, err.Error())
	}

	return Success(*report)
}
