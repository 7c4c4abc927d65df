package internal

import (
	"context"
	"errors"
	"testing"
)

func TestResolveTranscriptCacheHitSkipsNetwork(t *testing.T) {
	api := &fakeAPI{}
	app, cache := testApp(t, api)

	if err := cache.Put("xyz789aaaaa", "cached transcript", ProvenanceWhisper); err != nil {
		t.Fatalf("seeding cache: %v", err)
	}

	transcript := app.ResolveTranscript(context.Background(), "xyz789aaaaa")
	if transcript == nil {
		t.Fatal("expected transcript from cache")
	}
	if transcript.Text != "cached transcript" {
		t.Errorf("transcript.Text = %q, want %q", transcript.Text, "cached transcript")
	}
	if !transcript.FromCache {
		t.Error("transcript.FromCache = false, want true")
	}
	if got := transcript.Describe(); got != "whisper (cached)" {
		t.Errorf("Describe() = %q, want %q", got, "whisper (cached)")
	}
	if api.captionCalls != 0 {
		t.Errorf("caption endpoint called %d times, want 0", api.captionCalls)
	}
}

func TestResolveTranscriptFetchesAndCachesCaptions(t *testing.T) {
	api := &fakeAPI{
		captionFn: func(ctx context.Context, videoID string) (string, error) {
			return "hello world", nil
		},
	}
	app, cache := testApp(t, api)

	transcript := app.ResolveTranscript(context.Background(), "abc123aaaaa")
	if transcript == nil {
		t.Fatal("expected transcript from captions")
	}
	if transcript.Text != "hello world" {
		t.Errorf("transcript.Text = %q, want %q", transcript.Text, "hello world")
	}
	if transcript.Source != ProvenanceCaptions {
		t.Errorf("transcript.Source = %q, want %q", transcript.Source, ProvenanceCaptions)
	}
	if transcript.FromCache {
		t.Error("transcript.FromCache = true, want false")
	}

	entry, ok := cache.Get("abc123aaaaa")
	if !ok {
		t.Fatal("expected cache entry after captions fetch")
	}
	if entry.Text != "hello world" || entry.Source != ProvenanceCaptions {
		t.Errorf("cached entry = %+v, want hello world/youtube_captions", entry)
	}

	// Second run must not touch the network again.
	transcript = app.ResolveTranscript(context.Background(), "abc123aaaaa")
	if transcript == nil || !transcript.FromCache {
		t.Fatal("expected cached transcript on second run")
	}
	if api.captionCalls != 1 {
		t.Errorf("caption endpoint called %d times, want 1", api.captionCalls)
	}
}

func TestResolveTranscriptFailureIsNotAnError(t *testing.T) {
	api := &fakeAPI{
		captionFn: func(ctx context.Context, videoID string) (string, error) {
			return "", errors.New("network unreachable")
		},
	}
	app, cache := testApp(t, api)

	transcript := app.ResolveTranscript(context.Background(), "noneid00000")
	if transcript != nil {
		t.Errorf("expected nil transcript on captions failure, got %+v", transcript)
	}
	if cache.Has("noneid00000") {
		t.Error("cache must stay empty on captions failure")
	}
}

func TestResolveTranscriptNoCaptions(t *testing.T) {
	api := &fakeAPI{
		captionFn: func(ctx context.Context, videoID string) (string, error) {
			return "", ErrNoCaptions
		},
	}
	app, _ := testApp(t, api)

	if transcript := app.ResolveTranscript(context.Background(), "nocaps00000"); transcript != nil {
		t.Errorf("expected nil transcript when captions are absent, got %+v", transcript)
	}
}

func TestDescribeNilTranscript(t *testing.T) {
	var transcript *ResolvedTranscript
	if got := transcript.Describe(); got != "none" {
		t.Errorf("Describe() = %q, want %q", got, "none")
	}
}
