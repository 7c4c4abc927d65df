package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTranscriptCacheRoundTrip(t *testing.T) {
	cache := NewTranscriptCache(t.TempDir(), false)

	if _, ok := cache.Get("abc123xyz00"); ok {
		t.Fatal("expected miss on empty cache")
	}

	if err := cache.Put("abc123xyz00", "hello world", ProvenanceCaptions); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	entry, ok := cache.Get("abc123xyz00")
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if entry.Text != "hello world" {
		t.Errorf("entry.Text = %q, want %q", entry.Text, "hello world")
	}
	if entry.Source != ProvenanceCaptions {
		t.Errorf("entry.Source = %q, want %q", entry.Source, ProvenanceCaptions)
	}
	if entry.CachedAt.IsZero() {
		t.Error("entry.CachedAt not set")
	}
}

func TestTranscriptCacheOverwrite(t *testing.T) {
	cache := NewTranscriptCache(t.TempDir(), false)

	if err := cache.Put("vid00000001", "old", ProvenanceCaptions); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if err := cache.Put("vid00000001", "new", ProvenanceWhisper); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	entry, ok := cache.Get("vid00000001")
	if !ok {
		t.Fatal("expected hit")
	}
	if entry.Text != "new" || entry.Source != ProvenanceWhisper {
		t.Errorf("entry = %+v, want overwritten text and source", entry)
	}
}

func TestTranscriptCacheCorruptEntryPurged(t *testing.T) {
	dir := t.TempDir()
	cache := NewTranscriptCache(dir, false)

	tests := []struct {
		name    string
		content string
	}{
		{"not json", "not json at all"},
		{"empty text", `{"text": "", "source": "youtube_captions"}`},
		{"unknown source", `{"text": "hi", "source": "telepathy"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "corrupt0000"+".json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("writing corrupt entry: %v", err)
			}

			if _, ok := cache.Get("corrupt0000"); ok {
				t.Fatal("expected corrupt entry to be treated as a miss")
			}

			if FileExists(path) {
				t.Error("expected corrupt entry file to be purged")
			}
		})
	}
}

func TestTranscriptCacheHas(t *testing.T) {
	cache := NewTranscriptCache(t.TempDir(), false)

	if cache.Has("someid00000") {
		t.Error("Has() = true on empty cache")
	}

	if err := cache.Put("someid00000", "text", ProvenanceWhisper); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	if !cache.Has("someid00000") {
		t.Error("Has() = false after Put")
	}
}
