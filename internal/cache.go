package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TranscriptCache stores one transcript entry per video ID so repeated runs
// never pay for transcript acquisition twice. Entries persist until the user
// clears the data directory; there is no expiry.
type TranscriptCache struct {
	dir     string
	verbose bool
}

// NewTranscriptCache creates a cache rooted at dir
func NewTranscriptCache(dir string, verbose bool) *TranscriptCache {
	return &TranscriptCache{dir: dir, verbose: verbose}
}

func (c *TranscriptCache) entryPath(videoID string) string {
	return filepath.Join(c.dir, videoID+".json")
}

// Get reads the cached entry for a video. A malformed entry is treated as a
// miss and the raw file is purged so the next run starts clean.
func (c *TranscriptCache) Get(videoID string) (*TranscriptEntry, bool) {
	path := c.entryPath(videoID)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry TranscriptEntry
	if err := json.Unmarshal(data, &entry); err != nil || entry.Text == "" || !entry.Source.Valid() {
		if c.verbose {
			fmt.Printf("Purging corrupt transcript cache entry for %s\n", videoID)
		}
		if removeErr := os.Remove(path); removeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove corrupt cache entry %s: %v\n", path, removeErr)
		}
		return nil, false
	}

	return &entry, true
}

// Has reports whether a valid entry exists for a video. The orchestrator checks
// this at run start to enforce the write-once-on-empty policy for paid entries.
func (c *TranscriptCache) Has(videoID string) bool {
	_, ok := c.Get(videoID)
	return ok
}

// Put writes text + provenance + current timestamp, overwriting any prior entry
func (c *TranscriptCache) Put(videoID, text string, source Provenance) error {
	if err := EnsureDirs(c.dir); err != nil {
		return fmt.Errorf("creating transcript cache directory: %w", err)
	}

	entry := TranscriptEntry{
		Text:     text,
		Source:   source,
		CachedAt: time.Now(),
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling transcript entry: %w", err)
	}

	if err := os.WriteFile(c.entryPath(videoID), data, 0644); err != nil {
		return fmt.Errorf("saving transcript entry: %w", err)
	}

	if c.verbose {
		fmt.Printf("Cached transcript for %s (source: %s)\n", videoID, source)
	}
	return nil
}
