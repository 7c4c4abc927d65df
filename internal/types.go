package internal

import (
	"fmt"
	"time"
)

// Provenance identifies which acquisition method produced a transcript.
type Provenance string

const (
	// ProvenanceCaptions marks a transcript derived from free YouTube captions.
	ProvenanceCaptions Provenance = "youtube_captions"
	// ProvenanceWhisper marks a transcript produced by paid Whisper transcription.
	ProvenanceWhisper Provenance = "whisper"
)

// Valid reports whether p is a known provenance value.
func (p Provenance) Valid() bool {
	return p == ProvenanceCaptions || p == ProvenanceWhisper
}

// TranscriptEntry is the persisted cache record for one video's transcript.
type TranscriptEntry struct {
	Text     string     `json:"text"`
	Source   Provenance `json:"source"`
	CachedAt time.Time  `json:"cached_at"`
}

// ResolvedTranscript is the in-memory result of transcript resolution for one run.
// FromCache is kept separate from Source so downstream cost decisions never have
// to parse a "(cached)" suffix out of the provenance value.
type ResolvedTranscript struct {
	Text      string
	Source    Provenance
	FromCache bool
}

// Describe returns a human-readable provenance label, e.g. "whisper (cached)".
func (r *ResolvedTranscript) Describe() string {
	if r == nil {
		return "none"
	}
	if r.FromCache {
		return fmt.Sprintf("%s (cached)", r.Source)
	}
	return string(r.Source)
}

// VideoRecord identifies the video being optimized. The orchestrator treats it
// as read-only; the content metadata is display-level context owned by the caller.
type VideoRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	ViewCount   int64     `json:"view_count,omitempty"`
	LikeCount   int64     `json:"like_count,omitempty"`
	Comments    int64     `json:"comment_count,omitempty"`
	PublishedAt time.Time `json:"published_at,omitempty"`
}

// SocialLinks is the optional link bundle passed to description generation.
// It is only sent to the API when at least one link is non-empty.
type SocialLinks struct {
	Website   string `json:"website,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Discord   string `json:"discord,omitempty"`
}

// Empty reports whether every link in the bundle is blank.
func (s SocialLinks) Empty() bool {
	return s.Website == "" && s.Twitter == "" && s.Instagram == "" && s.Discord == ""
}

// StageStatus classifies the outcome of one optimization stage.
type StageStatus int

const (
	// StageSuccess means the stage produced its intended payload.
	StageSuccess StageStatus = iota
	// StageDegraded means the stage failed but produced a usable fallback payload.
	StageDegraded
	// StageUnavailable means the stage never ran (precondition not met).
	StageUnavailable
)

// String returns a human-readable representation of the stage status.
func (s StageStatus) String() string {
	switch s {
	case StageSuccess:
		return "success"
	case StageDegraded:
		return "degraded"
	case StageUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// StageResult is the tagged outcome of a single stage. Every stage resolves to
// exactly one of the three states; a stage never leaves the run indeterminate.
type StageResult[T any] struct {
	Status  StageStatus
	Payload T
	Reason  string
}

// Success wraps a payload in a successful stage result.
func Success[T any](payload T) StageResult[T] {
	return StageResult[T]{Status: StageSuccess, Payload: payload}
}

// Degraded wraps a fallback payload with the reason the stage fell back.
func Degraded[T any](fallback T, reason string) StageResult[T] {
	return StageResult[T]{Status: StageDegraded, Payload: fallback, Reason: reason}
}

// Unavailable marks a stage that never ran.
func Unavailable[T any]() StageResult[T] {
	return StageResult[T]{Status: StageUnavailable}
}

// Ran reports whether the stage executed at all.
func (r StageResult[T]) Ran() bool {
	return r.Status != StageUnavailable
}

// TitleCandidate is one AI-generated title suggestion. Score is a synthetic
// descending rank assigned client-side for display ordering, not a model
// confidence value.
type TitleCandidate struct {
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// Description is the zone-structured optimized description for a video.
type Description struct {
	FullDescription string   `json:"full_description"`
	Hook            string   `json:"zone1_hook"`
	Summary         string   `json:"zone2_summary"`
	Chapters        string   `json:"zone3_chapters"`
	Funnel          string   `json:"zone4_funnel"`
	Hashtags        []string `json:"hashtags"`

	// TranscriptSource reports which transcript the server actually used; it is
	// authoritative over the client's own resolution.
	TranscriptSource Provenance `json:"transcript_source,omitempty"`
	TranscriptText   string     `json:"transcript_text,omitempty"`
}

// SEOReport holds the server's scoring of the video's current metadata.
type SEOReport struct {
	Score         float64  `json:"seo_score"`
	SuggestedTags []string `json:"suggested_tags"`
}

// OptimizationResult is the composite outcome of one orchestration run. The run
// always produces one, even when every stage degraded.
type OptimizationResult struct {
	VideoID    string
	Transcript *ResolvedTranscript

	Titles      StageResult[[]TitleCandidate]
	Description StageResult[Description]
	Tags        StageResult[[]string]
	SEO         StageResult[SEOReport]

	// SuggestedTags is the set union of SEO-suggested and transcript-derived tags.
	SuggestedTags []string

	// Analyzed is set once a full pass has completed for this video.
	Analyzed bool

	// Notice carries the advisory message shown when the top-level guard fired.
	Notice string
}
