package internal

import (
	"encoding/json"
	"strings"
)

// stripFences removes markdown code fences from an AI response.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// extractJSONArray pulls the outermost JSON array out of free-form AI text.
// Models sometimes wrap the payload in prose beyond the fences.
func extractJSONArray(s string) string {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return s[start : end+1]
}

// ParseTitleCandidates extracts title candidates from a raw generation response.
// The boolean reports whether the payload parsed; on failure the candidate list
// is empty rather than nil-with-error because an unparsable response is a
// degraded outcome, not a run-stopping one.
func ParseTitleCandidates(raw string) ([]TitleCandidate, bool) {
	payload := extractJSONArray(stripFences(raw))
	if payload == "" {
		return []TitleCandidate{}, false
	}

	var candidates []TitleCandidate
	if err := json.Unmarshal([]byte(payload), &candidates); err != nil {
		return []TitleCandidate{}, false
	}

	// Drop entries with no title; the server occasionally pads the list.
	kept := candidates[:0]
	for _, c := range candidates {
		if strings.TrimSpace(c.Title) != "" {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return []TitleCandidate{}, false
	}

	// Synthetic descending rank, first candidate highest.
	for i := range kept {
		kept[i].Score = float64(len(kept) - i)
	}
	return kept, true
}

// ParseMetaTags extracts topical tags from a raw extraction response. Accepts
// either a plain string array or a list of {tag} objects; anything else parses
// to an empty list.
func ParseMetaTags(raw string) ([]string, bool) {
	payload := extractJSONArray(stripFences(raw))
	if payload == "" {
		return []string{}, false
	}

	var tags []string
	if err := json.Unmarshal([]byte(payload), &tags); err == nil {
		return cleanTags(tags)
	}

	var objects []struct {
		Tag string `json:"tag"`
	}
	if err := json.Unmarshal([]byte(payload), &objects); err == nil {
		tags = make([]string, 0, len(objects))
		for _, o := range objects {
			tags = append(tags, o.Tag)
		}
		return cleanTags(tags)
	}

	return []string{}, false
}

// cleanTags trims and drops empty entries
func cleanTags(tags []string) ([]string, bool) {
	kept := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return []string{}, false
	}
	return kept, true
}

// UnionTags merges tag lists with set-union semantics, collapsing duplicates
// case-insensitively while preserving first-seen order and casing.
func UnionTags(lists ...[]string) []string {
	seen := make(map[string]bool)
	var merged []string
	for _, list := range lists {
		for _, tag := range list {
			key := strings.ToLower(strings.TrimSpace(tag))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, strings.TrimSpace(tag))
		}
	}
	return merged
}
