package internal

import (
	"fmt"
	"strings"
)

// Markdown formats the composite result for terminal rendering.
func (r *OptimizationResult) Markdown() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Optimization results for %s\n\n", r.VideoID))

	if r.Notice != "" {
		sb.WriteString(fmt.Sprintf("> %s\n\n", r.Notice))
	}

	sb.WriteString(fmt.Sprintf("**Transcript:** %s\n\n", r.Transcript.Describe()))

	sb.WriteString("## Title suggestions\n\n")
	if len(r.Titles.Payload) == 0 {
		sb.WriteString(stageNote(r.Titles.Status, "no title suggestions"))
	}
	for _, c := range r.Titles.Payload {
		sb.WriteString(fmt.Sprintf("%d. %s\n", int(c.Score), c.Title))
	}
	sb.WriteString("\n")

	sb.WriteString("## Description\n\n")
	desc := r.Description.Payload
	if desc.FullDescription != "" {
		sb.WriteString(desc.FullDescription)
		sb.WriteString("\n\n")
	}
	if len(desc.Hashtags) > 0 {
		sb.WriteString(strings.Join(desc.Hashtags, " "))
		sb.WriteString("\n\n")
	}
	if r.Description.Status == StageDegraded {
		sb.WriteString("_Fallback description (generation unavailable)._\n\n")
	}

	sb.WriteString("## Tags\n\n")
	if len(r.SuggestedTags) > 0 {
		sb.WriteString(strings.Join(r.SuggestedTags, ", "))
		sb.WriteString("\n\n")
	} else {
		sb.WriteString("no tag suggestions\n\n")
	}

	sb.WriteString(fmt.Sprintf("## SEO score: %.0f\n", r.SEO.Payload.Score))
	if r.SEO.Status == StageDegraded {
		sb.WriteString("\n_Default score (analysis unavailable)._\n")
	}

	return sb.String()
}

// Text formats the composite result as plain text for non-TTY output and MCP.
func (r *OptimizationResult) Text() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Video: %s\n", r.VideoID))
	sb.WriteString(fmt.Sprintf("Transcript: %s\n", r.Transcript.Describe()))
	if r.Notice != "" {
		sb.WriteString(fmt.Sprintf("Notice: %s\n", r.Notice))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Titles (%s):\n", r.Titles.Status))
	for _, c := range r.Titles.Payload {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", int(c.Score), c.Title))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Description (%s):\n", r.Description.Status))
	if r.Description.Payload.FullDescription != "" {
		sb.WriteString(r.Description.Payload.FullDescription)
		sb.WriteString("\n")
	}
	if len(r.Description.Payload.Hashtags) > 0 {
		sb.WriteString(strings.Join(r.Description.Payload.Hashtags, " "))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Tags (%s): %s\n", r.Tags.Status, strings.Join(r.SuggestedTags, ", ")))
	sb.WriteString(fmt.Sprintf("SEO score (%s): %.0f\n", r.SEO.Status, r.SEO.Payload.Score))

	return sb.String()
}

func stageNote(status StageStatus, message string) string {
	if status == StageDegraded {
		return fmt.Sprintf("_%s (stage degraded)._\n", message)
	}
	return fmt.Sprintf("_%s._\n", message)
}
