package internal

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// FallbackData for template injection
type FallbackData struct {
	Title   string
	Hashtag string
}

// FallbackManager loads and renders the templated description used when the
// description stage degrades
type FallbackManager struct {
	templateFile   string
	templateString string
	configDir      string
	hashtag        string
}

// NewFallbackManager creates a new fallback template manager
func NewFallbackManager(configDir, templateSetting, hashtag string) *FallbackManager {
	fm := &FallbackManager{
		configDir: configDir,
		hashtag:   hashtag,
	}

	// Configure template based on config setting
	if templateSetting != "" {
		if IsLikelyFilePath(templateSetting) && FileExists(templateSetting) {
			fm.templateFile = templateSetting
		} else {
			fm.templateString = templateSetting
		}
	}

	return fm
}

// Description renders the fallback description for a video title. It never
// fails: a broken template falls back to a hard-coded rendering so the
// description stage always has a payload.
func (fm *FallbackManager) Description(title string) string {
	rendered, err := fm.render(title)
	if err != nil {
		return fmt.Sprintf("🔥 %s\n\n%s", title, fm.hashtag)
	}
	return rendered
}

func (fm *FallbackManager) render(title string) (string, error) {
	var tmplContent string

	if fm.templateString != "" {
		tmplContent = fm.templateString
	} else {
		// Use template file (custom or default from config directory)
		templateFile := fm.templateFile
		if templateFile == "" {
			templateFile = filepath.Join(fm.configDir, "fallback.tmpl")
		}

		content, err := os.ReadFile(templateFile)
		if err != nil {
			return "", fmt.Errorf("reading fallback template: %w", err)
		}
		tmplContent = string(content)
	}

	tmpl, err := template.New("fallback").Parse(tmplContent)
	if err != nil {
		return "", fmt.Errorf("parsing fallback template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, FallbackData{Title: title, Hashtag: fm.hashtag}); err != nil {
		return "", fmt.Errorf("executing fallback template: %w", err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}

// IsLikelyFilePath uses heuristics to determine if a string is likely a file path
func IsLikelyFilePath(s string) bool {
	// Check for common file path indicators
	if strings.Contains(s, "/") || strings.Contains(s, "\\") {
		return true
	}

	// Check for common file extensions
	if strings.Contains(s, ".txt") || strings.Contains(s, ".md") ||
		strings.Contains(s, ".template") || strings.Contains(s, ".tmpl") {
		return true
	}

	// If it's longer than 200 characters, it's likely a template string
	if len(s) > 200 {
		return false
	}

	// Default to treating as file path if it doesn't contain spaces and newlines
	return !strings.Contains(s, " ") && !strings.Contains(s, "\n")
}
