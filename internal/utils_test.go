package internal

import (
	"testing"
)

func TestParseArg(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    string
		wantErr bool
	}{
		{"watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"short URL", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"bare host URL", "https://youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"shorts URL", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"bare ID", "dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"whitespace around ID", "  dQw4w9WgXcQ  ", "dQw4w9WgXcQ", false},
		{"non-YouTube host", "https://vimeo.com/12345", "", true},
		{"too short", "abc", "", true},
		{"garbage", "not a video!", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArg(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseArg(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseArg(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestIsValidYouTubeID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"dQw4w9WgXcQ", true},
		{"abc-def_123", true},
		{"short", false},
		{"twelve-chars", false},
		{"has space 11", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidYouTubeID(tt.id); got != tt.want {
			t.Errorf("IsValidYouTubeID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestIsLikelyCommand(t *testing.T) {
	if !IsLikelyCommand("optimze") {
		t.Error("short non-ID string should look like a mistyped command")
	}
	if IsLikelyCommand("dQw4w9WgXcQ") {
		t.Error("valid video ID should not look like a command")
	}
}
