package internal

import (
	"reflect"
	"testing"
)

func TestParseTitleCandidates(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      []string
		wantOK    bool
		wantFirst float64
	}{
		{
			name:      "fenced json",
			raw:       "```json\n[{\"title\": \"First title\"}, {\"title\": \"Second title\"}]\n```",
			want:      []string{"First title", "Second title"},
			wantOK:    true,
			wantFirst: 2,
		},
		{
			name:      "bare json",
			raw:       `[{"title": "Only one"}]`,
			want:      []string{"Only one"},
			wantOK:    true,
			wantFirst: 1,
		},
		{
			name:   "extra fences and prose",
			raw:    "Here are your titles:\n```\n[{\"title\": \"Wrapped\"}]\n```\nEnjoy!",
			want:   []string{"Wrapped"},
			wantOK: true,
		},
		{
			name:   "trailing comma",
			raw:    "```json\n[{\"title\": \"A\"},]\n```",
			want:   []string{},
			wantOK: false,
		},
		{
			name:   "plain text",
			raw:    "Sorry, I could not generate titles today.",
			want:   []string{},
			wantOK: false,
		},
		{
			name:   "empty string",
			raw:    "",
			want:   []string{},
			wantOK: false,
		},
		{
			name:   "empty array",
			raw:    "[]",
			want:   []string{},
			wantOK: false,
		},
		{
			name:   "objects without titles",
			raw:    `[{"score": 1}, {"title": "  "}]`,
			want:   []string{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates, ok := ParseTitleCandidates(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseTitleCandidates() ok = %v, want %v", ok, tt.wantOK)
			}
			if candidates == nil {
				t.Fatal("ParseTitleCandidates() returned nil, want empty or populated list")
			}
			got := make([]string, 0, len(candidates))
			for _, c := range candidates {
				got = append(got, c.Title)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTitleCandidates() titles = %v, want %v", got, tt.want)
			}
			if tt.wantFirst > 0 && candidates[0].Score != tt.wantFirst {
				t.Errorf("first candidate score = %v, want %v", candidates[0].Score, tt.wantFirst)
			}
		})
	}
}

func TestParseTitleCandidatesDescendingScores(t *testing.T) {
	candidates, ok := ParseTitleCandidates(`[{"title":"a"},{"title":"b"},{"title":"c"}]`)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Score >= candidates[i-1].Score {
			t.Errorf("scores not descending: %v", candidates)
		}
	}
}

func TestParseMetaTags(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   []string
		wantOK bool
	}{
		{
			name:   "fenced string array",
			raw:    "```json\n[\"go\", \"tutorial\"]\n```",
			want:   []string{"go", "tutorial"},
			wantOK: true,
		},
		{
			name:   "object array",
			raw:    `[{"tag": "go"}, {"tag": "testing"}]`,
			want:   []string{"go", "testing"},
			wantOK: true,
		},
		{
			name:   "whitespace entries dropped",
			raw:    `[" go ", "", "seo"]`,
			want:   []string{"go", "seo"},
			wantOK: true,
		},
		{
			name:   "plain text",
			raw:    "no tags here",
			want:   []string{},
			wantOK: false,
		},
		{
			name:   "malformed json",
			raw:    "```json\n[\"go\",]\n```",
			want:   []string{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags, ok := ParseMetaTags(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseMetaTags() ok = %v, want %v", ok, tt.wantOK)
			}
			if tags == nil {
				t.Fatal("ParseMetaTags() returned nil, want empty or populated list")
			}
			if !reflect.DeepEqual(tags, tt.want) {
				t.Errorf("ParseMetaTags() = %v, want %v", tags, tt.want)
			}
		})
	}
}

func TestUnionTags(t *testing.T) {
	tests := []struct {
		name  string
		lists [][]string
		want  []string
	}{
		{
			name:  "duplicates collapsed",
			lists: [][]string{{"go", "seo"}, {"SEO", "tutorial"}},
			want:  []string{"go", "seo", "tutorial"},
		},
		{
			name:  "first seen order and casing kept",
			lists: [][]string{{"YouTube Growth"}, {"youtube growth", "creator tips"}},
			want:  []string{"YouTube Growth", "creator tips"},
		},
		{
			name:  "empty input",
			lists: [][]string{{}, nil},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnionTags(tt.lists...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UnionTags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n[1]\n```", "[1]"},
		{"bare fence", "```\n[1]\n```", "[1]"},
		{"no fence", "[1]", "[1]"},
		{"whitespace", "  [1]  ", "[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
