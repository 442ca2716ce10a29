package service

import (
	"strings"
	"testing"
)

func TestResolveDraft(t *testing.T) {
	tests := []struct {
		name         string
		draftTitle   string
		draftContent string
		wantTitle    string
	}{
		{
			name:         "explicit title wins",
			draftTitle:   "My Title",
			draftContent: "some content",
			wantTitle:    "My Title",
		},
		{
			name:         "explicit title is trimmed",
			draftTitle:   "  Padded Title  ",
			draftContent: "content",
			wantTitle:    "Padded Title",
		},
		{
			name:         "title inferred from first line",
			draftTitle:   "",
			draftContent: "Hello world\nmore text",
			wantTitle:    "Hello world",
		},
		{
			name:         "single line content",
			draftTitle:   "",
			draftContent: "Buy milk",
			wantTitle:    "Buy milk",
		},
		{
			name:         "blank first line falls back to default",
			draftTitle:   "",
			draftContent: "\nactual text on second line",
			wantTitle:    "New Note",
		},
		{
			name:         "whitespace everywhere falls back to default",
			draftTitle:   "   ",
			draftContent: "",
			wantTitle:    "New Note",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, content := ResolveDraft(tt.draftTitle, tt.draftContent)

			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
			if content != tt.draftContent {
				t.Errorf("content altered: %q, want %q", content, tt.draftContent)
			}
		})
	}
}

func TestResolveDraftTruncation(t *testing.T) {
	content := strings.Repeat("A", 50)

	title, got := ResolveDraft("", content)

	if len(title) != maxInferredTitleLen {
		t.Errorf("title length = %d, want %d", len(title), maxInferredTitleLen)
	}
	if title != content[:maxInferredTitleLen] {
		t.Errorf("title = %q, want prefix of content", title)
	}
	if got != content {
		t.Error("content was truncated along with the title")
	}
}

func TestResolveDraftTruncationIsRuneSafe(t *testing.T) {
	content := strings.Repeat("ä", 40)

	title, _ := ResolveDraft("", content)

	if runes := []rune(title); len(runes) != maxInferredTitleLen {
		t.Errorf("title rune length = %d, want %d", len(runes), maxInferredTitleLen)
	}
	if !strings.HasPrefix(content, title) {
		t.Errorf("truncation split a rune: %q", title)
	}
}

func TestIsBlankDraft(t *testing.T) {
	tests := []struct {
		title   string
		content string
		want    bool
	}{
		{"", "", true},
		{"  ", "\t\n", true},
		{"x", "", false},
		{"", "x", false},
		{" Title ", " content ", false},
	}

	for _, tt := range tests {
		if got := IsBlankDraft(tt.title, tt.content); got != tt.want {
			t.Errorf("IsBlankDraft(%q, %q) = %v, want %v", tt.title, tt.content, got, tt.want)
		}
	}
}
