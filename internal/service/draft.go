package service

import "strings"

const (
	maxInferredTitleLen = 30
	defaultNoteTitle    = "New Note"
)

// ResolveDraft decides what title/content an editor draft persists as.
// An explicit title wins; otherwise the title is inferred from the first
// line of the content, capped at 30 characters. Content is never altered,
// the inferred first line stays part of it. A draft with nothing usable
// gets the default title; callers treat the fully blank case as a discard
// before ever reaching persistence.
func ResolveDraft(draftTitle, draftContent string) (title, content string) {
	if t := strings.TrimSpace(draftTitle); t != "" {
		return t, draftContent
	}

	return inferTitle(draftContent), draftContent
}

// IsBlankDraft reports whether a draft has neither title nor content
// worth saving.
func IsBlankDraft(draftTitle, draftContent string) bool {
	return strings.TrimSpace(draftTitle) == "" && strings.TrimSpace(draftContent) == ""
}

func inferTitle(content string) string {
	line := content
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)

	if runes := []rune(line); len(runes) > maxInferredTitleLen {
		line = string(runes[:maxInferredTitleLen])
	}

	if line == "" {
		return defaultNoteTitle
	}
	return line
}
