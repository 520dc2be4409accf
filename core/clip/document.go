// ABOUTME: Self-contained clip document assembly
// ABOUTME: Pure functions building the uploaded HTML and its filename

// Package clip assembles the document uploaded to the server from a content
// snapshot, an optional user note, and a body-selection flag. Both body
// variants are sanitized upstream; this package only escapes the metadata it
// adds itself.
package clip

import (
	"html"
	"strings"
	"unicode"

	"clipper-app-api/core/domain"
)

const (
	// maxFilenameStem bounds the filename before the extension
	maxFilenameStem = 100

	// placeholderStem is used when a title sanitizes down to nothing
	placeholderStem = "clipped-page"

	noteStyle = "background:#fffbe6;border-left:3px solid #f0c000;padding:8px 12px;margin-bottom:12px;"
)

// Options selects what goes into the assembled document.
type Options struct {
	// UseSelection prefers the captured selection over the full article body
	UseSelection bool

	// Note is an optional user note placed above the content
	Note string

	// TitleOverride replaces the extracted title when non-blank
	TitleOverride string
}

// EffectiveTitle resolves the title used for both the document and its
// filename: the user's override when present, else the extracted title.
func EffectiveTitle(snap *domain.ContentSnapshot, override string) string {
	if t := strings.TrimSpace(override); t != "" {
		return t
	}
	return snap.Title
}

// BuildDocument produces one self-contained HTML document from a snapshot.
// The body is the selection when requested and non-empty, else the full
// extracted content. Built fresh for each attempt; never partially reused.
func BuildDocument(snap *domain.ContentSnapshot, opts Options) string {
	title := html.EscapeString(EffectiveTitle(snap, opts.TitleOverride))

	body := snap.ContentHTML
	if opts.UseSelection && snap.SelectionHTML != "" {
		body = snap.SelectionHTML
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head><title>")
	b.WriteString(title)
	b.WriteString("</title></head>\n<body>\n")

	if note := strings.TrimSpace(opts.Note); note != "" {
		escaped := strings.ReplaceAll(html.EscapeString(note), "\n", "<br>")
		b.WriteString(`<div style="` + noteStyle + `">`)
		b.WriteString(escaped)
		b.WriteString("</div>\n")
	}

	sourceURL := html.EscapeString(snap.SourceURL)
	b.WriteString(`<p><em>Clipped from: <a href="`)
	b.WriteString(sourceURL)
	b.WriteString(`">`)
	b.WriteString(sourceURL)
	b.WriteString("</a></em></p>\n<hr/>\n")

	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// Filename derives the upload filename from a title: characters outside
// ASCII letters, digits, hyphen, underscore, whitespace, and the wider
// Unicode letter range are stripped, the result trimmed and truncated, and a
// fixed placeholder used when nothing survives.
func Filename(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_':
		case unicode.IsSpace(r):
		case r >= 0x00a0 && r <= 0xffff:
		default:
			continue
		}
		b.WriteRune(r)
	}

	stem := strings.TrimSpace(b.String())
	if runes := []rune(stem); len(runes) > maxFilenameStem {
		stem = string(runes[:maxFilenameStem])
	}
	if stem == "" {
		stem = placeholderStem
	}
	return stem + ".html"
}
