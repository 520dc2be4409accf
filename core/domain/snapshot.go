// ABOUTME: Content capture domain models for one activation
// ABOUTME: PageDocument is the raw capture, ContentSnapshot the extracted result

package domain

// PageDocument is the raw capture of a live page as shipped by the in-page
// agent: the serialized DOM, the page title and URL, and the materialized
// contents of the user selection when one exists.
type PageDocument struct {
	URL           string
	Title         string
	HTML          string
	SelectionHTML string
}

// ContentSnapshot is one immutable capture of extracted page content,
// produced once per activation and consumed by the clip action. It is never
// persisted; reopening requires a fresh capture.
type ContentSnapshot struct {
	// Title is the extracted article title, falling back to the page title
	Title string

	// ContentHTML is the readable article body
	ContentHTML string

	// TextContent is the plain-text rendering of the article
	TextContent string

	// Excerpt is a short summary of the article
	Excerpt string

	// SelectionHTML is the sanitized user selection, empty when none existed
	SelectionHTML string

	// SourceURL is the page URL at capture time
	SourceURL string
}
