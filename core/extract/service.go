// ABOUTME: Service layer implementation for readable-content extraction
// ABOUTME: Turns one captured page into an immutable content snapshot

package extract

import (
	"strings"
	"unicode/utf8"

	"clipper-app-api/core/domain"
	"clipper-app-api/core/errors"
	"clipper-app-api/core/interfaces"
	"clipper-app-api/core/sanitize"

	"github.com/PuerkitoBio/goquery"
)

// maxExcerptRunes bounds the excerpt derived when readability yields none.
const maxExcerptRunes = 200

// Service extracts a ContentSnapshot from a captured page.
type Service struct {
	readability interfaces.Readability
	logger      interfaces.Logger
}

// NewService creates a new extraction service. The readability capability is
// required; the logger may be nil.
func NewService(readability interfaces.Readability, logger interfaces.Logger) *Service {
	return &Service{
		readability: readability,
		logger:      logger,
	}
}

// Extract runs the readability algorithm over the captured page and
// sanitizes the user selection. Success requires either a readable article
// or a non-empty selection; when both are absent the page is unparseable.
// Partially broken pages never crash the caller: a readability failure with
// no selection localizes to an ExtractionError.
func (s *Service) Extract(page domain.PageDocument) (*domain.ContentSnapshot, error) {
	selectionHTML := sanitize.Sanitize(page.SelectionHTML)

	article, err := s.readability.Parse(page.HTML, page.URL)
	if err != nil {
		s.logDebug("readability failed", map[string]interface{}{
			"url":   page.URL,
			"error": err.Error(),
		})
		article = nil
	}

	if article == nil && selectionHTML == "" {
		return nil, &errors.ExtractionError{Reason: errors.ExtractionReasonUnparseable}
	}

	snapshot := &domain.ContentSnapshot{
		Title:         page.Title,
		SelectionHTML: selectionHTML,
		SourceURL:     page.URL,
	}

	if article != nil {
		if article.Title != "" {
			snapshot.Title = article.Title
		}
		snapshot.ContentHTML = article.Content
		snapshot.TextContent = article.TextContent
		snapshot.Excerpt = article.Excerpt
		if snapshot.Excerpt == "" {
			snapshot.Excerpt = deriveExcerpt(article.Content)
		}
	}

	return snapshot, nil
}

// deriveExcerpt returns the first paragraph's text, bounded, for articles
// where readability produced no excerpt of its own.
func deriveExcerpt(contentHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return ""
	}

	var excerpt string
	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return true
		}
		excerpt = text
		return false
	})

	if utf8.RuneCountInString(excerpt) > maxExcerptRunes {
		runes := []rune(excerpt)
		excerpt = strings.TrimSpace(string(runes[:maxExcerptRunes])) + "…"
	}
	return excerpt
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, fields)
	}
}
