// ABOUTME: Readability adapter backed by go-shiori's readability port
// ABOUTME: Parses raw page HTML into an article with title, content, and excerpt

package shiori

import (
	"fmt"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"clipper-app-api/core/interfaces"
)

// Parser implements the Readability interface using go-shiori/go-readability
type Parser struct{}

// NewParser creates a new readability parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts the readable article from raw page HTML. The page URL is
// used to resolve relative links inside the content.
func (p *Parser) Parse(htmlSource, pageURL string) (*interfaces.Article, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL: %w", err)
	}

	article, err := readability.FromReader(strings.NewReader(htmlSource), parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse article: %w", err)
	}

	return &interfaces.Article{
		Title:       article.Title,
		Content:     article.Content,
		TextContent: article.TextContent,
		Excerpt:     article.Excerpt,
	}, nil
}
