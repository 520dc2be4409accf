package interfaces

// Article is the result of running the readability algorithm over a page.
type Article struct {
	Title       string
	Content     string
	TextContent string
	Excerpt     string
}

// Readability is the opaque article-extraction capability. Given the
// serialized HTML of a page and its URL, Parse produces an Article or fails.
// A failure means the page has no recognizable article structure; it is not
// fatal to callers that have other content sources.
type Readability interface {
	Parse(htmlSource string, pageURL string) (*Article, error)
}
