package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_RemovesDangerousElements(t *testing.T) {
	tests := []struct {
		name  string
		input string
		gone  string
	}{
		{"script", `<p>hi</p><script>alert(1)</script>`, "<script"},
		{"script content", `<p>hi</p><script>alert(1)</script>`, "alert"},
		{"iframe", `<iframe src="https://evil.example"></iframe><b>ok</b>`, "<iframe"},
		{"object", `<object data="x"></object>text`, "<object"},
		{"embed", `<embed src="x">text`, "<embed"},
		{"form", `<form action="/steal"><input name="a"></form>rest`, "<form"},
		{"style", `<style>body{display:none}</style><p>x</p>`, "<style"},
		{"nested script", `<div><span><script>alert(1)</script>inner</span></div>`, "script"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			assert.NotContains(t, got, tt.gone)
		})
	}
}

func TestSanitize_StripsEventHandlers(t *testing.T) {
	got := Sanitize(`<img src="x.png" onerror="alert(1)" onload="alert(2)" alt="pic">`)

	assert.NotContains(t, got, "onerror")
	assert.NotContains(t, got, "onload")
	assert.Contains(t, got, `alt="pic"`)
	assert.Contains(t, got, `src="x.png"`)
}

func TestSanitize_StripsEventHandlersCaseInsensitive(t *testing.T) {
	got := Sanitize(`<div ONCLICK="alert(1)" OnMouseOver="x()">text</div>`)

	assert.NotContains(t, strings.ToLower(got), "onclick")
	assert.NotContains(t, strings.ToLower(got), "onmouseover")
	assert.Contains(t, got, "text")
}

func TestSanitize_StripsJavascriptURLs(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"href", `<a href="javascript:alert(1)">click</a>`},
		{"href mixed case", `<a href="JaVaScRiPt:alert(1)">click</a>`},
		{"src", `<img src="javascript:alert(1)">`},
		{"embedded in value", `<a href=" javascript:alert(1)">click</a>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			assert.NotContains(t, strings.ToLower(got), "javascript:")
		})
	}
}

func TestSanitize_KeepsHarmlessLinks(t *testing.T) {
	got := Sanitize(`<a href="https://example.com/page">link</a>`)
	assert.Contains(t, got, `href="https://example.com/page"`)
}

func TestSanitize_EmptyInput(t *testing.T) {
	if got := Sanitize(""); got != "" {
		t.Errorf("Sanitize(\"\") = %q, want empty", got)
	}
}

func TestSanitize_MalformedInput(t *testing.T) {
	tests := []string{
		`<div><p>unclosed`,
		`<<<>>>`,
		`<a href=">broken`,
		`plain text, no markup`,
		`<script>never closed`,
	}

	for _, input := range tests {
		got := Sanitize(input)
		assert.NotContains(t, strings.ToLower(got), "<script")
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		`<p>hello <b>world</b></p>`,
		`<script>alert(1)</script><p onclick="x()">text</p>`,
		`<a href="javascript:alert(1)">x</a><img src="ok.png">`,
		`<div><ul><li>one</li><li>two</li></ul></div>`,
		`text & entities < here`,
		``,
	}

	for _, input := range inputs {
		once := Sanitize(input)
		twice := Sanitize(once)
		assert.Equal(t, once, twice, "sanitize should be idempotent for %q", input)
	}
}

func TestSanitize_PreservesContentStructure(t *testing.T) {
	got := Sanitize(`<h1>Title</h1><p>Body with <em>emphasis</em>.</p>`)

	assert.Contains(t, got, "<h1>Title</h1>")
	assert.Contains(t, got, "<em>emphasis</em>")
}
