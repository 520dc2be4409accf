// ABOUTME: Removal-policy HTML sanitizer for untrusted fragments
// ABOUTME: Strips executable markup from attacker-controlled selection HTML

// Package sanitize strips executable and otherwise dangerous markup from
// arbitrary HTML fragments. It is a removal policy, not an allow list: known
// dangerous elements are removed wholesale, event-handler attributes and
// javascript: URLs are dropped, and everything else survives untouched.
//
// Sanitize is pure and must be safe to call on fully untrusted input pulled
// from a live page's current selection.
package sanitize

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// removedElements are dropped together with their entire subtree.
var removedElements = map[string]bool{
	"script": true,
	"iframe": true,
	"object": true,
	"embed":  true,
	"form":   true,
	"style":  true,
	"meta":   true,
	"link":   true,
}

// Sanitize parses raw as a body fragment, removes dangerous markup, and
// returns the serialized survivors. Malformed input is parsed permissively
// and whatever survives parsing is sanitized; empty input returns empty
// output. Sanitize never fails.
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}

	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(raw), ctx)
	if err != nil {
		// The tokenizer only errors on reader failure, which a string
		// reader cannot produce, but a hostile page must never crash us.
		return ""
	}

	var b strings.Builder
	for _, n := range nodes {
		if n.Type == html.ElementNode && removedElements[strings.ToLower(n.Data)] {
			continue
		}
		clean(n)
		// Render to a strings.Builder cannot fail.
		_ = html.Render(&b, n)
	}
	return b.String()
}

// clean filters n's attributes and prunes banned children, recursively.
func clean(n *html.Node) {
	if n.Type == html.ElementNode {
		n.Attr = filterAttributes(n.Attr)
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode && removedElements[strings.ToLower(c.Data)] {
			n.RemoveChild(c)
		} else {
			clean(c)
		}
		c = next
	}
}

// filterAttributes drops event handlers (any attribute whose name starts
// with "on") and href/src values carrying a javascript: URL.
func filterAttributes(attrs []html.Attribute) []html.Attribute {
	kept := attrs[:0]
	for _, a := range attrs {
		key := strings.ToLower(a.Key)
		if strings.HasPrefix(key, "on") {
			continue
		}
		if (key == "href" || key == "src") && strings.Contains(strings.ToLower(a.Val), "javascript:") {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}
