// ABOUTME: Space domain model represents one space on the remote server
// ABOUTME: Provides client-side slug derivation matching the server's scheme

package domain

import (
	"regexp"
	"strings"
)

// CreateSpaceSentinel is the selection value that means "create a new space"
// rather than an actual space id.
const CreateSpaceSentinel = "create-new"

// Space represents a space on the remote server. ID is opaque.
type Space struct {
	ID   string
	Name string
	Slug string
}

var slugRuns = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveSlug derives a URL slug from a space name the same way the server
// does: lowercase, runs of non-alphanumerics collapsed to a single hyphen,
// leading and trailing hyphens trimmed. The result must match the slug the
// server assigns or the created space cannot be re-selected from the
// refreshed list.
func DeriveSlug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// FindBySlug returns the first space with the given slug, or nil.
func FindBySlug(spaces []Space, slug string) *Space {
	for i := range spaces {
		if spaces[i].Slug == slug {
			return &spaces[i]
		}
	}
	return nil
}

// FindByID returns the first space with the given id, or nil.
func FindByID(spaces []Space, id string) *Space {
	for i := range spaces {
		if spaces[i].ID == id {
			return &spaces[i]
		}
	}
	return nil
}
