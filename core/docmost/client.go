// ABOUTME: Stateless API client for a Docmost-compatible server
// ABOUTME: Covers login, space listing and creation, and page import

// Package docmost implements the wire contract of the remote
// document-management server. Every operation carries the ambient session
// cookie and, when the server uses a double-submit CSRF cookie, echoes it
// back in the matching request header. Operations return typed errors:
// AuthError for 401/403, APIError for other non-success responses, and
// NetworkError when no response arrived at all.
package docmost

import (
	"context"
	"encoding/json"
	"io"

	"clipper-app-api/core/domain"
	"clipper-app-api/core/errors"
	"clipper-app-api/core/interfaces"
)

const (
	loginPath       = "/api/auth/login"
	listSpacesPath  = "/api/spaces"
	createSpacePath = "/api/spaces/create"
	importPagePath  = "/api/pages/import"

	// spacesPageLimit bounds one listing request
	spacesPageLimit = 100
)

// csrfCandidates are checked in order; the first cookie found wins.
var csrfCandidates = []struct {
	cookie string
	header string
}{
	{"XSRF-TOKEN", "X-XSRF-TOKEN"},
	{"csrf_token", "X-CSRF-Token"},
	{"_csrf", "X-CSRF-Token"},
}

// Client performs requests against one or more server origins. It holds no
// session state of its own; authentication lives in the HTTP client's
// cookie storage.
type Client struct {
	http   interfaces.HTTPClient
	logger interfaces.Logger
}

// NewClient creates an API client from the dependency container.
func NewClient(deps interfaces.Dependencies) *Client {
	return &Client{
		http:   deps.HTTPClient,
		logger: deps.Logger,
	}
}

// Login authenticates against origin. Success sets the session cookie inside
// the HTTP client's cookie storage; no token is returned or stored.
func (c *Client) Login(ctx context.Context, origin, email, password string) error {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return errors.WrapError(err, "encode login request")
	}

	_, err = c.postJSON(ctx, "login", origin, loginPath, body)
	return err
}

// ListSpaces fetches the spaces visible to the current session. A successful
// call also proves the session is still valid, so callers use it as a probe.
// The response nests the space array at varying depths depending on server
// version; the first recognized shape wins, and an unrecognized shape yields
// an empty list rather than an error.
func (c *Client) ListSpaces(ctx context.Context, origin string) ([]domain.Space, error) {
	body, err := json.Marshal(map[string]int{
		"page":  1,
		"limit": spacesPageLimit,
	})
	if err != nil {
		return nil, errors.WrapError(err, "encode spaces request")
	}

	raw, err := c.postJSON(ctx, "list spaces", origin, listSpacesPath, body)
	if err != nil {
		return nil, err
	}

	spaces := extractSpaces(raw)
	if len(spaces) == 0 {
		c.logDebug("no spaces found in response", map[string]interface{}{
			"origin": origin,
		})
	}
	return spaces, nil
}

// CreateSpace creates a space with the given name and client-derived slug.
func (c *Client) CreateSpace(ctx context.Context, origin, name, slug string) (*domain.Space, error) {
	body, err := json.Marshal(map[string]string{
		"name": name,
		"slug": slug,
	})
	if err != nil {
		return nil, errors.WrapError(err, "encode create space request")
	}

	raw, err := c.postJSON(ctx, "create space", origin, createSpacePath, body)
	if err != nil {
		return nil, err
	}

	space := decodeSpace(raw)
	if space.Name == "" {
		space.Name = name
	}
	if space.Slug == "" {
		space.Slug = slug
	}
	return &space, nil
}

// ImportPage uploads one self-contained HTML document into a space. The
// spaceId field is encoded before the file field for compatibility with
// streaming multipart parsers on the server side.
func (c *Client) ImportPage(ctx context.Context, origin, spaceID, filename string, document []byte) error {
	fields := []interfaces.FormField{
		{Name: "spaceId", Value: []byte(spaceID)},
		{Name: "file", Filename: filename, ContentType: "text/html", Value: document},
	}

	resp, err := c.http.PostMultipart(ctx, origin+importPagePath, c.csrfHeaders(origin), fields)
	if err != nil {
		return &errors.NetworkError{Op: "import page", Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return errors.ClassifyStatus("import page", resp.StatusCode(), readBody(resp))
	}

	c.logDebug("page imported", map[string]interface{}{
		"space_id": spaceID,
		"filename": filename,
		"bytes":    len(document),
	})
	return nil
}

// postJSON issues one JSON POST and returns the response body on success.
func (c *Client) postJSON(ctx context.Context, op, origin, path string, body []byte) ([]byte, error) {
	resp, err := c.http.PostJSON(ctx, origin+path, c.csrfHeaders(origin), body)
	if err != nil {
		return nil, &errors.NetworkError{Op: op, Err: err}
	}
	defer resp.Body().Close()

	raw := readBody(resp)
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, errors.ClassifyStatus(op, resp.StatusCode(), raw)
	}
	return []byte(raw), nil
}

// csrfHeaders builds the double-submit header from the first candidate
// cookie present for origin. No candidate cookie is not an error; the server
// may not use CSRF cookies at all.
func (c *Client) csrfHeaders(origin string) map[string]string {
	cookies := c.http.Cookies(origin)
	if len(cookies) == 0 {
		return nil
	}
	for _, cand := range csrfCandidates {
		for _, ck := range cookies {
			if ck.Name == cand.cookie {
				return map[string]string{cand.header: ck.Value}
			}
		}
	}
	return nil
}

func readBody(resp interfaces.Response) string {
	data, err := io.ReadAll(resp.Body())
	if err != nil {
		return ""
	}
	return string(data)
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}
