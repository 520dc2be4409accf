package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making requests against the remote
// server. Implementations must carry the ambient session cookie on every
// request (credentialed semantics) and expose the cookies stored for an
// origin so callers can implement double-submit CSRF.
type HTTPClient interface {
	// PostJSON performs an HTTP POST with a JSON body and the given extra
	// headers. A transport failure (no response at all) is returned as an
	// error; any response, success or not, is returned as a Response.
	PostJSON(ctx context.Context, url string, headers map[string]string, body []byte) (Response, error)

	// PostMultipart performs an HTTP POST with a multipart/form-data body.
	// Fields are encoded strictly in slice order.
	PostMultipart(ctx context.Context, url string, headers map[string]string, fields []FormField) (Response, error)

	// Cookies returns the cookies currently stored for the given origin.
	// Returns nil when the origin is malformed or has no cookies.
	Cookies(origin string) []Cookie
}

// Response defines the interface for HTTP responses.
// This abstraction allows different HTTP client implementations to provide
// their own response types while maintaining a consistent interface.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	// Header names are case-insensitive.
	Header(key string) string
}

// Cookie is a name/value pair stored for an origin.
type Cookie struct {
	Name  string
	Value string
}

// FormField is one part of a multipart request. When Filename is empty the
// field is encoded as a plain form value, otherwise as a file part.
type FormField struct {
	Name        string
	Filename    string
	ContentType string
	Value       []byte
}
