// ABOUTME: Standard HTTP client implementation with a persistent cookie jar
// ABOUTME: Carries session cookies on every request and rate-limits outbound calls

package standard

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"

	"clipper-app-api/core/interfaces"
)

const (
	userAgent = "ClipperAPI/1.0"

	// Outbound requests target a single server; a small burst covers the
	// login-then-list sequence without letting retries hammer it.
	requestsPerSecond = 5
	burstSize         = 5
)

// StandardHTTPClient implements the HTTPClient interface using the standard
// library with a shared cookie jar. All requests through one client share the
// jar, so a session cookie set by login is carried on every later request.
type StandardHTTPClient struct {
	client  *http.Client
	jar     http.CookieJar
	limiter *rate.Limiter
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
func NewStandardHTTPClient(timeout time.Duration) (*StandardHTTPClient, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}

	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		jar:     jar,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}, nil
}

// PostJSON performs an HTTP POST with a JSON body and the given extra headers.
func (c *StandardHTTPClient) PostJSON(ctx context.Context, url string, headers map[string]string, body []byte) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(ctx, req, headers)
}

// PostMultipart performs an HTTP POST with a multipart/form-data body.
// Fields are encoded strictly in slice order.
func (c *StandardHTTPClient) PostMultipart(ctx context.Context, url string, headers map[string]string, fields []interfaces.FormField) (interfaces.Response, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, field := range fields {
		part, err := createPart(writer, field)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(field.Value); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(ctx, req, headers)
}

// Cookies returns the cookies currently stored for the given origin.
func (c *StandardHTTPClient) Cookies(origin string) []interfaces.Cookie {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return nil
	}

	stored := c.jar.Cookies(u)
	if len(stored) == 0 {
		return nil
	}

	cookies := make([]interfaces.Cookie, 0, len(stored))
	for _, ck := range stored {
		cookies = append(cookies, interfaces.Cookie{Name: ck.Name, Value: ck.Value})
	}
	return cookies
}

func (c *StandardHTTPClient) do(ctx context.Context, req *http.Request, headers map[string]string) (interfaces.Response, error) {
	req.Header.Set("User-Agent", userAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// createPart writes the header for one field. A plain value uses the form
// field encoding; a filename switches to the file encoding with an explicit
// content type.
func createPart(writer *multipart.Writer, field interfaces.FormField) (io.Writer, error) {
	if field.Filename == "" {
		return writer.CreateFormField(field.Name)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		`form-data; name="`+escapeQuotes(field.Name)+`"; filename="`+escapeQuotes(field.Filename)+`"`)
	contentType := field.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	return writer.CreatePart(header)
}

func escapeQuotes(s string) string {
	return strings.NewReplacer("\\", "\\\\", `"`, "\\\"").Replace(s)
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
