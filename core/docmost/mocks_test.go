package docmost

import (
	"context"
	"io"
	"strings"

	"clipper-app-api/core/interfaces"
)

// recordedRequest captures one request seen by the mock HTTP client
type recordedRequest struct {
	url     string
	headers map[string]string
	body    []byte
	fields  []interfaces.FormField
}

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	requests []recordedRequest
	cookies  []interfaces.Cookie

	response interfaces.Response
	err      error
}

func (m *mockHTTPClient) PostJSON(ctx context.Context, url string, headers map[string]string, body []byte) (interfaces.Response, error) {
	m.requests = append(m.requests, recordedRequest{url: url, headers: headers, body: body})
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockHTTPClient) PostMultipart(ctx context.Context, url string, headers map[string]string, fields []interfaces.FormField) (interfaces.Response, error) {
	m.requests = append(m.requests, recordedRequest{url: url, headers: headers, fields: fields})
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockHTTPClient) Cookies(origin string) []interfaces.Cookie {
	return m.cookies
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}
