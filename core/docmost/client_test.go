package docmost

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	coreerrors "clipper-app-api/core/errors"
	"clipper-app-api/core/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const origin = "https://docs.example.com"

func newTestClient(http *mockHTTPClient) *Client {
	return NewClient(interfaces.Dependencies{HTTPClient: http})
}

func TestLogin_SendsCredentials(t *testing.T) {
	http := &mockHTTPClient{response: &mockResponse{statusCode: 200, body: "{}"}}
	client := newTestClient(http)

	err := client.Login(context.Background(), origin, "a@b.c", "secret")

	require.NoError(t, err)
	require.Len(t, http.requests, 1)
	assert.Equal(t, origin+"/api/auth/login", http.requests[0].url)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(http.requests[0].body, &payload))
	assert.Equal(t, "a@b.c", payload["email"])
	assert.Equal(t, "secret", payload["password"])
}

func TestLogin_NonSuccessClassified(t *testing.T) {
	tests := []struct {
		status   int
		wantAuth bool
	}{
		{401, true},
		{403, true},
		{400, false},
		{500, false},
	}

	for _, tt := range tests {
		http := &mockHTTPClient{response: &mockResponse{statusCode: tt.status, body: "denied"}}
		client := newTestClient(http)

		err := client.Login(context.Background(), origin, "a@b.c", "bad")

		require.Error(t, err)
		assert.Equal(t, tt.wantAuth, coreerrors.IsAuth(err), "status %d", tt.status)
		assert.Contains(t, err.Error(), "denied", "body text must surface in the error")
	}
}

func TestLogin_TransportFailureIsNetworkError(t *testing.T) {
	http := &mockHTTPClient{err: errors.New("connection refused")}
	client := newTestClient(http)

	err := client.Login(context.Background(), origin, "a@b.c", "x")

	assert.True(t, coreerrors.IsNetwork(err))
}

func TestListSpaces_RequestShape(t *testing.T) {
	http := &mockHTTPClient{response: &mockResponse{statusCode: 200, body: "[]"}}
	client := newTestClient(http)

	_, err := client.ListSpaces(context.Background(), origin)

	require.NoError(t, err)
	require.Len(t, http.requests, 1)
	assert.Equal(t, origin+"/api/spaces", http.requests[0].url)

	var payload map[string]int
	require.NoError(t, json.Unmarshal(http.requests[0].body, &payload))
	assert.Equal(t, 1, payload["page"])
	assert.Equal(t, 100, payload["limit"])
}

func TestListSpaces_ResponseShapeTolerance(t *testing.T) {
	spaceJSON := `{"id": "s1", "name": "General", "slug": "general"}`

	tests := []struct {
		name string
		body string
		want int
	}{
		{"top-level array", `[` + spaceJSON + `]`, 1},
		{"under data", `{"data": [` + spaceJSON + `]}`, 1},
		{"under data.data", `{"data": {"data": [` + spaceJSON + `]}}`, 1},
		{"under data.items", `{"data": {"items": [` + spaceJSON + `]}}`, 1},
		{"unrecognized shape", `{"spaces": [` + spaceJSON + `]}`, 0},
		{"data is scalar", `{"data": 42}`, 0},
		{"empty object", `{}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			http := &mockHTTPClient{response: &mockResponse{statusCode: 200, body: tt.body}}
			client := newTestClient(http)

			spaces, err := client.ListSpaces(context.Background(), origin)

			require.NoError(t, err, "unrecognized shapes degrade to empty, not error")
			assert.Len(t, spaces, tt.want)
			if tt.want == 1 {
				assert.Equal(t, "s1", spaces[0].ID)
				assert.Equal(t, "General", spaces[0].Name)
				assert.Equal(t, "general", spaces[0].Slug)
			}
		})
	}
}

func TestListSpaces_NameFallsBackToTitleThenSlug(t *testing.T) {
	body := `[
		{"id": "1", "title": "Titled", "slug": "titled"},
		{"id": "2", "slug": "slug-only"}
	]`
	http := &mockHTTPClient{response: &mockResponse{statusCode: 200, body: body}}
	client := newTestClient(http)

	spaces, err := client.ListSpaces(context.Background(), origin)

	require.NoError(t, err)
	require.Len(t, spaces, 2)
	assert.Equal(t, "Titled", spaces[0].Name)
	assert.Equal(t, "slug-only", spaces[1].Name)
}

func TestListSpaces_SessionInvalid(t *testing.T) {
	http := &mockHTTPClient{response: &mockResponse{statusCode: 401, body: "expired"}}
	client := newTestClient(http)

	_, err := client.ListSpaces(context.Background(), origin)

	assert.True(t, coreerrors.IsAuth(err))
}

func TestCreateSpace_DecodesWrappedAndBare(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"wrapped", `{"data": {"id": "n1", "name": "New", "slug": "new"}}`},
		{"bare", `{"id": "n1", "name": "New", "slug": "new"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			http := &mockHTTPClient{response: &mockResponse{statusCode: 200, body: tt.body}}
			client := newTestClient(http)

			space, err := client.CreateSpace(context.Background(), origin, "New", "new")

			require.NoError(t, err)
			assert.Equal(t, "n1", space.ID)
			assert.Equal(t, "new", space.Slug)
		})
	}
}

func TestCreateSpace_FillsRequestedFieldsWhenResponseIsThin(t *testing.T) {
	http := &mockHTTPClient{response: &mockResponse{statusCode: 200, body: `{"id": "n2"}`}}
	client := newTestClient(http)

	space, err := client.CreateSpace(context.Background(), origin, "My Space", "my-space")

	require.NoError(t, err)
	assert.Equal(t, "n2", space.ID)
	assert.Equal(t, "My Space", space.Name)
	assert.Equal(t, "my-space", space.Slug)
}

func TestImportPage_FieldOrder(t *testing.T) {
	http := &mockHTTPClient{response: &mockResponse{statusCode: 200, body: "{}"}}
	client := newTestClient(http)

	err := client.ImportPage(context.Background(), origin, "s1", "page.html", []byte("<html></html>"))

	require.NoError(t, err)
	require.Len(t, http.requests, 1)
	fields := http.requests[0].fields
	require.Len(t, fields, 2)
	assert.Equal(t, "spaceId", fields[0].Name, "spaceId must be encoded before the file")
	assert.Equal(t, "s1", string(fields[0].Value))
	assert.Equal(t, "file", fields[1].Name)
	assert.Equal(t, "page.html", fields[1].Filename)
	assert.Equal(t, "text/html", fields[1].ContentType)
}

func TestImportPage_Failures(t *testing.T) {
	http := &mockHTTPClient{response: &mockResponse{statusCode: 500, body: "boom"}}
	client := newTestClient(http)

	err := client.ImportPage(context.Background(), origin, "s1", "p.html", []byte("x"))

	assert.True(t, coreerrors.IsAPI(err))
	assert.Contains(t, err.Error(), "boom")
}

func TestCSRFHeader_CandidateOrder(t *testing.T) {
	tests := []struct {
		name       string
		cookies    []interfaces.Cookie
		wantHeader string
		wantValue  string
	}{
		{
			name:       "xsrf token preferred",
			cookies:    []interfaces.Cookie{{Name: "_csrf", Value: "low"}, {Name: "XSRF-TOKEN", Value: "high"}},
			wantHeader: "X-XSRF-TOKEN",
			wantValue:  "high",
		},
		{
			name:       "csrf_token maps to X-CSRF-Token",
			cookies:    []interfaces.Cookie{{Name: "csrf_token", Value: "v"}},
			wantHeader: "X-CSRF-Token",
			wantValue:  "v",
		},
		{
			name:       "_csrf maps to X-CSRF-Token",
			cookies:    []interfaces.Cookie{{Name: "_csrf", Value: "u"}},
			wantHeader: "X-CSRF-Token",
			wantValue:  "u",
		},
		{
			name:    "no candidate cookie sends no header",
			cookies: []interfaces.Cookie{{Name: "session", Value: "s"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			http := &mockHTTPClient{
				cookies:  tt.cookies,
				response: &mockResponse{statusCode: 200, body: "{}"},
			}
			client := newTestClient(http)

			require.NoError(t, client.Login(context.Background(), origin, "a@b.c", "x"))

			headers := http.requests[0].headers
			if tt.wantHeader == "" {
				assert.Empty(t, headers)
				return
			}
			assert.Equal(t, tt.wantValue, headers[tt.wantHeader])
		})
	}
}
