// ABOUTME: WebSocket messenger for talking to the in-page capture agent
// ABOUTME: Dials per request and reports a missing agent as ErrNoReceiver for inject-and-retry

package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	"clipper-app-api/core/interfaces"
)

const (
	messagePath = "/agent/message"
	injectPath  = "/agent/inject"

	replyTimeout = 10 * time.Second
)

// Messenger implements the Messenger interface over a WebSocket connection to
// the capture agent. Each Send dials a fresh connection, writes one request,
// and reads one reply; a failed dial means no agent is listening yet, which
// callers resolve by injecting it and retrying.
type Messenger struct {
	agentURL string
	dialer   *websocket.Dialer
	injector *http.Client
	logger   interfaces.Logger
}

// NewMessenger creates a messenger for the agent at the given base URL
// (for example "http://127.0.0.1:9222").
func NewMessenger(agentURL string, logger interfaces.Logger) *Messenger {
	return &Messenger{
		agentURL: agentURL,
		dialer:   websocket.DefaultDialer,
		injector: &http.Client{Timeout: replyTimeout},
		logger:   logger,
	}
}

// Send delivers one request to the agent and returns the raw reply bytes.
// A failed dial is wrapped with interfaces.ErrNoReceiver.
func (m *Messenger) Send(ctx context.Context, req interfaces.AgentRequest) ([]byte, error) {
	wsURL, err := m.endpoint("ws", messagePath)
	if err != nil {
		return nil, err
	}

	conn, _, err := m.dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", interfaces.ErrNoReceiver, wsURL, err)
	}
	defer conn.Close()

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return nil, fmt.Errorf("failed to write request: %w", err)
	}

	deadline := time.Now().Add(replyTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetReadDeadline(deadline); err != nil {
		return nil, err
	}

	_, reply, err := conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("failed to read reply: %w", err)
	}
	return reply, nil
}

// Inject asks the agent host to start the capture agent. After a successful
// inject the next Send is expected to find a listener.
func (m *Messenger) Inject(ctx context.Context) error {
	injectURL, err := m.endpoint("http", injectPath)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", injectURL, nil)
	if err != nil {
		return err
	}

	resp, err := m.injector.Do(req)
	if err != nil {
		return fmt.Errorf("failed to inject agent: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("agent injection rejected: status %d", resp.StatusCode)
	}

	if m.logger != nil {
		m.logger.Debug("agent injected", map[string]interface{}{"url": injectURL})
	}
	return nil
}

// endpoint rebases the agent URL onto the given scheme family and path.
func (m *Messenger) endpoint(scheme, path string) (string, error) {
	u, err := url.Parse(m.agentURL)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid agent URL %q", m.agentURL)
	}

	switch u.Scheme {
	case "https", "wss":
		if scheme == "ws" {
			u.Scheme = "wss"
		} else {
			u.Scheme = "https"
		}
	default:
		u.Scheme = scheme
	}
	u.Path = path
	return u.String(), nil
}
