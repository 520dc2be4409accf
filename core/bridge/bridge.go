// ABOUTME: Request/response bridge between the controller and the in-page agent
// ABOUTME: Implements the try, inject-on-miss, retry-once content protocol

package bridge

import (
	"context"
	"encoding/json"

	"clipper-app-api/core/domain"
	"clipper-app-api/core/errors"
	"clipper-app-api/core/interfaces"
)

// actionGetContent is the single request the agent understands.
const actionGetContent = "get-content"

// envelope is the agent's response wrapper.
type envelope struct {
	Success bool          `json:"success"`
	Data    *snapshotWire `json:"data"`
	Error   string        `json:"error"`
}

// snapshotWire mirrors the agent's content payload.
type snapshotWire struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	TextContent string `json:"textContent"`
	Excerpt     string `json:"excerpt"`
	Selection   string `json:"selection"`
	URL         string `json:"url"`
}

// Bridge requests content snapshots from the in-page agent.
type Bridge struct {
	messenger interfaces.Messenger
	logger    interfaces.Logger
}

// NewBridge creates a bridge over the given messenger. The logger may be nil.
func NewBridge(messenger interfaces.Messenger, logger interfaces.Logger) *Bridge {
	return &Bridge{
		messenger: messenger,
		logger:    logger,
	}
}

// RequestContent asks the agent for a content snapshot. When the first send
// fails because no agent was listening (common after the host application is
// reloaded while the page stays open), the agent is injected and the request
// retried exactly once; a second miss is terminal.
func (b *Bridge) RequestContent(ctx context.Context) (*domain.ContentSnapshot, error) {
	req := interfaces.AgentRequest{Action: actionGetContent}

	raw, err := b.messenger.Send(ctx, req)
	if err != nil {
		if !interfaces.IsNoReceiver(err) {
			return nil, &errors.BridgeError{Reason: err.Error()}
		}

		b.logDebug("agent not loaded, injecting", nil)
		if injectErr := b.messenger.Inject(ctx); injectErr != nil {
			return nil, &errors.BridgeError{Reason: errors.BridgeReasonUnreachable}
		}

		raw, err = b.messenger.Send(ctx, req)
		if err != nil {
			if interfaces.IsNoReceiver(err) {
				return nil, &errors.BridgeError{Reason: errors.BridgeReasonUnreachable}
			}
			return nil, &errors.BridgeError{Reason: err.Error()}
		}
	}

	return decodeEnvelope(raw)
}

// decodeEnvelope unpacks the agent's response wrapper into a snapshot.
func decodeEnvelope(raw []byte) (*domain.ContentSnapshot, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &errors.BridgeError{Reason: "malformed agent response"}
	}

	if !env.Success {
		reason := env.Error
		if reason == "" {
			reason = "agent reported failure without detail"
		}
		return nil, &errors.BridgeError{Reason: reason}
	}

	if env.Data == nil {
		return nil, &errors.BridgeError{Reason: "agent response carried no content"}
	}

	return &domain.ContentSnapshot{
		Title:         env.Data.Title,
		ContentHTML:   env.Data.Content,
		TextContent:   env.Data.TextContent,
		Excerpt:       env.Data.Excerpt,
		SelectionHTML: env.Data.Selection,
		SourceURL:     env.Data.URL,
	}, nil
}

func (b *Bridge) logDebug(msg string, fields map[string]interface{}) {
	if b.logger != nil {
		b.logger.Debug(msg, fields)
	}
}
