package interfaces

import (
	"context"
	"errors"
)

// ErrNoReceiver signals that no in-page agent was listening for the request.
// Transport implementations wrap their "connection refused"-class failures
// with this sentinel so the bridge can distinguish "agent not yet loaded"
// from other transport errors.
var ErrNoReceiver = errors.New("receiving end does not exist")

// IsNoReceiver reports whether err indicates the agent was not listening.
func IsNoReceiver(err error) bool {
	return errors.Is(err, ErrNoReceiver)
}

// AgentRequest is the message sent to the in-page agent.
type AgentRequest struct {
	Action string `json:"action"`
}

// Messenger is the transport between the controller and the in-page agent.
// Send delivers one request and awaits exactly one raw JSON response.
// Inject loads the agent into the page so a subsequent Send can be received;
// it exists because the agent is not guaranteed to be present and must be
// materialized lazily without a page reload.
type Messenger interface {
	Send(ctx context.Context, req AgentRequest) ([]byte, error)
	Inject(ctx context.Context) error
}
