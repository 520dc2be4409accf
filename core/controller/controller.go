// ABOUTME: Session/view controller orchestrating probe, connect, create, and clip flows
// ABOUTME: Single place mapping failure classifications to view transitions and status

// Package controller implements the state machine that drives one
// activation: it owns the current view, session validity, the captured
// content snapshot, and at most one pending retry action, and it is the only
// component that maps classified errors to view transitions.
//
// The machine is reactive for the lifetime of one activation and has no
// terminal state; tearing the activation down abandons in-flight work and
// discards everything that was not explicitly persisted. Callers run one
// user-initiated flow at a time by disabling the triggering control while
// its own flow is in flight; the controller does not lock across flows.
package controller

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"clipper-app-api/core/clip"
	"clipper-app-api/core/domain"
	"clipper-app-api/core/errors"
	"clipper-app-api/core/interfaces"
	"clipper-app-api/core/settings"
)

// API is the slice of the server client the controller needs.
type API interface {
	Login(ctx context.Context, origin, email, password string) error
	ListSpaces(ctx context.Context, origin string) ([]domain.Space, error)
	CreateSpace(ctx context.Context, origin, name, slug string) (*domain.Space, error)
	ImportPage(ctx context.Context, origin, spaceID, filename string, document []byte) error
}

// ContentSource produces one content snapshot per request.
type ContentSource interface {
	RequestContent(ctx context.Context) (*domain.ContentSnapshot, error)
}

// Controller is the session/view state machine.
type Controller struct {
	api      API
	content  ContentSource
	settings *settings.Service
	logger   interfaces.Logger

	state State

	// retry is the single pending deferred action; consumed on trigger and
	// superseded by any new user-initiated flow
	retry func(ctx context.Context) error

	// pendingHost is the host awaiting a confirming second connect submit
	pendingHost string
}

// New creates a controller in the Disconnected state.
func New(api API, content ContentSource, settings *settings.Service, logger interfaces.Logger) *Controller {
	return &Controller{
		api:      api,
		content:  content,
		settings: settings,
		logger:   logger,
		state: State{
			Phase: PhaseDisconnected,
			View:  ViewSettings,
		},
	}
}

// State returns the current observable state.
func (c *Controller) State() State {
	return c.state
}

// HasPendingRetry reports whether a deferred action is waiting.
func (c *Controller) HasPendingRetry() bool {
	return c.retry != nil
}

// Activate runs the startup probe: with no saved origin the machine stays
// Disconnected; otherwise the space listing doubles as a session probe, and
// success additionally requests a content snapshot (whose failure leaves the
// machine Connected but blocks clipping until a fresh capture succeeds).
func (c *Controller) Activate(ctx context.Context) error {
	c.retry = nil

	origin, err := c.settings.ServerURL(ctx)
	if err != nil {
		c.reportError(err)
		return err
	}
	if origin == "" {
		c.transition(PhaseDisconnected, ViewSettings)
		return nil
	}
	return c.probe(ctx, origin)
}

// probe validates the saved session by listing spaces. Retrying repeats the
// probe identically.
func (c *Controller) probe(ctx context.Context, origin string) error {
	c.transition(PhaseConnecting, ViewSettings)

	spaces, err := c.api.ListSpaces(ctx, origin)
	if err != nil {
		if errors.IsAuth(err) {
			c.forceDisconnected("session expired, please log in again")
			return err
		}
		c.enterRetry(err, func(ctx context.Context) error {
			return c.probe(ctx, origin)
		})
		return err
	}

	c.state.Session = domain.Session{ServerOrigin: origin, Authenticated: true}
	c.transition(PhaseConnected, ViewClipper)
	c.populateSpaces(ctx, spaces)
	c.captureSnapshot(ctx)
	return nil
}

// Connect validates and normalizes the entered URL, applies the host-change
// gate, then logs in and probes. Changing to a different host than the one
// already saved is refused exactly once with a warning; an identical second
// submission proceeds. This friction step prevents silently sending
// credentials to a different host after a typo or a phishing redirect.
func (c *Controller) Connect(ctx context.Context, rawURL, email, password string) error {
	c.retry = nil

	origin, err := domain.NormalizeOrigin(rawURL)
	if err != nil {
		c.reportError(err)
		return err
	}
	if strings.TrimSpace(email) == "" || password == "" {
		err := &errors.ValidationError{Field: "credentials", Message: "email and password are required"}
		c.reportError(err)
		return err
	}

	saved, err := c.settings.ServerURL(ctx)
	if err != nil {
		c.reportError(err)
		return err
	}
	newHost := domain.OriginHost(origin)
	if saved != "" && domain.OriginHost(saved) != newHost && c.pendingHost != newHost {
		c.pendingHost = newHost
		warn := &errors.ValidationError{
			Field: "url",
			Message: fmt.Sprintf("server host is changing from %s to %s; submit again to confirm",
				domain.OriginHost(saved), newHost),
		}
		c.setStatus(StatusWarning, warn.Message)
		return warn
	}
	c.pendingHost = ""

	return c.connect(ctx, origin, email, password)
}

// connect is the post-gate connect attempt; retrying resubmits it as-is.
func (c *Controller) connect(ctx context.Context, origin, email, password string) error {
	c.transition(PhaseConnecting, ViewSettings)

	if err := c.api.Login(ctx, origin, email, password); err != nil {
		if errors.IsNetwork(err) {
			c.enterRetry(err, func(ctx context.Context) error {
				return c.connect(ctx, origin, email, password)
			})
			return err
		}
		// The server answered and rejected the login: a credentials problem,
		// not a transient fault, so no retry is offered.
		c.transition(PhaseDisconnected, ViewSettings)
		c.setStatus(StatusError, "connection failed: "+err.Error())
		return err
	}

	spaces, err := c.api.ListSpaces(ctx, origin)
	if err != nil {
		if errors.IsAuth(err) {
			c.forceDisconnected("session rejected immediately after login")
			return err
		}
		c.enterRetry(err, func(ctx context.Context) error {
			return c.connect(ctx, origin, email, password)
		})
		return err
	}

	if err := c.settings.SetServerURL(ctx, origin); err != nil {
		c.reportError(err)
		return err
	}

	c.state.Session = domain.Session{ServerOrigin: origin, Authenticated: true}
	c.transition(PhaseConnected, ViewClipper)
	c.populateSpaces(ctx, spaces)
	c.setStatus(StatusSuccess, "connected successfully")
	c.captureSnapshot(ctx)
	return nil
}

// Disconnect destroys the in-memory session and returns to Settings. The
// saved server URL is an address, not a credential, and survives so the user
// does not retype it; the session cookie lives in the HTTP layer's cookie
// storage and simply stops being validated.
func (c *Controller) Disconnect(ctx context.Context) error {
	c.retry = nil
	c.pendingHost = ""
	c.state.Session = domain.Session{}
	c.state.Spaces = nil
	c.state.SelectedSpaceID = ""
	c.state.Snapshot = nil
	c.transition(PhaseDisconnected, ViewSettings)
	c.setStatus(StatusSuccess, "disconnected")
	return nil
}

// SelectSpace records the space choice; selecting the create-new sentinel
// moves to the create-space flow regardless of the current list state.
func (c *Controller) SelectSpace(id string) {
	if id == domain.CreateSpaceSentinel {
		c.BeginCreateSpace()
		return
	}
	c.state.SelectedSpaceID = id
}

// BeginCreateSpace switches to the create-space view.
func (c *Controller) BeginCreateSpace() {
	c.transition(PhaseCreatingSpace, ViewCreateSpace)
}

// ConfirmCreateSpace validates the name locally, then creates the space and
// refreshes the listing to learn the server-assigned id for the new slug.
func (c *Controller) ConfirmCreateSpace(ctx context.Context, name string) error {
	c.retry = nil

	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < 2 {
		err := &errors.ValidationError{Field: "name", Message: "space name must be at least 2 characters"}
		c.reportError(err)
		return err
	}
	return c.createSpace(ctx, name)
}

// createSpace is the post-validation create attempt; retrying resubmits it.
func (c *Controller) createSpace(ctx context.Context, name string) error {
	origin := c.state.Session.ServerOrigin
	slug := domain.DeriveSlug(name)

	retryAction := func(ctx context.Context) error {
		return c.createSpace(ctx, name)
	}

	created, err := c.api.CreateSpace(ctx, origin, name, slug)
	if err != nil {
		return c.classifyFlowError(err, retryAction)
	}

	spaces, err := c.api.ListSpaces(ctx, origin)
	if err != nil {
		return c.classifyFlowError(err, retryAction)
	}

	selected := created.ID
	if match := domain.FindBySlug(spaces, slug); match != nil {
		selected = match.ID
	}

	c.transition(PhaseConnected, ViewClipper)
	c.state.Spaces = spaces
	c.state.SelectedSpaceID = selected
	c.setStatus(StatusSuccess, fmt.Sprintf("space %q created", name))
	return nil
}

// Clip builds the clip document from the captured snapshot and uploads it.
// It is refused without a network call when no snapshot was captured or no
// real space is selected.
func (c *Controller) Clip(ctx context.Context, spaceID string, opts clip.Options) error {
	c.retry = nil

	if c.state.Snapshot == nil {
		err := &errors.ValidationError{Field: "content", Message: "no page content captured"}
		c.reportError(err)
		return err
	}
	if spaceID == "" || spaceID == domain.CreateSpaceSentinel {
		err := &errors.ValidationError{Field: "space", Message: "select a space first"}
		c.reportError(err)
		return err
	}
	return c.clip(ctx, spaceID, opts)
}

// clip is the post-gate upload attempt; retrying resubmits it as-is against
// the same snapshot.
func (c *Controller) clip(ctx context.Context, spaceID string, opts clip.Options) error {
	snap := c.state.Snapshot
	title := clip.EffectiveTitle(snap, opts.TitleOverride)
	document := clip.BuildDocument(snap, opts)
	filename := clip.Filename(title)

	err := c.api.ImportPage(ctx, c.state.Session.ServerOrigin, spaceID, filename, []byte(document))
	if err != nil {
		return c.classifyFlowError(err, func(ctx context.Context) error {
			return c.clip(ctx, spaceID, opts)
		})
	}

	if err := c.settings.SetLastSpaceID(ctx, spaceID); err != nil {
		c.logWarn("failed to remember last space", map[string]interface{}{
			"space_id": spaceID,
			"error":    err.Error(),
		})
	}
	c.state.SelectedSpaceID = spaceID
	c.setStatus(StatusSuccess, "page clipped successfully")
	return nil
}

// Retry consumes and invokes the pending action, if any.
func (c *Controller) Retry(ctx context.Context) error {
	if c.retry == nil {
		return nil
	}
	action := c.retry
	c.retry = nil
	return action(ctx)
}

// transition replaces phase and view. Changing views always clears the
// status message, and an unauthenticated session can never leave Settings.
func (c *Controller) transition(phase Phase, view View) {
	if !c.state.Session.Authenticated {
		view = ViewSettings
	}
	c.state.Phase = phase
	c.state.View = view
	c.state.Status = nil
}

// populateSpaces installs the listing and re-selects the remembered space
// when it is still present; otherwise nothing is auto-selected.
func (c *Controller) populateSpaces(ctx context.Context, spaces []domain.Space) {
	c.state.Spaces = spaces
	c.state.SelectedSpaceID = ""

	lastID, err := c.settings.LastSpaceID(ctx)
	if err != nil || lastID == "" {
		return
	}
	if domain.FindByID(spaces, lastID) != nil {
		c.state.SelectedSpaceID = lastID
	}
}

// captureSnapshot requests content from the in-page agent. Failure leaves
// the machine where it is with no snapshot, which blocks the clip action
// until a later activation captures one.
func (c *Controller) captureSnapshot(ctx context.Context) {
	snap, err := c.content.RequestContent(ctx)
	if err != nil {
		c.state.Snapshot = nil
		c.logWarn("content capture failed", map[string]interface{}{
			"error": err.Error(),
		})
		c.setStatus(StatusError, "could not read page content: "+err.Error())
		return
	}
	c.state.Snapshot = snap
}

// classifyFlowError is the shared failure path for authenticated flows:
// session-invalid collapses to Disconnected, anything else parks a retry.
func (c *Controller) classifyFlowError(err error, retryAction func(ctx context.Context) error) error {
	if errors.IsAuth(err) {
		c.forceDisconnected("session expired, please log in again")
		return err
	}
	c.enterRetry(err, retryAction)
	return err
}

// enterRetry parks the single pending action and reports the cause. The
// current view is kept; only the phase changes.
func (c *Controller) enterRetry(cause error, action func(ctx context.Context) error) {
	c.state.Phase = PhaseAwaitingRetry
	c.retry = action
	c.setStatus(StatusError, cause.Error())
}

// forceDisconnected declares the session invalid and returns to Settings.
func (c *Controller) forceDisconnected(msg string) {
	c.retry = nil
	c.state.Session.Authenticated = false
	c.state.Spaces = nil
	c.state.SelectedSpaceID = ""
	c.transition(PhaseDisconnected, ViewSettings)
	c.setStatus(StatusError, msg)
}

func (c *Controller) reportError(err error) {
	c.setStatus(StatusError, err.Error())
}

func (c *Controller) setStatus(kind StatusKind, msg string) {
	c.state.Status = &Status{Kind: kind, Message: msg}
}

func (c *Controller) logWarn(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Warn(msg, fields)
	}
}
