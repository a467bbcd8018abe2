// Package search holds the lookup state machine shared by every front end.
//
// A submission is split in three steps so an event loop can stay responsive
// while the request is outstanding: Begin moves the state to Loading and
// returns the pending request, Fetch performs the network call without
// touching state, and Apply commits exactly one terminal transition.
// Submit runs all three for callers that can block.
package search

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/vilaca/profile-detective/internal/api"
	"github.com/vilaca/profile-detective/internal/domain"
)

// Logger interface for logging operations (Interface Segregation Principle).
type Logger interface {
	Infow(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

// Recorder receives one observation per finished lookup.
type Recorder interface {
	ObserveLookup(outcome string, elapsed time.Duration)
}

// Outcome labels reported to the Recorder.
const (
	OutcomeSuccess    = "success"
	OutcomeValidation = "validation_error"
	OutcomeNotFound   = "not_found"
	OutcomeTransport  = "transport_error"
)

// Pending identifies an outstanding request.
type Pending struct {
	seq      uint64
	Username string
}

// Outcome is the result of Fetch, ready to be applied.
type Outcome struct {
	pending *Pending
	Profile *domain.ProfileRecord
	Err     error
	Elapsed time.Duration
}

// Controller owns the query text and the current SearchState.
// The state value is replaced as a whole under mu, never edited in place.
type Controller struct {
	client   api.ProfileClient
	logger   Logger
	recorder Recorder

	mu      sync.Mutex
	query   string
	state   domain.SearchState
	seq     uint64
	pending *Pending
}

// ControllerConfig holds the dependencies of a Controller.
type ControllerConfig struct {
	Client   api.ProfileClient
	Logger   Logger
	Recorder Recorder // optional
}

// NewController creates a Controller in the Idle state.
func NewController(cfg ControllerConfig) *Controller {
	return &Controller{
		client:   cfg.Client,
		logger:   cfg.Logger,
		recorder: cfg.Recorder,
		state:    domain.IdleState(),
	}
}

// SetQuery replaces the query text. No validation happens here.
func (c *Controller) SetQuery(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = text
}

// Query returns the current, untrimmed query text.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// State returns the current state value.
func (c *Controller) State() domain.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Begin starts a submission for the current query.
//
// An empty query moves straight to the validation error and returns a nil
// Pending. A Begin while a request is outstanding is ignored: the state is
// returned unchanged together with a nil Pending.
func (c *Controller) Begin() (domain.SearchState, *Pending) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != nil {
		return c.state, nil
	}

	username := strings.TrimSpace(c.query)
	if username == "" {
		c.state = domain.ErrorState(c.query, domain.ErrValidation, domain.MsgEmptyQuery)
		c.observe(OutcomeValidation, 0)
		return c.state, nil
	}

	c.seq++
	c.pending = &Pending{seq: c.seq, Username: username}
	c.state = domain.LoadingState(username)
	return c.state, c.pending
}

// Fetch performs the outbound lookup for p. It does not modify state and is
// safe to call from another goroutine.
func (c *Controller) Fetch(ctx context.Context, p *Pending) Outcome {
	start := time.Now()
	profile, err := c.client.GetUser(ctx, p.Username)
	return Outcome{pending: p, Profile: profile, Err: err, Elapsed: time.Since(start)}
}

// Apply commits the terminal transition for o. Outcomes that do not belong to
// the outstanding request are dropped and the current state is returned.
func (c *Controller) Apply(o Outcome) domain.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if o.pending == nil || c.pending == nil || o.pending.seq != c.pending.seq {
		return c.state
	}
	c.pending = nil

	username := o.pending.Username
	switch Classify(o.Err) {
	case nil:
		c.state = domain.SuccessState(username, o.Profile)
		c.observe(OutcomeSuccess, o.Elapsed)
	case domain.ErrNotFound:
		c.state = domain.ErrorState(username, domain.ErrNotFound, domain.NotFoundMessage(username))
		c.observe(OutcomeNotFound, o.Elapsed)
	default:
		if c.logger != nil {
			c.logger.Errorw("profile lookup failed", "username", username, "error", o.Err)
		}
		c.state = domain.ErrorState(username, domain.ErrTransport, domain.MsgTransportError)
		c.observe(OutcomeTransport, o.Elapsed)
	}
	return c.state
}

// Submit runs a whole submission and returns the resulting state.
func (c *Controller) Submit(ctx context.Context) domain.SearchState {
	state, pending := c.Begin()
	if pending == nil {
		return state
	}
	return c.Apply(c.Fetch(ctx, pending))
}

// Classify maps an error to one of the domain error kinds, or nil for success.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrValidation):
		return domain.ErrValidation
	case errors.Is(err, domain.ErrNotFound):
		return domain.ErrNotFound
	default:
		return domain.ErrTransport
	}
}

func (c *Controller) observe(outcome string, elapsed time.Duration) {
	if c.recorder != nil {
		c.recorder.ObserveLookup(outcome, elapsed)
	}
}
