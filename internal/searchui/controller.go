// Package searchui holds the search page state machine and its renderers.
//
// A Controller owns the query field, the loading indicator and the results
// panel. Every state transition is reported to an Observer, and rendering is
// a pure function of State, so the same Controller drives the terminal client
// and the server-rendered page.
package searchui

import (
	"checkups/pkg/domain"
	"checkups/pkg/logger"
	"checkups/pkg/searchclient"
	"checkups/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const (
	MessageEmptyQuery  = "Please enter a search query"
	MessageFetchFailed = "Failed to fetch results. Please try again."
)

var ErrUnknownFilter = errors.New("unknown filter")

// Fetcher runs a search against the backend.
//
//go:generate mockgen -package mocksearchui -source=controller.go -destination=mock/mocksearchui.go *
type Fetcher interface {
	Search(ctx context.Context, query domain.Query) (domain.SearchResult, error)
}

// Observer receives a snapshot after every state transition. It is called
// with the controller lock held and must not call back into the Controller.
type Observer func(State)

type Option func(*Controller)

func WithObserver(o Observer) Option {
	return func(c *Controller) {
		c.observer = o
	}
}

type Controller struct {
	fetcher  Fetcher
	observer Observer

	mu    sync.Mutex
	state State
}

func New(fetcher Fetcher, opts ...Option) *Controller {
	c := &Controller{
		fetcher: fetcher,
		state:   State{Panel: PanelNone{}},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// SetQuery sets the query field without searching.
func (c *Controller) SetQuery(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Query = q
	c.notify()
}

// SetFilter replaces the query with the canned phrase of tag and searches.
// An unknown tag clears the query, so the search reports the empty query
// error, and ErrUnknownFilter is returned.
func (c *Controller) SetFilter(ctx context.Context, tag string) error {
	phrase, ok := domain.Filter(tag).Phrase()
	c.SetQuery(phrase)
	c.Search(ctx)

	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFilter, tag)
	}

	return nil
}

// Search submits the current query. It blocks until the fetch returns.
// Responses that are superseded by a newer Search are dropped.
func (c *Controller) Search(ctx context.Context) {
	c.mu.Lock()
	c.state.Seq++
	seq := c.state.Seq

	query, err := domain.NewQuery(c.state.Query)
	if err != nil {
		// supersedes any in-flight search
		c.state.Loading = false
		c.displayError(MessageEmptyQuery)
		c.mu.Unlock()

		return
	}

	c.state.Loading = true
	c.state.Panel = PanelNone{}
	c.notify()
	c.mu.Unlock()

	ctx = logger.WithFields(ctx, zap.Uint64("search_seq", seq))
	logger.Debug(ctx, "sending search query", zap.String("query", query.String()))

	result, err := c.fetcher.Search(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.state.Seq {
		logger.Debug(ctx, "dropping stale search response", zap.Uint64("latest_seq", c.state.Seq))

		return
	}

	c.state.Loading = false
	if err != nil {
		logger.Warn(ctx, "search failed", zap.Error(err))
		c.displayError(errorMessage(err))

		return
	}
	c.displayResults(result)
}

// DisplayResults renders result into the results panel.
func (c *Controller) DisplayResults(result domain.SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.displayResults(result)
}

// DisplayError replaces the results panel with an error alert.
func (c *Controller) DisplayError(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.displayError(message)
}

func (c *Controller) displayResults(result domain.SearchResult) {
	switch {
	case result.Failed():
		c.displayError(result.Message())

		return
	case len(result.Packages()) == 0:
		c.state.Panel = PanelEmpty{}
	default:
		c.state.Panel = PanelResults{Packages: result.Packages()}
	}
	c.notify()
}

func (c *Controller) displayError(message string) {
	c.state.Panel = PanelError{Message: message}
	c.notify()
}

func (c *Controller) notify() {
	if c.observer != nil {
		c.observer(c.state)
	}
}

// errorMessage picks the text shown for a failed fetch.
func errorMessage(err error) string {
	var se *searchclient.StatusError
	if errors.As(err, &se) {
		return se.Message
	}

	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = strings.TrimSpace(err.Error())
	}
	if msg == "" {
		return MessageFetchFailed
	}

	return msg
}
