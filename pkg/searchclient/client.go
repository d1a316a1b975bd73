// Package searchclient calls the checkups POST /search endpoint.
package searchclient

import (
	"bytes"
	"checkups/pkg/domain"
	"checkups/pkg/wire"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 30 * time.Second

	// FallbackMessage is reported for non-2xx responses without an error body.
	FallbackMessage = "Failed to get response from API"

	searchPath = "/search"
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("search failed with status %d: %s", e.Status, e.Message)
}

type Options struct {
	// BaseURL of the checkups server, e.g. http://localhost:8080.
	BaseURL string
	Timeout time.Duration
	// Token is sent as a bearer token when set.
	Token string
}

type Client struct {
	httpClient *http.Client
	endpoint   string
	timeout    time.Duration
	token      string
}

func New(httpClient *http.Client, opts Options) (*Client, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("could not parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", opts.BaseURL)
	}
	base.Path = strings.TrimSuffix(base.Path, "/") + searchPath

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   base.String(),
		timeout:    timeout,
		token:      opts.Token,
	}, nil
}

// Search posts the query and decodes the result. A 2xx body carrying an
// error decodes into a failed SearchResult with a nil error.
func (c *Client) Search(ctx context.Context, query domain.Query) (domain.SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		bytes.NewReader(wire.EncodeRequest(query.String())))
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", wire.ContentType)
	req.Header.Set("Accept", wire.ContentType)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("could not send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("could not read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.SearchResult{}, &StatusError{Status: resp.StatusCode, Message: failureMessage(body)}
	}

	result, err := wire.DecodeResult(body)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("could not decode response: %w", err)
	}

	return result, nil
}

func failureMessage(body []byte) string {
	result, err := wire.DecodeResult(body)
	if err != nil || !result.Failed() {
		return FallbackMessage
	}

	return result.Message()
}

// IsStatus reports whether err is a StatusError with the given status.
func IsStatus(err error, status int) bool {
	var se *StatusError

	return errors.As(err, &se) && se.Status == status
}
