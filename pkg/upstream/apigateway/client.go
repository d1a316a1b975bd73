// Package apigateway provides an upstream.Client backed by a knowledge-base
// search function published behind an HTTP API gateway.
package apigateway

import (
	"bytes"
	"checkups/pkg/domain"
	"checkups/pkg/serrors"
	"checkups/pkg/upstream"
	"checkups/pkg/wire"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "checkups/pkg/upstream/apigateway"

// DefaultTimeout bounds a single upstream call when Options.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Options configure a Client.
type Options struct {
	// URL is the full gateway URL the query is POSTed to.
	URL string
	// Timeout bounds a single upstream call.
	Timeout time.Duration
	// MeterProvider records upstream latency. The global provider is used when nil.
	MeterProvider metric.MeterProvider
	// TracerProvider traces upstream calls. The global provider is used when nil.
	TracerProvider trace.TracerProvider
}

// Client posts queries to the gateway and fulfills upstream.Client. It is
// safe for concurrent use.
type Client struct {
	httpClient *http.Client
	url        string
	timeout    time.Duration
	tracer     trace.Tracer
	duration   metric.Float64Histogram
}

// Ensure Client conforms to the upstream.Client interface at compile time.
var _ upstream.Client = (*Client)(nil)

// New constructs a Client that uses httpClient to reach the gateway.
func New(httpClient *http.Client, opts Options) (*Client, error) {
	if opts.URL == "" {
		return nil, errors.New("gateway URL is required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MeterProvider == nil {
		opts.MeterProvider = otel.GetMeterProvider()
	}
	if opts.TracerProvider == nil {
		opts.TracerProvider = otel.GetTracerProvider()
	}

	duration, err := opts.MeterProvider.Meter(instrumentationName).Float64Histogram(
		"upstream.request.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of knowledge-base gateway calls."),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Client{
		httpClient: httpClient,
		url:        opts.URL,
		timeout:    opts.Timeout,
		tracer:     opts.TracerProvider.Tracer(instrumentationName),
		duration:   duration,
	}, nil
}

// Search posts the query to the gateway and decodes the package list.
//
// Status handling:
//   - 2xx: the decoded body, which may itself be a failure result;
//   - 404: ErrNotFound naming the configured URL;
//   - other non-2xx: a kind derived from the status and the body's "error"
//     field, or a generic message naming the status;
//   - timeouts: ErrTimeout; connection failures: ErrUnavailable.
func (c *Client) Search(ctx context.Context, query domain.Query) (domain.SearchResult, error) {
	ctx, span := c.tracer.Start(ctx, "apigateway.Search", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	start := time.Now()
	res, status, err := c.do(ctx, query)

	outcome := string(res.Outcome())
	if err != nil {
		outcome = "transport_error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	c.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(attribute.String("outcome", outcome)))

	return res, err
}

func (c *Client) do(ctx context.Context, query domain.Query) (domain.SearchResult, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(wire.EncodeRequest(query.String())))
	if err != nil {
		return domain.SearchResult{}, 0, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", wire.ContentType)
	req.Header.Set("Accept", wire.ContentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.SearchResult{}, 0, classifyTransportError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.SearchResult{}, resp.StatusCode, classifyTransportError(err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return domain.SearchResult{}, resp.StatusCode, serrors.With(serrors.ErrNotFound,
			"API endpoint not found. Please check the API Gateway configuration. URL: %s", c.url)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("API request failed with status %d", resp.StatusCode)
		if res, err := wire.DecodeResult(b); err == nil && res.Failed() {
			msg = res.Message()
		}

		return domain.SearchResult{}, resp.StatusCode, serrors.With(statusKind(resp.StatusCode), "%s", msg)
	}

	// successful
	res, err := wire.DecodeResult(b)
	if err != nil {
		return domain.SearchResult{}, resp.StatusCode, serrors.Wrap(serrors.ErrInternal, err,
			"Invalid response format from API")
	}

	return res, resp.StatusCode, nil
}

// classifyTransportError maps failures to reach the gateway to semantic kinds.
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return serrors.Wrap(serrors.ErrTimeout, err, "Request timed out. Please try again.")
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("could not send request: %w", err)
	}

	return serrors.Wrap(serrors.ErrUnavailable, err, "Failed to connect to API. Please check your connection.")
}

// statusKind picks the semantic kind mirroring an upstream status.
func statusKind(status int) serrors.Kind {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return serrors.ErrBadRequest
	case http.StatusUnauthorized:
		return serrors.ErrUnauthorized
	case http.StatusForbidden:
		return serrors.ErrForbidden
	case http.StatusTooManyRequests:
		return serrors.ErrRateLimited
	case http.StatusServiceUnavailable:
		return serrors.ErrUnavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return serrors.ErrTimeout
	case http.StatusInternalServerError:
		return serrors.ErrInternal
	}
	if status >= 500 {
		return serrors.ErrBadGateway
	}

	return serrors.ErrBadRequest
}
