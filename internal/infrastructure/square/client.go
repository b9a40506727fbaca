package square

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/voicewaiter/backend/internal/domain/ordering"
	"github.com/voicewaiter/backend/internal/infrastructure/telemetry"
)

// maxResponseSize is the maximum allowed response size from the Square API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// Operation names used for spans and request metrics
const (
	OperationListCatalog  = "list_catalog"
	OperationCreateOrder  = "create_order"
	OperationSearchOrders = "search_orders"
)

// RequestObserver is notified after every Square API round trip.
type RequestObserver interface {
	ObserveRequest(ctx context.Context, operation string, duration time.Duration, err error)
}

// APIError is a non-2xx answer from Square, or a 2xx answer carrying errors[].
type APIError struct {
	StatusCode int
	Errors     []Error
}

// Error implements the error interface
func (e *APIError) Error() string {
	detail := ErrorResponse{Errors: e.Errors}.String()
	if detail == "" {
		return fmt.Sprintf("square: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("square: HTTP %d: %s", e.StatusCode, detail)
}

// Unwrap maps the status to the platform error it represents
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ordering.ErrPlatformAuthFailed
	case http.StatusTooManyRequests:
		return ordering.ErrPlatformRateLimited
	default:
		return ordering.ErrPlatformRequestFailed
	}
}

// Client talks to the Square REST API. It implements ordering.CatalogReader
// and ordering.OrderGateway.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.Logger
	observer   RequestObserver
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the client logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver registers a request observer
func WithObserver(o RequestObserver) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// NewClient creates a new Square client with the given configuration
func NewClient(config *Config, opts ...Option) (*Client, error) {
	if config == nil {
		return nil, ordering.ErrPlatformNotConfigured
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// LocationID returns the location orders are created at
func (c *Client) LocationID() string {
	return c.config.LocationID
}

// doRequest performs one traced round trip and decodes the JSON answer into out.
func (c *Client) doRequest(ctx context.Context, operation, method, path string, query url.Values, body, out any) error {
	ctx, span := telemetry.StartSpan(ctx, "square."+operation,
		telemetry.WithSpanKind(trace.SpanKindClient),
		telemetry.WithAttribute(telemetry.SpanAttrSquareOperation, operation),
	)
	defer span.End()

	start := time.Now()
	var err error
	telemetry.WithProfilingLabels(ctx, telemetry.OperationLabels("square."+operation), func(ctx context.Context) {
		err = c.send(ctx, method, path, query, body, out)
	})
	elapsed := time.Since(start)

	if c.observer != nil {
		c.observer.ObserveRequest(ctx, operation, elapsed, err)
	}
	if err != nil {
		telemetry.RecordError(span, err)
		c.logger.Debug("Square request failed",
			zap.String("operation", operation),
			zap.Duration("duration", elapsed),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.config.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("square: failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("square: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	req.Header.Set("Square-Version", c.config.APIVersion)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ordering.ErrPlatformUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ordering.ErrPlatformUnavailable, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp ErrorResponse
		// Non-JSON error bodies still yield an APIError carrying the status.
		_ = json.Unmarshal(respBody, &errResp)
		return &APIError{StatusCode: resp.StatusCode, Errors: errResp.Errors}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: failed to parse response: %v", ordering.ErrPlatformInvalidResponse, err)
	}
	if carrier, ok := out.(interface{ apiErrors() []Error }); ok {
		if errs := carrier.apiErrors(); len(errs) > 0 {
			return &APIError{StatusCode: resp.StatusCode, Errors: errs}
		}
	}
	return nil
}

func (r *ErrorResponse) apiErrors() []Error {
	return r.Errors
}

// toMoney converts a wire money object; a missing amount reads as zero.
func toMoney(m *Money) *ordering.Money {
	if m == nil {
		return nil
	}
	out := &ordering.Money{Currency: m.Currency}
	if m.Amount != nil {
		out.Amount = *m.Amount
	}
	return out
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
