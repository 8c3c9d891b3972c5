package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/client/observability"
	"github.com/dmitrijs2005/fittrack/internal/common"
	"github.com/dmitrijs2005/fittrack/internal/logging"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is used when no API address is configured.
	DefaultBaseURL = "http://localhost:8080"

	// RequestIDHeader carries a per-request id for log correlation.
	RequestIDHeader = common.RequestIDHeader
)

// RESTClient implements Client over HTTP/JSON.
type RESTClient struct {
	http       *resty.Client
	tokens     TokenSource
	log        logging.Logger
	metrics    *observability.APIMetrics
	timeout    time.Duration
	httpClient *http.Client
}

var _ Client = (*RESTClient)(nil)

type Option func(*RESTClient)

// WithTokenSource sets where bearer tokens come from. Without it every
// request is sent unauthenticated.
func WithTokenSource(ts TokenSource) Option {
	return func(c *RESTClient) { c.tokens = ts }
}

func WithLogger(l logging.Logger) Option {
	return func(c *RESTClient) {
		if l != nil {
			c.log = l
		}
	}
}

func WithMetrics(m *observability.APIMetrics) Option {
	return func(c *RESTClient) { c.metrics = m }
}

// WithTimeout bounds every request. Zero keeps the transport default (none).
func WithTimeout(d time.Duration) Option {
	return func(c *RESTClient) { c.timeout = d }
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *RESTClient) { c.httpClient = hc }
}

var noToken = TokenSourceFunc(func(context.Context) (string, error) { return "", nil })

// NewRESTClient builds a client for the API rooted at baseURL.
func NewRESTClient(baseURL string, opts ...Option) *RESTClient {
	c := &RESTClient{tokens: noToken, log: logging.Discard()}
	for _, opt := range opts {
		opt(c)
	}

	var rc *resty.Client
	if c.httpClient != nil {
		rc = resty.NewWithClient(c.httpClient)
	} else {
		rc = resty.New()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	rc.SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{log: c.log})
	if c.timeout > 0 {
		rc.SetTimeout(c.timeout)
	}
	rc.OnBeforeRequest(c.attachSession)

	c.http = rc
	return c
}

// attachSession runs before every request: it reads the current token and
// stamps the request id.
func (c *RESTClient) attachSession(_ *resty.Client, r *resty.Request) error {
	token, err := c.tokens.Token(r.Context())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSession, err)
	}
	if token != "" {
		r.SetHeader(common.AuthorizationHeader, common.BearerPrefix+token)
	}
	if r.Header.Get(RequestIDHeader) == "" {
		r.SetHeader(RequestIDHeader, uuid.NewString())
	}
	return nil
}

// send executes one request against route (a path template such as
// "/workouts/{id}") and turns transport failures and non-2xx responses
// into errors.
func (c *RESTClient) send(ctx context.Context, method, route string, prepare func(r *resty.Request)) (*resty.Response, error) {
	req := c.http.R().SetContext(ctx)
	if prepare != nil {
		prepare(req)
	}

	start := time.Now()
	resp, err := req.Execute(method, route)
	if err != nil {
		c.metrics.ObserveRequest(method, route, 0, time.Since(start))
		if errors.Is(err, ErrSession) {
			return nil, err
		}
		c.log.Warn(ctx, "api request failed",
			"method", method, "route", route,
			"request_id", req.Header.Get(RequestIDHeader), "error", err)
		return nil, fmt.Errorf("%w: %s %s: %w", ErrUnavailable, method, route, err)
	}

	status := resp.StatusCode()
	c.metrics.ObserveRequest(method, route, status, time.Since(start))

	if status < 200 || status > 299 {
		apiErr := newAPIError(status, resp.Body())
		c.log.Warn(ctx, "api request rejected",
			"method", method, "route", route, "status", status,
			"request_id", req.Header.Get(RequestIDHeader), "detail", apiErr.Detail)
		return nil, apiErr
	}

	c.log.Debug(ctx, "api request",
		"method", method, "route", route, "status", status,
		"request_id", req.Header.Get(RequestIDHeader))
	return resp, nil
}

type validator interface {
	Validate() error
}

func decode[T any](resp *resty.Response) (*T, error) {
	var v T
	if err := json.Unmarshal(resp.Body(), &v); err != nil {
		return nil, fmt.Errorf("%w: decode %T: %w", ErrMalformedResponse, v, err)
	}
	if val, ok := any(&v).(validator); ok {
		if err := val.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
	}
	return &v, nil
}

func decodeList[T any](resp *resty.Response) ([]T, error) {
	var items []T
	if err := json.Unmarshal(resp.Body(), &items); err != nil {
		var zero T
		return nil, fmt.Errorf("%w: decode []%T: %w", ErrMalformedResponse, zero, err)
	}
	if items == nil {
		items = []T{}
	}
	for i := range items {
		if val, ok := any(&items[i]).(validator); ok {
			if err := val.Validate(); err != nil {
				return nil, fmt.Errorf("%w: item %d: %w", ErrMalformedResponse, i, err)
			}
		}
	}
	return items, nil
}

// restyLogger routes resty's own diagnostics into our logger.
type restyLogger struct {
	log logging.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error(context.Background(), "resty: "+fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn(context.Background(), "resty: "+fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug(context.Background(), "resty: "+fmt.Sprintf(format, v...))
}
