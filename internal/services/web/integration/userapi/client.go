// Package userapi is the HTTP client for the remote user API that owns
// registration and account activation.
package userapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/louisbranch/hoaxify/internal/registration"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"resty.dev/v3"
)

const (
	usersPath        = "/api/1.0/users"
	activationPrefix = usersPath + "/token/"
	activationPath   = activationPrefix + "{token}"

	tracerName = "github.com/louisbranch/hoaxify/internal/services/web/integration/userapi"
)

// ErrBaseURLRequired is returned by New when no API base URL is configured.
var ErrBaseURLRequired = errors.New("userapi: base url is required")

// errorBody is the failure payload of the user API.
type errorBody struct {
	ValidationErrors map[string]string `json:"validationErrors"`
}

// Client issues one HTTP request per call and normalizes the outcome into
// registration error kinds. It never retries.
type Client struct {
	http      *resty.Client
	tracer    trace.Tracer
	closeOnce sync.Once
	closeErr  error
}

// New builds a client rooted at baseURL.
func New(baseURL string) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	return &Client{
		http:   httpClient,
		tracer: otel.Tracer(tracerName),
	}, nil
}

// Close releases idle connections. It is safe to call more than once.
func (c *Client) Close() error {
	if c == nil || c.http == nil {
		return nil
	}
	c.closeOnce.Do(func() {
		c.closeErr = c.http.Close()
	})
	return c.closeErr
}

// Register posts a new user. The confirmation password is never sent.
func (c *Client) Register(ctx context.Context, user registration.NewUser) error {
	ctx, span := c.tracer.Start(ctx, "userapi.Register", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	// The API's error body is JSON whatever Content-Type it is labelled with.
	var body errorBody
	req := c.request(ctx).
		SetBody(user).
		SetError(&body).
		SetForceResponseContentType("application/json")
	res, err := req.Post(usersPath)
	return finish(span, res, err, &body, true)
}

// Activate confirms the account identified by token.
func (c *Client) Activate(ctx context.Context, token string) error {
	ctx, span := c.tracer.Start(ctx, "userapi.Activate", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	res, err := c.request(ctx).
		SetPathParam("token", token).
		Post(activationPath)
	return finish(span, res, redactToken(err), nil, false)
}

// redactToken keeps the activation token out of transport error text, which
// ends up in logs and spans.
func redactToken(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	if idx := strings.Index(urlErr.URL, activationPrefix); idx >= 0 {
		urlErr.URL = urlErr.URL[:idx] + activationPath
	}
	return err
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if lang := AcceptLanguage(ctx); lang != "" {
		req.SetHeader("Accept-Language", lang)
	}
	headers := http.Header{}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(headers))
	for key := range headers {
		req.SetHeader(key, headers.Get(key))
	}
	return req
}

// finish maps a response to nil, a validation failure or a transport failure.
func finish(span trace.Span, res *resty.Response, err error, body *errorBody, acceptValidation bool) error {
	status := 0
	if res != nil {
		status = res.StatusCode()
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return &registration.TransportFailure{StatusCode: status, Cause: err}
	}
	if res.IsSuccess() {
		return nil
	}
	span.SetStatus(codes.Error, http.StatusText(status))
	if acceptValidation && body != nil && body.ValidationErrors != nil && status >= 400 && status < 500 {
		return &registration.ValidationFailure{Errors: body.ValidationErrors}
	}
	return &registration.TransportFailure{StatusCode: status, Cause: fmt.Errorf("unexpected status %d", status)}
}
