package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/givepenny/campaign-signup-helper/pkg/circuitbreaker"
	apperrors "github.com/givepenny/campaign-signup-helper/pkg/errors"
	"github.com/givepenny/campaign-signup-helper/pkg/logger"
	"github.com/givepenny/campaign-signup-helper/pkg/metrics"
	"github.com/givepenny/campaign-signup-helper/pkg/retry"
	"github.com/givepenny/campaign-signup-helper/pkg/tracing"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const maxErrorBodyBytes = 512

// APIClient talks JSON to a single campaign service rooted at baseURL.
// Every call goes through the configured retry policy (3 retries, 500ms
// apart by default) and, when enabled, a circuit breaker.
type APIClient struct {
	service    string
	baseURL    string
	httpClient Client
	retry      retry.Config
	breaker    *gobreaker.CircuitBreaker
}

// Option configures an APIClient
type Option func(*APIClient)

// WithRetry overrides the retry policy. RetryableErrors is ignored: which
// failures are retried depends on the request method.
func WithRetry(cfg retry.Config) Option {
	return func(c *APIClient) {
		c.retry = cfg
	}
}

// WithCircuitBreaker guards every call with a breaker named after the service
func WithCircuitBreaker() Option {
	return func(c *APIClient) {
		cfg := circuitbreaker.DefaultConfig(c.service)
		cfg.IsSuccessful = func(err error) bool {
			// 4xx answers mean the service is up
			code := apperrors.StatusCode(err)
			return err == nil || (code >= 400 && code < 500)
		}
		c.breaker = circuitbreaker.NewCircuitBreaker(cfg)
	}
}

// NewAPIClient creates a client for the service at baseURL
func NewAPIClient(service, baseURL string, httpClient Client, opts ...Option) (*APIClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("empty base URL provided for %s", service)
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL for %s: %w", service, err)
	}
	if httpClient == nil {
		httpClient = NewStandardClient()
	}

	c := &APIClient{
		service:    service,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		retry:      retry.CampaignAPIConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Service returns the name the client reports in logs and metrics
func (c *APIClient) Service() string {
	return c.service
}

// GetJSON issues a GET and decodes the JSON response into out
func (c *APIClient) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// PutJSON issues a PUT with body encoded as JSON
func (c *APIClient) PutJSON(ctx context.Context, path string, body any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, nil)
}

// PatchJSON issues a PATCH with body encoded as JSON
func (c *APIClient) PatchJSON(ctx context.Context, path string, body any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, nil)
}

func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request body: %w", c.service, err)
		}
		payload = encoded
	}

	ctx, span := tracing.StartSpan(ctx, c.service+" "+method,
		attribute.String("http.request.method", method),
		attribute.String("url.full", target))

	retryConfig := c.retry
	retryConfig.RetryableErrors = retryableFor(method)
	operation := method + " " + c.service

	_, err := circuitbreaker.Execute(c.breaker, func() (struct{}, error) {
		return struct{}{}, retry.Do(ctx, retryConfig, operation, func() error {
			return c.attempt(ctx, method, target, payload, out)
		})
	})

	tracing.EndSpan(span, err)
	return err
}

// attempt performs one round trip
func (c *APIClient) attempt(ctx context.Context, method, target string, payload []byte, out any) error {
	start := time.Now()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", c.service, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(method, "error", start, err, zap.String("url", target))
		return err
	}
	defer resp.Body.Close()

	status := strconv.Itoa(resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		//nolint:errcheck // best effort, the status code is what matters
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		statusErr := &apperrors.StatusError{
			Method:     method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
		c.record(method, status, start, statusErr, zap.String("url", target))
		return statusErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.record(method, status, start, err, zap.String("url", target))
			return fmt.Errorf("failed to decode %s response: %w", c.service, err)
		}
	}

	c.record(method, status, start, nil, zap.String("url", target))
	return nil
}

func (c *APIClient) record(method, status string, start time.Time, err error, fields ...zap.Field) {
	duration := metrics.MeasureDuration(start)
	metrics.APIClientRequestDuration.WithLabelValues(c.service, method, status).Observe(duration)
	metrics.APIClientRequestTotal.WithLabelValues(c.service, method, status).Inc()

	logStatus := "success"
	if err != nil {
		logStatus = "error"
		fields = append(fields, zap.Error(err))
	}
	logger.LogAPICall(c.service, method, logStatus, duration, fields...)
}

// retryableFor retries network errors for every method and 5xx responses
// for idempotent methods only.
func retryableFor(method string) func(error) bool {
	return func(err error) bool {
		if !retry.IsRetryable(err) {
			return false
		}

		var statusErr *apperrors.StatusError
		if errors.As(err, &statusErr) {
			return statusErr.StatusCode >= 500 && isIdempotent(method)
		}

		// Encoding problems will not fix themselves
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
			return false
		}

		return true
	}
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}
