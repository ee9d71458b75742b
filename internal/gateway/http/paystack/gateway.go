package paystack

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

	"swiftrider/internal/apperr"
	"swiftrider/internal/entities"
	"swiftrider/internal/gateway"
	"swiftrider/internal/pkg/config"
	retrierconfig "swiftrider/pkg/retrier"
	"swiftrider/pkg/retrier/backoff_adapter"
)

const serviceName = "paystack"

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 2

	maxResponseSize = 1 << 20
)

// statusError - Paystack ответил не 2xx.
type statusError struct {
	code    int
	message string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("paystack responded %d: %s", e.code, e.message)
}

type Gateway struct {
	client      httpClient
	retrier     retrier
	baseURL     string
	secretKey   string
	callbackURL string
	timeout     time.Duration
}

func New(client httpClient, cfg *config.Paystack) *Gateway {
	return &Gateway{
		client: client,
		retrier: backoff_adapter.New(retrierconfig.Config{
			InitialInterval: initialInterval,
			MaxInterval:     maxInterval,
			MaxElapsedTime:  maxElapsedTime,
			Randomization:   randomization,
			Multiplier:      multiplier,
			MaxRetries:      maxRetries,
			ShouldRetry:     isRetryable,
		}),
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:   cfg.SecretKey,
		callbackURL: cfg.CallbackURL,
		timeout:     cfg.Timeout,
	}
}

func (g *Gateway) Initialize(ctx context.Context, charge entities.GatewayCharge) (*entities.GatewayInitialization, error) {
	body, err := json.Marshal(initializeRequest{
		Email:       charge.Email,
		Amount:      charge.AmountMinor,
		Reference:   charge.Reference,
		CallbackURL: g.callbackURL,
		Metadata:    charge.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("paystack initialize, encode request: %w", err)
	}

	var resp envelope
	err = g.executeWithMetrics(ctx, "initialize", func(ctx context.Context) error {
		return g.do(ctx, http.MethodPost, "/transaction/initialize", body, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("paystack initialize: %w: %w", apperr.ErrUpstreamUnavailable, err)
	}
	if !resp.Status {
		return nil, fmt.Errorf("paystack initialize: %w: %s", apperr.ErrUpstreamUnavailable, resp.Message)
	}

	var data initializeData
	err = json.Unmarshal(resp.Data, &data)
	if err != nil {
		return nil, fmt.Errorf("paystack initialize, decode data: %w: %w", apperr.ErrUpstreamUnavailable, err)
	}

	reference := data.Reference
	if reference == "" {
		reference = charge.Reference
	}

	return &entities.GatewayInitialization{
		Reference:        reference,
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Raw:              resp.Data,
	}, nil
}

func (g *Gateway) Verify(ctx context.Context, reference string) (*entities.GatewayVerification, error) {
	var resp envelope
	err := g.executeWithMetrics(ctx, "verify", func(ctx context.Context) error {
		return g.do(ctx, http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("paystack verify %s: %w: %w", reference, apperr.ErrUpstreamUnavailable, err)
	}
	if !resp.Status {
		return nil, fmt.Errorf("paystack verify %s: %w: %s", reference, apperr.ErrUpstreamUnavailable, resp.Message)
	}

	var data verifyData
	err = json.Unmarshal(resp.Data, &data)
	if err != nil {
		return nil, fmt.Errorf("paystack verify, decode data: %w: %w", apperr.ErrUpstreamUnavailable, err)
	}

	return &entities.GatewayVerification{
		Reference: reference,
		Status:    data.Status,
		Raw:       resp.Data,
	}, nil
}

// do выполняет одну попытку с собственным таймаутом.
func (g *Gateway) do(ctx context.Context, method, path string, body []byte, out *envelope) error {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return permanent{err}
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var failed envelope
		message := http.StatusText(resp.StatusCode)
		if json.Unmarshal(raw, &failed) == nil && failed.Message != "" {
			message = failed.Message
		}
		return &statusError{code: resp.StatusCode, message: message}
	}

	err = json.Unmarshal(raw, out)
	if err != nil {
		return permanent{fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// permanent - ошибка, которую бессмысленно повторять.
type permanent struct{ err error }

func (p permanent) Error() string { return p.err.Error() }
func (p permanent) Unwrap() error { return p.err }

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	var p permanent
	if errors.As(err, &p) {
		return false
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return statusErr.code == http.StatusTooManyRequests || statusErr.code >= http.StatusInternalServerError
	}

	// сетевые ошибки и таймаут попытки
	return true
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempts uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempts++
		return fn(ctx)
	})

	gateway.Observe(serviceName, method, responseCode(err), start, attempts)
	return err
}

func responseCode(err error) string {
	if err == nil {
		return "200"
	}
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.code)
	}
	return "error"
}
