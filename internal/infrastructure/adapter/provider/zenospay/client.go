package zenospay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/payment"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/signature"
)

const (
	// CreateQrisPath is both the request path and the path that is signed
	CreateQrisPath = "/api/create/qris"

	// Headers sent with every signed call
	HeaderTimestamp = "X-TIMESTAMP"
	HeaderSignature = "X-SIGNATURE"
	HeaderPartnerID = "X-PARTNER-ID"

	currencyIDR      = "IDR"
	defaultTimeout   = 30 * time.Second
	maxResponseBytes = 1 << 20
	bodySnippetLimit = 2048
)

// Config holds the outbound settings of the provider client
type Config struct {
	BaseURL   string
	PartnerID string
	Timeout   time.Duration
}

// createQrisPayload is the request body of the QRIS creation call
type createQrisPayload struct {
	MerchantTransactionID string `json:"merchant_transaction_id"`
	Amount                string `json:"amount"`
	Currency              string `json:"currency"`
	Description           string `json:"description"`
	CustomerName          string `json:"customer_name"`
	ProductName           string `json:"product_name"`
}

// Client calls the Zenospay merchant API
type Client struct {
	cfg          Config
	codec        *signature.Codec
	httpClient   *http.Client
	timeProvider core.TimeProvider
	logger       core.Logger
	metrics      *metrics.Metrics
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMetrics records call latency by outcome
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a provider client. A zero timeout means 30 seconds.
func NewClient(
	cfg Config,
	codec *signature.Codec,
	timeProvider core.TimeProvider,
	logger core.Logger,
	opts ...Option,
) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	c := &Client{
		cfg:          cfg,
		codec:        codec,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		timeProvider: timeProvider,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateQrisPayment performs one signed QRIS creation call. It never retries.
func (c *Client) CreateQrisPayment(ctx context.Context, req payment.QrisRequest) (*payment.QrisResult, error) {
	timestamp := strconv.FormatInt(c.timeProvider.Now().Unix(), 10)

	body, sig, err := c.codec.SignPayload(http.MethodPost, CreateQrisPath, createQrisPayload{
		MerchantTransactionID: req.ReferenceID,
		Amount:                strconv.FormatInt(req.Amount, 10),
		Currency:              currencyIDR,
		Description:           req.Description,
		CustomerName:          req.PayerLabel,
		ProductName:           req.QuantityLabel,
	}, timestamp)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+CreateQrisPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", errs.ErrConfiguration, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(HeaderTimestamp, timestamp)
	httpReq.Header.Set(HeaderSignature, sig)
	if c.cfg.PartnerID != "" {
		httpReq.Header.Set(HeaderPartnerID, c.cfg.PartnerID)
	}

	c.logger.Debug("Calling payment provider", map[string]any{
		"merchant_reference": req.ReferenceID,
		"amount":             req.Amount,
		"endpoint":           CreateQrisPath,
	})

	start := c.timeProvider.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		providerErr := classifyTransportError(err)
		c.observe(providerErr, start)
		return nil, providerErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		providerErr := classifyTransportError(err)
		c.observe(providerErr, start)
		return nil, providerErr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		providerErr := errs.NewProviderError(errs.ProviderBadGateway, resp.StatusCode, snippet(raw), nil)
		c.observe(providerErr, start)
		return nil, providerErr
	}

	c.observe(nil, start)
	return NormalizeQrisResponse(decodeLoose(raw)), nil
}

func (c *Client) observe(err error, start time.Time) {
	outcome := "ok"
	if pe, ok := errs.AsProviderError(err); ok {
		outcome = string(pe.Kind)
	}
	c.metrics.ObserveProvider("create_qris", outcome, c.timeProvider.Since(start))
}

// classifyTransportError separates timeouts from unreachable endpoints
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return errs.NewProviderError(errs.ProviderTimeout, 0, "", err)
	}
	return errs.NewProviderError(errs.ProviderUnavailable, 0, "", err)
}

// decodeLoose returns the decoded JSON document, or the raw text when the body is not JSON
func decodeLoose(raw []byte) any {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return string(raw)
	}
	return v
}

func snippet(raw []byte) string {
	if len(raw) > bodySnippetLimit {
		return string(raw[:bodySnippetLimit])
	}
	return string(raw)
}

var _ payment.Provider = (*Client)(nil)
