package paymentsync

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/smallbatch-apps/cashfloat/internal/usecase"
)

// Config holds QuickBooks connection settings.
type Config struct {
	BaseURL     string
	RealmID     string
	AccessToken string
	Timeout     time.Duration
	MaxAttempts int
}

// QuickBooksClient pushes recorded payments to the QuickBooks API. It
// implements usecase.PaymentSyncer and is strictly best-effort: attempts
// are bounded and the caller treats any returned error as a warning.
type QuickBooksClient struct {
	httpClient  *resty.Client
	realmID     string
	maxAttempts int
	logger      zerolog.Logger
	metrics     usecase.MetricsRecorder
}

// NewQuickBooksClient builds a QuickBooks payment client. metrics may be
// nil.
func NewQuickBooksClient(cfg Config, logger zerolog.Logger, metrics usecase.MetricsRecorder) *QuickBooksClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = usecase.PaymentSyncAttempts
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Authorization", "Bearer "+cfg.AccessToken).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &QuickBooksClient{
		httpClient:  restyClient,
		realmID:     cfg.RealmID,
		maxAttempts: maxAttempts,
		logger:      logger,
		metrics:     metrics,
	}
}

// apiError mirrors the QuickBooks fault payload.
type apiError struct {
	Fault struct {
		Error []struct {
			Message string `json:"Message"`
			Detail  string `json:"Detail"`
			Code    string `json:"code"`
		} `json:"Error"`
		Type string `json:"type"`
	} `json:"Fault"`
}

func (e *apiError) message() string {
	if len(e.Fault.Error) == 0 {
		return "unknown fault"
	}
	return e.Fault.Error[0].Message
}

// RecordPayment creates a Payment object against the invoice. The realm
// from the record wins over the configured default. Retries a bounded
// number of times on transport errors and 5xx responses; client errors
// fail immediately.
func (c *QuickBooksClient) RecordPayment(ctx context.Context, record usecase.PaymentRecord) error {
	realmID := c.realmID
	if record.RealmID != "" {
		realmID = record.RealmID
	}

	payload := map[string]any{
		"TotalAmt": record.Amount.StringFixed(2),
		"CustomerRef": map[string]string{
			"name": record.CustomerRef,
		},
		"PaymentMethodRef": map[string]string{
			"value": record.MethodRef,
		},
		"PrivateNote": "cash payment for invoice " + record.InvoiceRef,
	}

	operation := func() error {
		apiErr := new(apiError)

		resp, err := c.httpClient.R().
			SetContext(ctx).
			SetBody(payload).
			SetError(apiErr).
			Post(fmt.Sprintf("/v3/company/%s/payment", realmID))
		if err != nil {
			return fmt.Errorf("quickbooks payment request: %w", err)
		}

		if resp.StatusCode() >= http.StatusInternalServerError {
			return fmt.Errorf("quickbooks returned %d: %s", resp.StatusCode(), apiErr.message())
		}

		if resp.IsError() {
			return backoff.Permanent(fmt.Errorf("quickbooks rejected payment: %s", apiErr.message()))
		}

		return nil
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 100 * time.Millisecond
	exp.MaxInterval = 2 * time.Second

	b := backoff.WithMaxRetries(exp, uint64(c.maxAttempts-1))

	err := backoff.Retry(operation, backoff.WithContext(b, ctx))
	if err != nil {
		c.recordAttempt("failure")
		c.logger.Warn().
			Err(err).
			Str("invoice", record.InvoiceRef).
			Msg("payment sync failed after bounded attempts")
		return err
	}

	c.recordAttempt("success")
	c.logger.Debug().
		Str("invoice", record.InvoiceRef).
		Msg("payment synced to quickbooks")

	return nil
}

func (c *QuickBooksClient) recordAttempt(result string) {
	if c.metrics != nil {
		c.metrics.PaymentSyncAttempted(result)
	}
}

// NullSyncer is a PaymentSyncer that records nothing, used when no
// QuickBooks connection is configured.
type NullSyncer struct{}

// NewNullSyncer creates a new NullSyncer.
func NewNullSyncer() *NullSyncer {
	return &NullSyncer{}
}

// RecordPayment does nothing.
func (s *NullSyncer) RecordPayment(ctx context.Context, record usecase.PaymentRecord) error {
	return nil
}
