package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/portfolio-api/internal/apperr"
	"github.com/vasiliy-maslov/portfolio-api/internal/config"
)

const (
	SandboxURL = "https://sandbox.sslcommerz.com"
	LiveURL    = "https://securepay.sslcommerz.com"

	sessionPath   = "/gwprocess/v4/api.php"
	statusSuccess = "SUCCESS"
)

var (
	ErrSessionRejected    = apperr.New(apperr.ErrUpstream, "payment gateway rejected the session")
	ErrGatewayUnavailable = apperr.New(apperr.ErrUpstream, "payment gateway unavailable")
)

// Client opens hosted checkout sessions on SSLCommerz.
type Client struct {
	http      *resty.Client
	storeID   string
	storePass string
}

func NewClient(cfg config.PaymentConfig) *Client {
	baseURL := SandboxURL
	if cfg.IsLive {
		baseURL = LiveURL
	}
	return NewClientWithBaseURL(cfg, baseURL)
}

func NewClientWithBaseURL(cfg config.PaymentConfig, baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:      httpClient,
		storeID:   cfg.StoreID,
		storePass: cfg.StorePass,
	}
}

// InitSession registers req with the gateway and returns the page the buyer must be
// redirected to.
func (c *Client) InitSession(ctx context.Context, req SessionRequest) (*Session, error) {
	form := req.Form()
	form["store_id"] = c.storeID
	form["store_passwd"] = c.storePass

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(form).
		Post(sessionPath)
	if err != nil {
		log.Error().Err(err).Str("transaction_id", req.TranID).Msg("payment: gateway request failed")
		return nil, fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
	}

	if resp.IsError() {
		log.Error().Int("status_code", resp.StatusCode()).Str("transaction_id", req.TranID).Msg("payment: gateway returned an error status")
		return nil, fmt.Errorf("%w: http status %d", ErrGatewayUnavailable, resp.StatusCode())
	}

	var session Session
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		return nil, fmt.Errorf("%w: invalid response body: %w", ErrGatewayUnavailable, err)
	}

	if session.Status != statusSuccess || session.GatewayPageURL == "" {
		log.Warn().
			Str("transaction_id", req.TranID).
			Str("status", session.Status).
			Str("reason", session.FailedReason).
			Msg("payment: session rejected")
		return nil, fmt.Errorf("%w: %s", ErrSessionRejected, session.FailedReason)
	}

	log.Info().Str("transaction_id", req.TranID).Str("session_key", session.SessionKey).Msg("payment: session created")
	return &session, nil
}
