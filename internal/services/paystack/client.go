// Package paystack wraps the Paystack card-processor API. Only the two
// transaction operations the settlement flow needs are exposed; everything
// else the processor offers is out of scope.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"estatien/internal/config"
)

var (
	ErrMissingSecretKey = errors.New("paystack secret key not configured")

	// ErrGatewayRejected wraps the message Paystack returns when it
	// refuses an initialize or verify call.
	ErrGatewayRejected = errors.New("gateway rejected request")
)

const defaultTimeout = 30 * time.Second

// Client talks to the Paystack REST API. Construct it with an explicit
// config; it never reads the environment.
type Client struct {
	secretKey string
	baseURL   string
	http      *http.Client
}

func NewClient(cfg config.Paystack) (*Client, error) {
	if cfg.SecretKey == "" {
		return nil, ErrMissingSecretKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.paystack.co"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		secretKey: cfg.SecretKey,
		baseURL:   cfg.BaseURL,
		http:      &http.Client{Timeout: timeout},
	}, nil
}

// envelope is the common response wrapper Paystack uses.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Initialize creates a transaction on the gateway and returns the access
// code the payer uses to complete the charge out-of-band.
func (c *Client) Initialize(ctx context.Context, req InitializeRequest) (*InitializeData, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode initialize request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	var data InitializeData
	if err := c.do(httpReq, &data); err != nil {
		return nil, fmt.Errorf("failed to initialize transaction: %w", err)
	}
	return &data, nil
}

// VerifyTransaction asks the gateway for the current state of a charge.
// A non-success charge status is not an error; callers inspect the
// returned data.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*VerifyData, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)

	var data VerifyData
	if err := c.do(httpReq, &data); err != nil {
		return nil, fmt.Errorf("failed to verify transaction: %w", err)
	}
	return &data, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}
	if !env.Status {
		msg := env.Message
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("%w: %s", ErrGatewayRejected, msg)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode gateway data: %w", err)
		}
	}
	return nil
}
