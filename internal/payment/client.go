package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Intent is what the payment provider hands back once an intent exists:
// everything the confirmation step needs, nothing else.
type Intent struct {
	ClientSecret string  `json:"clientSecret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

// Client creates payment intents against the upstream provider endpoint.
// The provider protocol is opaque here: one authenticated POST, one intent
// back, any non-2xx aborts checkout.
type Client struct {
	baseURL string
	token   string
	appID   string
	client  *http.Client
}

func NewClient(baseURL, token, appID string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		appID:   appID,
		client:  &http.Client{Timeout: 20 * time.Second},
	}
}

func (c *Client) CreateIntent(ctx context.Context, payload any) (*Intent, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/eposnow/create-payment-intent",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-App-Id", c.appID)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment intent request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("payment endpoint returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var intent Intent
	if err := json.Unmarshal(raw, &intent); err != nil {
		return nil, fmt.Errorf("parse payment intent response: %w", err)
	}
	if intent.ClientSecret == "" {
		return nil, errors.New("payment endpoint returned no client secret")
	}

	return &intent, nil
}
