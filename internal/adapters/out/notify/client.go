// Package notify delivers user-facing messages through the messaging
// gateway's HTTP API. Delivery is best effort: the caller gets an explicit
// result and decides whether to log or ignore a failure, but business
// operations never depend on it.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"orderdesk/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Client pushes plain-text messages to recipients via the gateway's
// sendMessage endpoint. Each attempt carries a correlation identifier so
// delivery failures can be traced across services.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a notification client for the given gateway.
func NewClient(baseURL, token string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is required")
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// Notify sends one message. The returned result says whether the gateway
// acknowledged delivery; it never panics and never retries.
func (c *Client) Notify(ctx context.Context, recipientID int64, text string) ports.NotifyResult {
	deliveryID := uuid.NewString()

	body, err := json.Marshal(sendMessageRequest{ChatID: recipientID, Text: text})
	if err != nil {
		return ports.NotifyResult{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/sendMessage", bytes.NewReader(body))
	if err != nil {
		return ports.NotifyResult{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Delivery-Id", deliveryID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.NotifyResult{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("gateway returned status %d", resp.StatusCode)
		slog.Debug("notification refused by gateway",
			"recipientID", recipientID,
			"deliveryID", deliveryID,
			"status", resp.StatusCode)
		return ports.NotifyResult{Err: err}
	}

	return ports.NotifyResult{Delivered: true}
}
