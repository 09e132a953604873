package leadclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nxtgenhub/lead-relay/internal/entity"
	"github.com/nxtgenhub/lead-relay/internal/logger"
)

const DefaultBaseURL = "http://localhost:3001/api"

const (
	msgNetwork     = "Network error. Please check your connection and try again."
	msgSendFailed  = "Failed to send message. Please try again later."
	maxResponseLen = 64 << 10
)

// Client posts dispatch requests to the relay.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Outcome is the result of one submit. Err is a message fit for the user
// and is empty when OK.
type Outcome struct {
	OK               bool
	ConfirmationSent bool
	Err              string
	// Network is set when the relay was never reached or its answer was
	// unreadable.
	Network bool
}

// Submit sends req to <BaseURL>/send-email. Every failure is folded into
// the Outcome; it never returns an error.
func (c *Client) Submit(ctx context.Context, req entity.DispatchRequest) Outcome {
	payload, err := json.Marshal(req)
	if err != nil {
		return Outcome{Err: msgSendFailed}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/send-email", bytes.NewReader(payload))
	if err != nil {
		logger.Log.Error("failed to build relay request", "error", err)
		return Outcome{Err: msgNetwork, Network: true}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(httpReq)
	if err != nil {
		logger.Log.Error("relay request failed", "error", err)
		return Outcome{Err: msgNetwork, Network: true}
	}
	defer resp.Body.Close()

	var result entity.DispatchResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseLen)).Decode(&result); err != nil {
		logger.Log.Error("unreadable relay response", "status", resp.StatusCode, "error", err)
		return Outcome{Err: fmt.Sprintf("Unexpected response from server (HTTP %d).", resp.StatusCode), Network: true}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !result.Success {
		msg := result.Error
		if msg == "" {
			msg = msgSendFailed
		}
		logger.Log.Warn("relay rejected request", "status", resp.StatusCode, "error", msg)
		return Outcome{Err: msg}
	}

	return Outcome{OK: true, ConfirmationSent: result.ConfirmationSent}
}
