// Package sms delivers one-time codes through an external SMS provider.
// Delivery is a single bounded attempt with no internal retry; the documented
// user-facing recovery path is re-registration.
package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"disha/internal/platform/logger"
)

// Sender is the messaging collaborator the registration service depends on.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

// HTTPSender sends messages through a form-POST SMS gateway.
type HTTPSender struct {
	apiURL string
	apiKey string
	sender string
	client *http.Client
}

// NewHTTPSender builds a provider client with a bounded timeout so delivery
// never blocks the registration flow indefinitely.
func NewHTTPSender(apiURL, apiKey, sender string, client *http.Client) *HTTPSender {
	return &HTTPSender{apiURL: apiURL, apiKey: apiKey, sender: sender, client: client}
}

type providerResponse struct {
	Code int `json:"code"`
	Data struct {
		MessageID string `json:"messageId"`
	} `json:"data"`
}

func (s *HTTPSender) Send(ctx context.Context, to, body string) error {
	form := url.Values{
		"apiKey":    {s.apiKey},
		"recipient": {to},
		"text":      {body},
	}
	if s.sender != "" {
		form.Set("from", s.sender)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send sms request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return fmt.Errorf("read sms response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sms provider returned status %d", resp.StatusCode)
	}

	var result providerResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return fmt.Errorf("parse sms response: %w", err)
	}
	if result.Code != 0 {
		return fmt.Errorf("sms provider returned error code %d", result.Code)
	}
	return nil
}

// LogSender logs instead of delivering. Used in development when no provider
// is configured. The message body is not logged because it carries the code.
type LogSender struct {
	Logger *slog.Logger
}

func (s LogSender) Send(ctx context.Context, to, _ string) error {
	s.Logger.InfoContext(ctx, "sms delivery skipped (no provider configured)",
		"to", logger.MaskPhone(to),
	)
	return nil
}
