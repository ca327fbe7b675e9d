package sms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrMissingRecipient = errors.New("sms recipient and message are required")

// GatewayError is a non-zero status returned by the SMS gateway.
type GatewayError struct {
	Status      string
	Description string
}

func (e GatewayError) Error() string {
	return fmt.Sprintf("sms gateway status %s: %s", e.Status, e.Description)
}

// Client posts messages to an HTTP SMS gateway that answers with a
// "status_code|description" body, where status 0 means accepted.
type Client struct {
	URL        string
	Username   string
	Password   string
	HTTPClient *http.Client
}

func NewClient(gatewayURL, username, password string) *Client {
	return &Client{
		URL:        gatewayURL,
		Username:   username,
		Password:   password,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Send(ctx context.Context, to, message string) error {
	if to == "" || message == "" {
		return ErrMissingRecipient
	}

	form := url.Values{
		"username": {c.Username},
		"password": {c.Password},
		"message":  {message},
		"msisdn":   {to},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("post sms: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return fmt.Errorf("read sms response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sms gateway returned HTTP %d", resp.StatusCode)
	}
	return ParseResponse(string(body))
}

// ParseResponse interprets a gateway reply such as "0|IN_PROGRESS|12345".
func ParseResponse(body string) error {
	parts := strings.SplitN(strings.TrimSpace(body), "|", 3)
	status := strings.TrimSpace(parts[0])
	description := ""
	if len(parts) > 1 {
		description = strings.TrimSpace(parts[1])
	}
	if status != "0" {
		return GatewayError{Status: status, Description: description}
	}
	return nil
}
