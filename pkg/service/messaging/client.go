package messaging

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/prato-lab/prato/pkg/utils/safe"
)

// Service sends outbound messages to a WhatsApp provider.
// Delivery is fire-and-forget from the turn's perspective: callers log
// failures but never fail the inbound webhook because of them.
type Service interface {
	// Send delivers a text message to the destination phone number
	Send(ctx context.Context, destination, text string) error
}

// client implements Service against the Gupshup message API
type client struct {
	endpoint   string
	apiKey     string
	source     string
	channel    string
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*client)

// WithHTTPClient replaces the HTTP client, used for testing
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithChannel overrides the provider channel (default "whatsapp")
func WithChannel(channel string) Option {
	return func(c *client) {
		c.channel = channel
	}
}

// New creates a new messaging Service
func New(endpoint, apiKey, source string, opts ...Option) (Service, error) {
	if endpoint == "" {
		return nil, goerr.New("messaging endpoint is required")
	}
	if source == "" {
		return nil, goerr.New("messaging source number is required")
	}

	c := &client{
		endpoint: endpoint,
		apiKey:   apiKey,
		source:   source,
		channel:  "whatsapp",
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *client) Send(ctx context.Context, destination, text string) error {
	form := url.Values{}
	form.Set("channel", c.channel)
	form.Set("source", c.source)
	form.Set("destination", destination)
	form.Set("message", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return goerr.Wrap(err, "failed to build message request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to send message")
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return goerr.New("message API returned non-2xx status",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	return nil
}
