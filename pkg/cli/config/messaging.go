package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/prato-lab/prato/pkg/service/messaging"
	"github.com/urfave/cli/v3"
)

// Messaging holds configuration for the outbound WhatsApp gateway
type Messaging struct {
	endpoint string
	apiKey   string
	source   string
}

// Flags returns CLI flags for messaging configuration
func (m *Messaging) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "messaging-endpoint",
			Usage:       "Gateway endpoint URL for outbound WhatsApp messages",
			Sources:     cli.EnvVars("PRATO_MESSAGING_ENDPOINT"),
			Destination: &m.endpoint,
		},
		&cli.StringFlag{
			Name:        "messaging-api-key",
			Usage:       "API key for the outbound messaging gateway",
			Sources:     cli.EnvVars("PRATO_MESSAGING_API_KEY"),
			Destination: &m.apiKey,
		},
		&cli.StringFlag{
			Name:        "messaging-source",
			Usage:       "Source phone number registered with the gateway",
			Sources:     cli.EnvVars("PRATO_MESSAGING_SOURCE"),
			Destination: &m.source,
		},
	}
}

// LogAttrs returns log attributes for the messaging configuration.
// The API key is never logged.
func (m *Messaging) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("endpoint", m.endpoint),
		slog.String("source", m.source),
		slog.Bool("api_key_set", m.apiKey != ""),
	}
}

// Configure creates a messaging client from the configured flags.
// Returns nil if no endpoint is configured (replies ride the webhook
// response only).
func (m *Messaging) Configure() (messaging.Service, error) {
	if m.endpoint == "" {
		return nil, nil
	}
	if m.apiKey == "" || m.source == "" {
		return nil, goerr.New("messaging-api-key and messaging-source are required when messaging-endpoint is set")
	}

	return messaging.New(m.endpoint, m.apiKey, m.source)
}
