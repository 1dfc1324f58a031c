package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/prato-lab/prato/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// MessagesConfig holds the optional reply-text override file
type MessagesConfig struct {
	path string
}

// Flags returns CLI flags for reply text configuration
func (m *MessagesConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "messages-file",
			Usage:       "TOML file overriding the canned reply texts",
			Sources:     cli.EnvVars("PRATO_MESSAGES_FILE"),
			Destination: &m.path,
		},
	}
}

// Configure loads the reply texts. Without an override file the built-in
// Portuguese defaults are returned. Override files are applied on top of
// the defaults, so partial files only replace the keys they name.
func (m *MessagesConfig) Configure() (*usecase.Messages, error) {
	if m.path == "" {
		return usecase.DefaultMessages(), nil
	}

	raw, err := os.ReadFile(m.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read messages file", goerr.V("path", m.path))
	}

	msgs := usecase.DefaultMessages()
	if err := toml.Unmarshal(raw, msgs); err != nil {
		return nil, goerr.Wrap(err, "failed to parse messages file", goerr.V("path", m.path))
	}
	if err := msgs.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid messages file", goerr.V("path", m.path))
	}

	return msgs, nil
}
