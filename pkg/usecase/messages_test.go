package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pelletier/go-toml/v2"
	"github.com/prato-lab/prato/pkg/usecase"
)

func TestDefaultMessages(t *testing.T) {
	gt.NoError(t, usecase.DefaultMessages().Validate())
}

func TestMessagesValidate(t *testing.T) {
	m := usecase.DefaultMessages()
	m.DefaultReply = ""
	gt.Error(t, m.Validate())
}

func TestMessagesTOMLOverride(t *testing.T) {
	raw := []byte(`
default_reply = "Anotado!"
file_received = "Arquivo guardado."
`)

	m := usecase.DefaultMessages()
	gt.NoError(t, toml.Unmarshal(raw, m)).Required()
	gt.NoError(t, m.Validate())

	gt.Value(t, m.DefaultReply).Equal("Anotado!")
	gt.Value(t, m.FileReceived).Equal("Arquivo guardado.")
	// Untouched keys keep their defaults
	gt.Value(t, m.NotReceived).Equal("Mensagem não recebida corretamente.")
}
