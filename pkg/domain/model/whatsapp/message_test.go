package whatsapp_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/prato-lab/prato/pkg/domain/model/whatsapp"
)

func TestParseWebhookMeta(t *testing.T) {
	t.Run("text message", func(t *testing.T) {
		body := []byte(`{
			"entry": [{
				"changes": [{
					"value": {
						"messages": [{
							"from": "5511999990000",
							"text": {"body": "  produto: tomate, quantidade: 2kg  "}
						}]
					}
				}]
			}]
		}`)

		msg := whatsapp.ParseWebhook(body)
		gt.Value(t, msg).NotNil().Required()
		gt.Value(t, msg.Sender()).Equal("5511999990000")
		gt.Value(t, msg.Text()).Equal("produto: tomate, quantidade: 2kg")
		gt.Array(t, msg.Attachments()).Length(0)
	})

	t.Run("image attachment gets default filename", func(t *testing.T) {
		body := []byte(`{
			"entry": [{
				"changes": [{
					"value": {
						"messages": [{
							"from": "5511999990000",
							"text": {"body": "segue a foto"},
							"image": {"link": "https://cdn.example.com/img/1", "mime_type": "image/jpeg"}
						}]
					}
				}]
			}]
		}`)

		msg := whatsapp.ParseWebhook(body)
		gt.Value(t, msg).NotNil().Required()
		gt.Array(t, msg.Attachments()).Length(1).Required()
		att := msg.Attachments()[0]
		gt.Value(t, att.Type).Equal("image")
		gt.Value(t, att.URL).Equal("https://cdn.example.com/img/1")
		gt.Value(t, att.Filename).Equal("image.jpg")
	})

	t.Run("document attachment keeps its filename", func(t *testing.T) {
		body := []byte(`{
			"entry": [{
				"changes": [{
					"value": {
						"messages": [{
							"from": "5511999990000",
							"text": {"body": "planilha de vendas"},
							"document": {"link": "https://cdn.example.com/doc/1", "filename": "vendas.csv"}
						}]
					}
				}]
			}]
		}`)

		msg := whatsapp.ParseWebhook(body)
		gt.Value(t, msg).NotNil().Required()
		gt.Array(t, msg.Attachments()).Length(1).Required()
		att := msg.Attachments()[0]
		gt.Value(t, att.Type).Equal("document")
		gt.Value(t, att.Filename).Equal("vendas.csv")
	})

	t.Run("missing sender yields nil", func(t *testing.T) {
		body := []byte(`{
			"entry": [{
				"changes": [{
					"value": {
						"messages": [{
							"text": {"body": "sem remetente"}
						}]
					}
				}]
			}]
		}`)

		gt.Value(t, whatsapp.ParseWebhook(body)).Nil()
	})

	t.Run("empty messages array yields nil", func(t *testing.T) {
		body := []byte(`{"entry": [{"changes": [{"value": {"messages": []}}]}]}`)
		gt.Value(t, whatsapp.ParseWebhook(body)).Nil()
	})
}

func TestParseWebhookGupshup(t *testing.T) {
	t.Run("text message", func(t *testing.T) {
		body := []byte(`{
			"payload": {
				"sender": {"phone": "5511888880000"},
				"payload": {"text": "resumo semanal"}
			}
		}`)

		msg := whatsapp.ParseWebhook(body)
		gt.Value(t, msg).NotNil().Required()
		gt.Value(t, msg.Sender()).Equal("5511888880000")
		gt.Value(t, msg.Text()).Equal("resumo semanal")
	})

	t.Run("media without type or filename gets defaults", func(t *testing.T) {
		body := []byte(`{
			"payload": {
				"sender": {"phone": "5511888880000"},
				"payload": {
					"text": "segue o arquivo",
					"media": {"url": "https://cdn.gupshup.io/m/1"}
				}
			}
		}`)

		msg := whatsapp.ParseWebhook(body)
		gt.Value(t, msg).NotNil().Required()
		gt.Array(t, msg.Attachments()).Length(1).Required()
		att := msg.Attachments()[0]
		gt.Value(t, att.Type).Equal("document")
		gt.Value(t, att.Filename).Equal("file")
		gt.Value(t, att.URL).Equal("https://cdn.gupshup.io/m/1")
	})

	t.Run("missing text yields nil", func(t *testing.T) {
		body := []byte(`{
			"payload": {
				"sender": {"phone": "5511888880000"},
				"payload": {}
			}
		}`)

		gt.Value(t, whatsapp.ParseWebhook(body)).Nil()
	})
}

func TestParseWebhookEquivalence(t *testing.T) {
	// The same logical message must normalize identically regardless of
	// which provider shape carried it.
	meta := []byte(`{
		"entry": [{
			"changes": [{
				"value": {
					"messages": [{
						"from": "5511777770000",
						"text": {"body": "registrar venda, item: pizza, quantidade: 3"}
					}]
				}
			}]
		}]
	}`)
	gupshup := []byte(`{
		"payload": {
			"sender": {"phone": "5511777770000"},
			"payload": {"text": "registrar venda, item: pizza, quantidade: 3"}
		}
	}`)

	m1 := whatsapp.ParseWebhook(meta)
	m2 := whatsapp.ParseWebhook(gupshup)
	gt.Value(t, m1).NotNil().Required()
	gt.Value(t, m2).NotNil().Required()
	gt.Value(t, m1.Sender()).Equal(m2.Sender())
	gt.Value(t, m1.Text()).Equal(m2.Text())
}

func TestParseWebhookUnrecognized(t *testing.T) {
	cases := map[string][]byte{
		"not json":     []byte("not a json body"),
		"empty object": []byte(`{}`),
		"empty body":   []byte(``),
		"wrong shape":  []byte(`{"event": "status", "status": "delivered"}`),
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			gt.Value(t, whatsapp.ParseWebhook(body)).Nil()
		})
	}
}
