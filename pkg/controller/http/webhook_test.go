package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	httpctrl "github.com/prato-lab/prato/pkg/controller/http"
	"github.com/prato-lab/prato/pkg/repository/memory"
	"github.com/prato-lab/prato/pkg/usecase"
)

func postWebhook(t *testing.T, srv *httpctrl.Server, body []byte) (int, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/hooks/whatsapp", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var resp struct {
		Message struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"message"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Value(t, resp.Message.Type).Equal("text")

	return rec.Code, resp.Message.Text
}

func TestWebhook(t *testing.T) {
	uc := usecase.New(memory.New())
	srv := httpctrl.New(uc)

	t.Run("first contact returns the onboarding reply", func(t *testing.T) {
		body := []byte(`{
			"payload": {
				"sender": {"phone": "5511999990000"},
				"payload": {"text": "Cantina da Rosa"}
			}
		}`)

		status, text := postWebhook(t, srv, body)
		gt.Value(t, status).Equal(http.StatusOK)
		gt.S(t, text).Contains("Cantina da Rosa")
	})

	t.Run("unrecognized payload answers 200 with not-received text", func(t *testing.T) {
		status, text := postWebhook(t, srv, []byte(`{"event": "status", "status": "delivered"}`))
		gt.Value(t, status).Equal(http.StatusOK)
		gt.Value(t, text).Equal(usecase.DefaultMessages().NotReceived)
	})

	t.Run("malformed body answers 200 with not-received text", func(t *testing.T) {
		status, text := postWebhook(t, srv, []byte("not a json body"))
		gt.Value(t, status).Equal(http.StatusOK)
		gt.Value(t, text).Equal(usecase.DefaultMessages().NotReceived)
	})

	t.Run("custom messages override controller texts", func(t *testing.T) {
		msgs := usecase.DefaultMessages()
		msgs.NotReceived = "Não entendi o formato."
		custom := httpctrl.New(usecase.New(memory.New()), httpctrl.WithMessages(msgs))

		status, text := postWebhook(t, custom, []byte(`{}`))
		gt.Value(t, status).Equal(http.StatusOK)
		gt.Value(t, text).Equal("Não entendi o formato.")
	})
}

func TestHealth(t *testing.T) {
	srv := httpctrl.New(usecase.New(memory.New()))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusOK)
	gt.Value(t, rec.Body.String()).Equal("OK")
}
