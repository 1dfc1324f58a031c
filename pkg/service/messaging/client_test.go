package messaging_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/prato-lab/prato/pkg/service/messaging"
)

func TestSend(t *testing.T) {
	t.Run("posts the form fields and api key", func(t *testing.T) {
		var gotAPIKey, gotChannel, gotSource, gotDestination, gotMessage string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Value(t, r.Method).Equal(http.MethodPost)
			gt.NoError(t, r.ParseForm()).Required()
			gotAPIKey = r.Header.Get("apikey")
			gotChannel = r.FormValue("channel")
			gotSource = r.FormValue("source")
			gotDestination = r.FormValue("destination")
			gotMessage = r.FormValue("message")
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		svc, err := messaging.New(srv.URL, "test-key", "5511000000000")
		gt.NoError(t, err).Required()

		gt.NoError(t, svc.Send(context.Background(), "5511999990000", "Recebido!"))
		gt.Value(t, gotAPIKey).Equal("test-key")
		gt.Value(t, gotChannel).Equal("whatsapp")
		gt.Value(t, gotSource).Equal("5511000000000")
		gt.Value(t, gotDestination).Equal("5511999990000")
		gt.Value(t, gotMessage).Equal("Recebido!")
	})

	t.Run("non-2xx response is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "invalid api key", http.StatusUnauthorized)
		}))
		defer srv.Close()

		svc, err := messaging.New(srv.URL, "bad-key", "5511000000000")
		gt.NoError(t, err).Required()

		gt.Error(t, svc.Send(context.Background(), "5511999990000", "oi"))
	})

	t.Run("endpoint is required", func(t *testing.T) {
		_, err := messaging.New("", "key", "5511000000000")
		gt.Error(t, err)
	})
}
