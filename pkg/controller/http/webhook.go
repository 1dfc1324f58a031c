package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/prato-lab/prato/pkg/domain/model/whatsapp"
	"github.com/prato-lab/prato/pkg/utils/errutil"
)

type webhookMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type webhookResponse struct {
	Message webhookMessage `json:"message"`
}

// handleWebhook processes one inbound WhatsApp webhook call. Provider
// retry storms are avoided by answering 200 for every payload, carrying
// the outcome in the response text instead of the status code.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		errutil.Handle(ctx, goerr.Wrap(err, "failed to read webhook body"), "webhook read failed")
		s.respond(w, s.messages.NotReceived)
		return
	}

	msg := whatsapp.ParseWebhook(body)
	if msg == nil {
		s.respond(w, s.messages.NotReceived)
		return
	}

	reply, err := s.uc.ProcessTurn(ctx, msg)
	if err != nil {
		errutil.Handle(ctx, goerr.Wrap(err, "failed to process turn",
			goerr.V("sender", msg.Sender()),
		), "turn processing failed")
		s.respond(w, s.messages.InternalError)
		return
	}

	s.respond(w, reply)
}

func (s *Server) respond(w http.ResponseWriter, text string) {
	resp := webhookResponse{
		Message: webhookMessage{
			Type: "text",
			Text: text,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp) //nolint:errcheck // header already committed
}
