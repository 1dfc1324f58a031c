package whatsapp

import (
	"encoding/json"
	"strings"

	"github.com/prato-lab/prato/pkg/domain/model"
)

// Message is the canonical form of an inbound WhatsApp message, independent
// of which provider payload shape carried it.
type Message struct {
	text        string
	sender      string
	attachments []model.Attachment
}

// New creates a Message from already-normalized parts
func New(text, sender string, attachments ...model.Attachment) *Message {
	return &Message{
		text:        text,
		sender:      sender,
		attachments: attachments,
	}
}

// Text returns the message body
func (m *Message) Text() string {
	return m.text
}

// Sender returns the sender phone identifier
func (m *Message) Sender() string {
	return m.sender
}

// Attachments returns the media items referenced by the message
func (m *Message) Attachments() []model.Attachment {
	return m.attachments
}

// metaPayload is the Meta Cloud API webhook shape:
// entry[0].changes[0].value.messages[0]
type metaPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []metaMessage `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

type metaMessage struct {
	From string `json:"from"`
	Text struct {
		Body string `json:"body"`
	} `json:"text"`
	Image *struct {
		Link     string `json:"link"`
		MimeType string `json:"mime_type"`
	} `json:"image"`
	Document *struct {
		Link     string `json:"link"`
		Filename string `json:"filename"`
	} `json:"document"`
}

// gupshupPayload is the Gupshup webhook shape:
// payload.sender.phone / payload.payload.text
type gupshupPayload struct {
	Payload struct {
		Sender struct {
			Phone string `json:"phone"`
		} `json:"sender"`
		Payload struct {
			Text  string `json:"text"`
			Media *struct {
				URL      string `json:"url"`
				Filename string `json:"filename"`
				Type     string `json:"type"`
			} `json:"media"`
		} `json:"payload"`
	} `json:"payload"`
}

// ParseWebhook normalizes a raw inbound webhook body into a Message.
// It tries the Meta shape first, then Gupshup. Any unrecognized shape or
// missing required leaf field yields nil; parsing never fails loudly.
func ParseWebhook(body []byte) *Message {
	if msg := parseMeta(body); msg != nil {
		return msg
	}
	return parseGupshup(body)
}

func parseMeta(body []byte) *Message {
	var p metaPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil
	}
	if len(p.Entry) == 0 || len(p.Entry[0].Changes) == 0 {
		return nil
	}
	messages := p.Entry[0].Changes[0].Value.Messages
	if len(messages) == 0 {
		return nil
	}

	m := messages[0]
	if m.From == "" || m.Text.Body == "" {
		return nil
	}

	var attachments []model.Attachment
	if m.Image != nil {
		attachments = append(attachments, model.Attachment{
			Type:     "image",
			URL:      m.Image.Link,
			Filename: "image.jpg",
		})
	}
	if m.Document != nil {
		filename := m.Document.Filename
		if filename == "" {
			filename = "file"
		}
		attachments = append(attachments, model.Attachment{
			Type:     "document",
			URL:      m.Document.Link,
			Filename: filename,
		})
	}

	return New(strings.TrimSpace(m.Text.Body), m.From, attachments...)
}

func parseGupshup(body []byte) *Message {
	var p gupshupPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil
	}

	sender := p.Payload.Sender.Phone
	text := p.Payload.Payload.Text
	if sender == "" || text == "" {
		return nil
	}

	var attachments []model.Attachment
	if media := p.Payload.Payload.Media; media != nil {
		attType := media.Type
		if attType == "" {
			attType = "document"
		}
		filename := media.Filename
		if filename == "" {
			filename = "file"
		}
		attachments = append(attachments, model.Attachment{
			Type:     attType,
			URL:      media.URL,
			Filename: filename,
		})
	}

	return New(strings.TrimSpace(text), sender, attachments...)
}
