package model

// Attachment describes a media item referenced by an inbound message.
// The URL points at provider-hosted content; bytes are fetched lazily by
// the extractor service.
type Attachment struct {
	Type     string
	URL      string
	Filename string
}
