package usecase

import (
	"github.com/prato-lab/prato/pkg/domain/interfaces"
	"github.com/prato-lab/prato/pkg/service/extractor"
	"github.com/prato-lab/prato/pkg/service/messaging"
	"github.com/prato-lab/prato/pkg/service/oracle"
)

// UseCases wires the conversation router to its collaborators. All external
// dependencies are injected; none are reached as ambient singletons.
type UseCases struct {
	repo      interfaces.Repository
	oracle    oracle.Service
	messaging messaging.Service
	extractor extractor.Service
	messages  *Messages
}

type Option func(*UseCases)

// WithOracle sets the language-model oracle. Without it, classification
// fails open to general conversation and insight handlers degrade.
func WithOracle(svc oracle.Service) Option {
	return func(uc *UseCases) {
		uc.oracle = svc
	}
}

// WithMessaging sets the outbound message transport. Without it, replies
// are only returned in the webhook response.
func WithMessaging(svc messaging.Service) Option {
	return func(uc *UseCases) {
		uc.messaging = svc
	}
}

// WithExtractor sets the attachment content extractor
func WithExtractor(svc extractor.Service) Option {
	return func(uc *UseCases) {
		uc.extractor = svc
	}
}

// WithMessages overrides the canned reply texts
func WithMessages(m *Messages) Option {
	return func(uc *UseCases) {
		uc.messages = m
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		messages: DefaultMessages(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
