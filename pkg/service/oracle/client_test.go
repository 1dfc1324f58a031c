package oracle_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gt"
	"github.com/prato-lab/prato/pkg/domain/types"
	"github.com/prato-lab/prato/pkg/service/oracle"
)

type mockLLMSession struct {
	generateContentFn func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error)
}

func (s *mockLLMSession) Generate(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (*gollem.Response, error) {
	return s.GenerateContent(ctx, input...)
}

func (s *mockLLMSession) Stream(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) GenerateContent(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
	if s.generateContentFn != nil {
		return s.generateContentFn(ctx, input...)
	}
	return &gollem.Response{Texts: []string{"ok"}}, nil
}

func (s *mockLLMSession) GenerateStream(ctx context.Context, input ...gollem.Input) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) History() (*gollem.History, error) {
	return nil, nil
}

func (s *mockLLMSession) AppendHistory(*gollem.History) error {
	return nil
}

func (s *mockLLMSession) CountToken(ctx context.Context, input ...gollem.Input) (int, error) {
	return 0, nil
}

// mockLLMClient is a mock gollem LLMClient for testing
type mockLLMClient struct {
	newSessionFn func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error)
}

func (c *mockLLMClient) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	if c.newSessionFn != nil {
		return c.newSessionFn(ctx, options...)
	}
	return &mockLLMSession{}, nil
}

func (c *mockLLMClient) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	return nil, nil
}

func respondWith(texts ...string) func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	return func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
		return &mockLLMSession{
			generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
				return &gollem.Response{Texts: texts}, nil
			},
		}, nil
	}
}

func TestNew(t *testing.T) {
	_, err := oracle.New(nil)
	gt.Error(t, err)
}

func TestClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("valid JSON resolves the intent", func(t *testing.T) {
		svc, err := oracle.New(&mockLLMClient{
			newSessionFn: respondWith(`{"intent": "register_stock", "observation": "operator registers stock"}`),
		})
		gt.NoError(t, err).Required()

		cls := svc.Classify(ctx, "produto: tomate, quantidade: 2kg")
		gt.Value(t, cls.Intent).Equal(types.IntentRegisterStock)
		gt.Value(t, cls.Observation).Equal("operator registers stock")
	})

	t.Run("model error falls back", func(t *testing.T) {
		svc, err := oracle.New(&mockLLMClient{
			newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return &mockLLMSession{
					generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
						return nil, errors.New("model unavailable")
					},
				}, nil
			},
		})
		gt.NoError(t, err).Required()

		gt.Value(t, svc.Classify(ctx, "oi")).Equal(oracle.FallbackClassification())
	})

	t.Run("malformed JSON falls back", func(t *testing.T) {
		svc, err := oracle.New(&mockLLMClient{
			newSessionFn: respondWith("not json at all"),
		})
		gt.NoError(t, err).Required()

		gt.Value(t, svc.Classify(ctx, "oi")).Equal(oracle.FallbackClassification())
	})

	t.Run("unknown intent falls back", func(t *testing.T) {
		svc, err := oracle.New(&mockLLMClient{
			newSessionFn: respondWith(`{"intent": "order_pizza", "observation": "?"}`),
		})
		gt.NoError(t, err).Required()

		gt.Value(t, svc.Classify(ctx, "oi")).Equal(oracle.FallbackClassification())
	})
}

func TestExtractProductName(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the trimmed product name", func(t *testing.T) {
		svc, err := oracle.New(&mockLLMClient{
			newSessionFn: respondWith(`{"product": "  bolo de cenoura "}`),
		})
		gt.NoError(t, err).Required()

		name, err := svc.ExtractProductName(ctx, "como faz o bolo de cenoura?")
		gt.NoError(t, err).Required()
		gt.Value(t, name).Equal("bolo de cenoura")
	})

	t.Run("empty response is an error", func(t *testing.T) {
		svc, err := oracle.New(&mockLLMClient{
			newSessionFn: respondWith(),
		})
		gt.NoError(t, err).Required()

		_, err = svc.ExtractProductName(ctx, "como faz o bolo?")
		gt.Error(t, err)
	})
}

func TestNarrate(t *testing.T) {
	ctx := context.Background()

	svc, err := oracle.New(&mockLLMClient{
		newSessionFn: respondWith("Resumo da semana: tudo em ordem."),
	})
	gt.NoError(t, err).Required()

	text, err := svc.Narrate(ctx, "resuma a semana")
	gt.NoError(t, err).Required()
	gt.Value(t, text).Equal("Resumo da semana: tudo em ordem.")
}
