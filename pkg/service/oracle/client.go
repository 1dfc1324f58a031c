package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/prato-lab/prato/pkg/domain/types"
	"github.com/prato-lab/prato/pkg/utils/logging"
)

const defaultTimeout = 30 * time.Second

// client implements Service on top of a gollem LLM client
type client struct {
	llmClient gollem.LLMClient
	timeout   time.Duration
}

// Option is a functional option for client configuration
type Option func(*client)

// WithTimeout bounds each oracle call. Expiry is treated the same as any
// other oracle failure at the call site.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		c.timeout = d
	}
}

// New creates a new oracle Service with the provided LLM client
func New(llmClient gollem.LLMClient, opts ...Option) (Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	c := &client{
		llmClient: llmClient,
		timeout:   defaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// classifyResponse is the expected two-field structured result
type classifyResponse struct {
	Intent      string `json:"intent"`
	Observation string `json:"observation"`
}

func classifySchema() *gollem.Parameter {
	intents := make([]string, 0, len(types.AllIntents()))
	for _, it := range types.AllIntents() {
		intents = append(intents, it.String())
	}

	return &gollem.Parameter{
		Title:       "IntentClassification",
		Description: "Classification of a restaurant assistant message",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"intent": {
				Type:        gollem.TypeString,
				Description: fmt.Sprintf("Exactly one of: %s", strings.Join(intents, ", ")),
				Required:    true,
			},
			"observation": {
				Type:        gollem.TypeString,
				Description: "One short sentence explaining the choice",
				Required:    true,
			},
		},
	}
}

func (c *client) Classify(ctx context.Context, text string) Classification {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.classify(ctx, text)
	if err != nil {
		logging.From(ctx).Warn("intent classification failed, falling back",
			"error", err.Error(),
		)
		return FallbackClassification()
	}
	return result
}

func (c *client) classify(ctx context.Context, text string) (Classification, error) {
	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(classifySchema()),
	)
	if err != nil {
		return Classification{}, goerr.Wrap(err, "failed to create classification session")
	}

	prompt := fmt.Sprintf(`Classify the intention of a message sent by a restaurant operator to their assistant.
Choose exactly one intent from the schema and add a one-sentence observation.
The message is usually in Portuguese.

Message:
%s`, text)

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return Classification{}, goerr.Wrap(err, "failed to generate classification")
	}
	if len(resp.Texts) == 0 {
		return Classification{}, goerr.New("classification returned empty result")
	}

	var parsed classifyResponse
	if err := json.Unmarshal([]byte(resp.Texts[0]), &parsed); err != nil {
		return Classification{}, goerr.Wrap(err, "failed to parse classification JSON",
			goerr.V("response", resp.Texts[0]),
		)
	}

	intent := types.ParseIntent(parsed.Intent)
	if intent == types.IntentUnknown {
		return Classification{}, goerr.New("classification returned unknown intent",
			goerr.V("intent", parsed.Intent),
		)
	}

	return Classification{Intent: intent, Observation: parsed.Observation}, nil
}

// productNameResponse is the structured result of product name extraction
type productNameResponse struct {
	Product string `json:"product"`
}

func (c *client) ExtractProductName(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	schema := &gollem.Parameter{
		Title:       "ProductName",
		Description: "Product name referenced in a recipe request",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"product": {
				Type:        gollem.TypeString,
				Description: "The bare product name, without quantities or politeness",
				Required:    true,
			},
		},
	}

	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(schema),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create extraction session")
	}

	prompt := fmt.Sprintf(`Extract the product name the user is asking the recipe for.
Return only the bare product name.

Message:
%s`, text)

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return "", goerr.Wrap(err, "failed to extract product name")
	}
	if len(resp.Texts) == 0 {
		return "", goerr.New("product name extraction returned empty result")
	}

	var parsed productNameResponse
	if err := json.Unmarshal([]byte(resp.Texts[0]), &parsed); err != nil {
		return "", goerr.Wrap(err, "failed to parse product name JSON",
			goerr.V("response", resp.Texts[0]),
		)
	}

	return strings.TrimSpace(parsed.Product), nil
}

func (c *client) Narrate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	session, err := c.llmClient.NewSession(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create narration session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate narration")
	}
	if len(resp.Texts) == 0 {
		return "", goerr.New("narration returned empty result")
	}

	return resp.Texts[0], nil
}
