package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/prato-lab/prato/pkg/domain/model"
	"github.com/prato-lab/prato/pkg/domain/model/whatsapp"
	"github.com/prato-lab/prato/pkg/domain/types"
	"github.com/prato-lab/prato/pkg/service/oracle"
	"github.com/prato-lab/prato/pkg/utils/async"
	"github.com/prato-lab/prato/pkg/utils/errutil"
	"github.com/prato-lab/prato/pkg/utils/logging"
)

// ProcessTurn runs one complete inbound-message-to-reply cycle:
// resolve identity, classify, authorize, handle, log the interaction and
// dispatch the reply. The returned text is what the webhook response
// carries; outbound delivery failures never affect it.
func (uc *UseCases) ProcessTurn(ctx context.Context, msg *whatsapp.Message) (string, error) {
	if msg == nil {
		return "", goerr.New("message is nil")
	}

	logger := logging.From(ctx)
	phone := msg.Sender()
	text := msg.Text()

	account, isNew, err := uc.repo.Account().FindOrProvision(ctx, phone, strings.TrimSpace(text))
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve sender identity")
	}
	companyID := account.CompanyID

	// Attachment content extraction runs for every turn with attachments,
	// independent of which intent the message classifies to.
	if attachments := msg.Attachments(); len(attachments) > 0 && uc.extractor != nil {
		async.Dispatch(ctx, func(ctx context.Context) error {
			rendered, err := uc.extractor.Process(ctx, companyID, attachments)
			if err != nil {
				return goerr.Wrap(err, "failed to extract attachment content")
			}
			logging.From(ctx).Info("attachment content extracted",
				"company_id", companyID,
				"attachments", len(attachments),
				"rendered_chars", len(rendered),
			)
			return nil
		})
	}

	// A brand-new sender never reaches the classifier on their first
	// message; the message text became the company name instead.
	if isNew {
		reply := fmt.Sprintf(uc.messages.Onboarding, account.Name)
		uc.logInteraction(ctx, account, msg, types.IntentUnknown, reply, "")
		uc.deliver(ctx, phone, reply)
		logger.Info("new company provisioned",
			"company_id", companyID,
			"company_name", account.Name,
		)
		return reply, nil
	}

	cls := oracle.FallbackClassification()
	if uc.oracle != nil {
		cls = uc.oracle.Classify(ctx, text)
	}

	reply, contextUsed := uc.dispatch(ctx, account, cls.Intent, text)

	uc.logInteraction(ctx, account, msg, cls.Intent, reply, contextUsed)
	uc.deliver(ctx, phone, reply)

	logger.Info("turn processed",
		"company_id", companyID,
		"intent", cls.Intent,
		"observation", cls.Observation,
	)

	return reply, nil
}

// dispatch routes the classified intent to its handler. Mutating intents are
// guarded by a role check; read-only intents require no role.
func (uc *UseCases) dispatch(ctx context.Context, account *model.Account, intent types.Intent, text string) (reply, contextUsed string) {
	if required := intent.RequiredRole(); required != "" {
		authz, err := uc.Authorize(ctx, account.Phone, required)
		if err != nil {
			errutil.Handle(ctx, err, "authorization check failed")
			return uc.messages.InternalError, ""
		}
		if !authz.Allowed {
			return authz.Reason, ""
		}
	}

	switch intent {
	case types.IntentRegisterLoss:
		return uc.handleRegisterLoss(ctx, account, text), ""
	case types.IntentRegisterStock:
		return uc.handleRegisterStock(ctx, account, text), ""
	case types.IntentRegisterSales:
		return uc.handleRegisterSales(ctx, account, text), ""
	case types.IntentRegisterRecipe:
		return uc.handleRegisterRecipe(ctx, account, text), ""
	case types.IntentWeeklySummary:
		return uc.handleWeeklySummary(ctx, account)
	case types.IntentRequestRecipe:
		return uc.handleRequestRecipe(ctx, account, text), ""
	case types.IntentAnalyzeData:
		return uc.handleAnalyzeData(ctx, account)
	case types.IntentGeneralConversation:
		return uc.messages.GeneralConversation, ""
	case types.IntentSendFile:
		return uc.messages.FileReceived, ""
	default:
		return uc.messages.DefaultReply, ""
	}
}

// logInteraction appends the per-turn audit record. It never fails the
// turn; persistence errors are logged and swallowed.
func (uc *UseCases) logInteraction(ctx context.Context, account *model.Account, msg *whatsapp.Message, intent types.Intent, reply, contextUsed string) {
	interaction := &model.Interaction{
		CompanyID:   account.CompanyID,
		UserPhone:   account.Phone,
		Message:     msg.Text(),
		Intent:      intent,
		Response:    reply,
		Attachments: msg.Attachments(),
		ContextUsed: contextUsed,
	}
	if _, err := uc.repo.Interaction().Create(ctx, interaction); err != nil {
		errutil.Handle(ctx, goerr.Wrap(err, "failed to log interaction",
			goerr.V("company_id", account.CompanyID),
		), "interaction audit write failed")
	}
}

// deliver sends the reply through the outbound transport. Failures are
// logged as warnings and never retried; the webhook response to the
// inbound caller is independent of delivery.
func (uc *UseCases) deliver(ctx context.Context, destination, text string) {
	if uc.messaging == nil {
		return
	}
	if err := uc.messaging.Send(ctx, destination, text); err != nil {
		logging.From(ctx).Warn("failed to deliver reply",
			"destination", destination,
			"error", err.Error(),
		)
	}
}
