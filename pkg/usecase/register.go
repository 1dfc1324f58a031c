package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/prato-lab/prato/pkg/domain/model"
	"github.com/prato-lab/prato/pkg/utils/errutil"
)

func (uc *UseCases) handleRegisterLoss(ctx context.Context, account *model.Account, text string) string {
	product := ExtractField(text, "produto")
	quantity := ExtractField(text, "quantidade")
	reason := ExtractField(text, "motivo")
	if reason == "" {
		reason = uc.messages.ReasonNotInformed
	}

	entry := &model.LossEntry{
		CompanyID:       account.CompanyID,
		UserPhone:       account.Phone,
		Product:         product,
		Quantity:        quantity,
		Reason:          reason,
		OriginalMessage: text,
	}
	if _, err := uc.repo.Loss().Create(ctx, entry); err != nil {
		errutil.Handle(ctx, goerr.Wrap(err, "failed to register loss"), "loss write failed")
		return uc.messages.InternalError
	}

	return fmt.Sprintf(uc.messages.LossRegistered, product, quantity, reason)
}

func (uc *UseCases) handleRegisterStock(ctx context.Context, account *model.Account, text string) string {
	product := ExtractField(text, "produto")
	if product == "" {
		product = text
	}
	quantity := ExtractField(text, "quantidade")
	expiry := ExtractField(text, "validade")

	entry := &model.StockEntry{
		CompanyID:       account.CompanyID,
		UserPhone:       account.Phone,
		Product:         product,
		Quantity:        quantity,
		ExpiryDate:      expiry,
		OriginalMessage: text,
	}
	if _, err := uc.repo.Stock().Create(ctx, entry); err != nil {
		errutil.Handle(ctx, goerr.Wrap(err, "failed to register stock"), "stock write failed")
		return uc.messages.InternalError
	}

	reply := fmt.Sprintf(uc.messages.StockRegistered, product, quantity)
	if expiry != "" {
		reply += fmt.Sprintf(" Validade: %s.", expiry)
	}
	return reply
}

func (uc *UseCases) handleRegisterSales(ctx context.Context, account *model.Account, text string) string {
	item := ExtractField(text, "item")
	if item == "" {
		item = text
	}
	quantity := ExtractField(text, "quantidade")

	entry := &model.SaleEntry{
		CompanyID:       account.CompanyID,
		UserPhone:       account.Phone,
		Item:            item,
		Quantity:        quantity,
		OriginalMessage: text,
	}
	if _, err := uc.repo.Sale().Create(ctx, entry); err != nil {
		errutil.Handle(ctx, goerr.Wrap(err, "failed to register sale"), "sale write failed")
		return uc.messages.InternalError
	}

	return fmt.Sprintf(uc.messages.SaleRegistered, item, quantity)
}

func (uc *UseCases) handleRegisterRecipe(ctx context.Context, account *model.Account, text string) string {
	product := ExtractField(text, "receita")
	if product == "" {
		product = "receita"
	}

	raw := ExtractFieldToEnd(text, "ingredientes")
	if raw == "" {
		return uc.messages.RecipeFormatError
	}

	ingredients := ParseIngredients(raw)
	if len(ingredients) == 0 {
		// All tokens were malformed; registering an empty recipe helps nobody
		return uc.messages.RecipeFormatError
	}

	recipe := &model.Recipe{
		CompanyID:       account.CompanyID,
		UserPhone:       account.Phone,
		Product:         product,
		Ingredients:     ingredients,
		OriginalMessage: text,
	}
	if _, err := uc.repo.Recipe().Create(ctx, recipe); err != nil {
		errutil.Handle(ctx, goerr.Wrap(err, "failed to register recipe"), "recipe write failed")
		return uc.messages.InternalError
	}

	return fmt.Sprintf(uc.messages.RecipeRegistered, product, len(ingredients))
}
