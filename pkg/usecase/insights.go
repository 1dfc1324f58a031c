package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/prato-lab/prato/pkg/domain/model"
	"github.com/prato-lab/prato/pkg/domain/types"
	"github.com/prato-lab/prato/pkg/utils/errutil"
)

const (
	summaryWindow    = 7 * 24 * time.Hour
	analysisEntries  = 5
	analysisMemories = 3
)

// handleWeeklySummary reads the last week of stock and sale entries, asks
// the oracle to narrate a summary and persists it as a ContextMemory.
func (uc *UseCases) handleWeeklySummary(ctx context.Context, account *model.Account) (string, string) {
	since := time.Now().UTC().Add(-summaryWindow)

	stocks, err := uc.repo.Stock().ListSince(ctx, account.CompanyID, since)
	if err != nil {
		errutil.Handle(ctx, goerr.Wrap(err, "failed to list stock for summary"), "summary read failed")
		return uc.messages.SummaryUnavailable, ""
	}
	sales, err := uc.repo.Sale().ListSince(ctx, account.CompanyID, since)
	if err != nil {
		errutil.Handle(ctx, goerr.Wrap(err, "failed to list sales for summary"), "summary read failed")
		return uc.messages.SummaryUnavailable, ""
	}

	stockList := uc.bulletList(len(stocks), func(i int) string {
		return fmt.Sprintf("%s: %s", stocks[i].Product, stocks[i].Quantity)
	})
	saleList := uc.bulletList(len(sales), func(i int) string {
		return fmt.Sprintf("%s: %s", sales[i].Item, sales[i].Quantity)
	})

	dataContext := fmt.Sprintf("Estoque registrado na última semana:\n%s\n\nVendas registradas na última semana:\n%s", stockList, saleList)

	prompt := fmt.Sprintf(`Você é o assistente de um restaurante. Escreva um resumo semanal curto e direto, em português, com base nos registros abaixo. Destaque o que mais vendeu e o que pode estar sobrando em estoque.

%s`, dataContext)

	summary, err := uc.narrate(ctx, prompt)
	if err != nil {
		errutil.Handle(ctx, err, "weekly summary narration failed")
		return uc.messages.SummaryUnavailable, dataContext
	}

	memory := &model.ContextMemory{
		CompanyID: account.CompanyID,
		UserPhone: account.Phone,
		Summary:   summary,
		Type:      types.MemoryTypeWeeklySummary,
		Tags:      []string{"semanal", "resumo"},
	}
	if _, err := uc.repo.ContextMemory().Create(ctx, memory); err != nil {
		errutil.Handle(ctx, goerr.Wrap(err, "failed to persist weekly summary"), "summary write failed")
	}

	return summary, dataContext
}

// handleAnalyzeData feeds the most recent stock, sale and loss entries plus
// prior insights to the oracle and persists the result as a ContextMemory.
func (uc *UseCases) handleAnalyzeData(ctx context.Context, account *model.Account) (string, string) {
	stocks, err := uc.repo.Stock().ListRecent(ctx, account.CompanyID, analysisEntries)
	if err != nil {
		errutil.Handle(ctx, goerr.Wrap(err, "failed to list stock for analysis"), "analysis read failed")
		return uc.messages.AnalysisUnavailable, ""
	}
	sales, err := uc.repo.Sale().ListRecent(ctx, account.CompanyID, analysisEntries)
	if err != nil {
		errutil.Handle(ctx, goerr.Wrap(err, "failed to list sales for analysis"), "analysis read failed")
		return uc.messages.AnalysisUnavailable, ""
	}
	losses, err := uc.repo.Loss().ListRecent(ctx, account.CompanyID, analysisEntries)
	if err != nil {
		errutil.Handle(ctx, goerr.Wrap(err, "failed to list losses for analysis"), "analysis read failed")
		return uc.messages.AnalysisUnavailable, ""
	}

	stockList := uc.bulletList(len(stocks), func(i int) string {
		return fmt.Sprintf("%s: %s", stocks[i].Product, stocks[i].Quantity)
	})
	saleList := uc.bulletList(len(sales), func(i int) string {
		return fmt.Sprintf("%s: %s", sales[i].Item, sales[i].Quantity)
	})
	lossList := uc.bulletList(len(losses), func(i int) string {
		return fmt.Sprintf("%s: %s (%s)", losses[i].Product, losses[i].Quantity, losses[i].Reason)
	})

	contextUsed := ""
	if memories, err := uc.repo.ContextMemory().ListRecent(ctx, account.CompanyID, analysisMemories); err == nil && len(memories) > 0 {
		parts := make([]string, len(memories))
		for i, m := range memories {
			parts[i] = m.Summary
		}
		contextUsed = strings.Join(parts, "\n---\n")
	}

	prompt := fmt.Sprintf(`Você é o assistente de um restaurante. Com base nos registros mais recentes abaixo, dê sugestões práticas e diretas para reduzir o desperdício de alimentos e aumentar o lucro.

Estoque recente:
%s

Vendas recentes:
%s

Perdas recentes:
%s`, stockList, saleList, lossList)

	if contextUsed != "" {
		prompt += fmt.Sprintf("\n\nAnálises anteriores:\n%s", contextUsed)
	}

	analysis, err := uc.narrate(ctx, prompt)
	if err != nil {
		errutil.Handle(ctx, err, "data analysis narration failed")
		return uc.messages.AnalysisUnavailable, contextUsed
	}

	memory := &model.ContextMemory{
		CompanyID: account.CompanyID,
		UserPhone: account.Phone,
		Summary:   analysis,
		Type:      types.MemoryTypeAnalysisResult,
		Tags:      []string{"analise", "desperdicio"},
	}
	if _, err := uc.repo.ContextMemory().Create(ctx, memory); err != nil {
		errutil.Handle(ctx, goerr.Wrap(err, "failed to persist analysis"), "analysis write failed")
	}

	return analysis, contextUsed
}

// handleRequestRecipe extracts a product name via the oracle and looks up
// the recipe. Extraction failures surface as "not found", never as errors.
func (uc *UseCases) handleRequestRecipe(ctx context.Context, account *model.Account, text string) string {
	if uc.oracle == nil {
		return uc.messages.RecipeUnresolved
	}

	name, err := uc.oracle.ExtractProductName(ctx, text)
	if err != nil || strings.TrimSpace(name) == "" {
		if err != nil {
			errutil.Handle(ctx, err, "recipe product name extraction failed")
		}
		return uc.messages.RecipeUnresolved
	}

	recipe, err := uc.repo.Recipe().FindByProduct(ctx, account.CompanyID, name)
	if err != nil {
		errutil.Handle(ctx, goerr.Wrap(err, "failed to look up recipe"), "recipe read failed")
		return uc.messages.InternalError
	}
	if recipe == nil {
		return fmt.Sprintf(uc.messages.RecipeNotFound, name)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Receita de %s:\n", recipe.Product)
	for _, ing := range recipe.Ingredients {
		fmt.Fprintf(&sb, "- %s: %s\n", ing.Name, ing.Quantity)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// narrate asks the oracle for free-form text, treating a missing oracle the
// same as an oracle failure.
func (uc *UseCases) narrate(ctx context.Context, prompt string) (string, error) {
	if uc.oracle == nil {
		return "", goerr.New("oracle is not configured")
	}
	return uc.oracle.Narrate(ctx, prompt)
}

// bulletList renders n items as a bulleted list, or the empty placeholder
func (uc *UseCases) bulletList(n int, line func(i int) string) string {
	if n == 0 {
		return uc.messages.EmptyListPlaceholder
	}
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "- " + line(i)
	}
	return strings.Join(lines, "\n")
}
