package usecase

import "github.com/m-mizutani/goerr/v2"

// Messages holds the canned reply texts of the assistant. Entries with
// printf verbs are filled by the handlers; all texts can be overridden
// from the TOML configuration file.
type Messages struct {
	NotReceived         string `toml:"not_received"`
	Onboarding          string `toml:"onboarding"`
	DefaultReply        string `toml:"default_reply"`
	GeneralConversation string `toml:"general_conversation"`
	FileReceived        string `toml:"file_received"`
	InternalError       string `toml:"internal_error"`

	StockRegistered  string `toml:"stock_registered"`
	SaleRegistered   string `toml:"sale_registered"`
	LossRegistered   string `toml:"loss_registered"`
	RecipeRegistered string `toml:"recipe_registered"`

	RecipeFormatError    string `toml:"recipe_format_error"`
	RecipeNotFound       string `toml:"recipe_not_found"`
	RecipeUnresolved     string `toml:"recipe_unresolved"`
	SummaryUnavailable   string `toml:"summary_unavailable"`
	AnalysisUnavailable  string `toml:"analysis_unavailable"`
	PermissionDenied     string `toml:"permission_denied"`
	AccountNotFound      string `toml:"account_not_found"`
	ReasonNotInformed    string `toml:"reason_not_informed"`
	EmptyListPlaceholder string `toml:"empty_list_placeholder"`
}

// DefaultMessages returns the built-in Portuguese reply texts
func DefaultMessages() *Messages {
	return &Messages{
		NotReceived:         "Mensagem não recebida corretamente.",
		Onboarding:          "Bem-vindo! Sua empresa %q foi cadastrada com sucesso. Agora você pode registrar estoque, vendas, perdas e receitas, pedir o resumo semanal ou uma análise dos seus dados.",
		DefaultReply:        "Recebido!",
		GeneralConversation: "Posso ajudar com: registrar estoque (produto: ..., quantidade: ...), registrar vendas, registrar perdas, cadastrar receitas, resumo semanal, análise de dados e consulta de receitas.",
		FileReceived:        "Arquivo recebido! Obrigado por enviar.",
		InternalError:       "Não consegui processar sua mensagem agora. Tente novamente em instantes.",

		StockRegistered:  "Estoque registrado: %s, quantidade: %s.",
		SaleRegistered:   "Venda registrada: %s, quantidade: %s.",
		LossRegistered:   "Perda registrada: %s (%s). Motivo: %s.",
		RecipeRegistered: "Receita de %s registrada com %d ingrediente(s).",

		RecipeFormatError:    "Não consegui entender o formato da receita. Exemplo: receita: bolo, ingredientes: farinha 2kg, ovo 6un",
		RecipeNotFound:       "Receita de %q não encontrada.",
		RecipeUnresolved:     "Não encontrei essa receita.",
		SummaryUnavailable:   "Não consegui gerar o resumo semanal agora. Tente novamente mais tarde.",
		AnalysisUnavailable:  "Não consegui analisar os dados agora. Tente novamente mais tarde.",
		PermissionDenied:     "Permissão negada: seu perfil é %q, mas esta ação exige o perfil %q.",
		AccountNotFound:      "Conta não encontrada para este número.",
		ReasonNotInformed:    "não informado",
		EmptyListPlaceholder: "nenhum registro",
	}
}

// Validate checks that no reply text is empty
func (m *Messages) Validate() error {
	checks := map[string]string{
		"not_received":           m.NotReceived,
		"onboarding":             m.Onboarding,
		"default_reply":          m.DefaultReply,
		"general_conversation":   m.GeneralConversation,
		"file_received":          m.FileReceived,
		"internal_error":         m.InternalError,
		"stock_registered":       m.StockRegistered,
		"sale_registered":        m.SaleRegistered,
		"loss_registered":        m.LossRegistered,
		"recipe_registered":      m.RecipeRegistered,
		"recipe_format_error":    m.RecipeFormatError,
		"recipe_not_found":       m.RecipeNotFound,
		"recipe_unresolved":      m.RecipeUnresolved,
		"summary_unavailable":    m.SummaryUnavailable,
		"analysis_unavailable":   m.AnalysisUnavailable,
		"permission_denied":      m.PermissionDenied,
		"account_not_found":      m.AccountNotFound,
		"reason_not_informed":    m.ReasonNotInformed,
		"empty_list_placeholder": m.EmptyListPlaceholder,
	}
	for key, text := range checks {
		if text == "" {
			return goerr.New("reply text is required", goerr.V("key", key))
		}
	}
	return nil
}
