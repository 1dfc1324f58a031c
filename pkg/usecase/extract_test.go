package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/prato-lab/prato/pkg/domain/model"
	"github.com/prato-lab/prato/pkg/usecase"
)

func TestExtractField(t *testing.T) {
	t.Run("extracts labeled value", func(t *testing.T) {
		text := "registrar estoque, produto: tomate italiano, quantidade: 2kg"
		gt.Value(t, usecase.ExtractField(text, "produto")).Equal("tomate italiano")
		gt.Value(t, usecase.ExtractField(text, "quantidade")).Equal("2kg")
	})

	t.Run("label match is case-insensitive", func(t *testing.T) {
		gt.Value(t, usecase.ExtractField("Produto: cebola", "produto")).Equal("cebola")
		gt.Value(t, usecase.ExtractField("PRODUTO : cebola", "produto")).Equal("cebola")
	})

	t.Run("value stops at the next comma", func(t *testing.T) {
		text := "produto: queijo minas, quantidade: 1kg"
		gt.Value(t, usecase.ExtractField(text, "produto")).Equal("queijo minas")
	})

	t.Run("absent field returns empty", func(t *testing.T) {
		gt.Value(t, usecase.ExtractField("quantidade: 3", "produto")).Equal("")
		gt.Value(t, usecase.ExtractField("", "produto")).Equal("")
	})
}

func TestExtractFieldToEnd(t *testing.T) {
	t.Run("captures across commas", func(t *testing.T) {
		text := "receita: bolo, ingredientes: farinha 2kg, ovo 6un, leite 1l"
		gt.Value(t, usecase.ExtractFieldToEnd(text, "ingredientes")).
			Equal("farinha 2kg, ovo 6un, leite 1l")
	})

	t.Run("absent field returns empty", func(t *testing.T) {
		gt.Value(t, usecase.ExtractFieldToEnd("receita: bolo", "ingredientes")).Equal("")
	})
}

func TestParseIngredients(t *testing.T) {
	t.Run("splits name and quantity per token", func(t *testing.T) {
		got := usecase.ParseIngredients("tomate 2kg, cebola 1kg")
		gt.Array(t, got).Length(2).Required()
		gt.Value(t, got[0]).Equal(model.Ingredient{Name: "tomate", Quantity: "2kg"})
		gt.Value(t, got[1]).Equal(model.Ingredient{Name: "cebola", Quantity: "1kg"})
	})

	t.Run("multi-word names keep everything before the quantity", func(t *testing.T) {
		got := usecase.ParseIngredients("queijo minas padrao 500g")
		gt.Array(t, got).Length(1).Required()
		gt.Value(t, got[0]).Equal(model.Ingredient{Name: "queijo minas padrao", Quantity: "500g"})
	})

	t.Run("tokens without a quantity are dropped", func(t *testing.T) {
		got := usecase.ParseIngredients("farinha 2kg, sal, ovo 6un")
		gt.Array(t, got).Length(2).Required()
		gt.Value(t, got[0].Name).Equal("farinha")
		gt.Value(t, got[1].Name).Equal("ovo")
	})

	t.Run("empty input yields no ingredients", func(t *testing.T) {
		gt.Array(t, usecase.ParseIngredients("")).Length(0)
	})
}
