package extractor

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/prato-lab/prato/pkg/domain/model"
)

func TestRenderText(t *testing.T) {
	t.Run("csv renders row per line", func(t *testing.T) {
		att := model.Attachment{Type: "document", Filename: "vendas.csv"}
		data := []byte("item,quantidade\npizza,3\nlasanha,1\n")

		got := renderText(att, data)
		gt.Value(t, got).Equal("[vendas.csv]\nitem | quantidade\npizza | 3\nlasanha | 1")
	})

	t.Run("plain utf-8 text passes through", func(t *testing.T) {
		att := model.Attachment{Type: "document", Filename: "notas.txt"}
		got := renderText(att, []byte("  compras da semana  "))
		gt.Value(t, got).Equal("[notas.txt]\ncompras da semana")
	})

	t.Run("images degrade to a placeholder", func(t *testing.T) {
		att := model.Attachment{Type: "image", Filename: "image.jpg"}
		got := renderText(att, []byte("could be pixels"))
		gt.Value(t, got).Equal("[image.jpg: conteúdo binário arquivado]")
	})

	t.Run("binary content degrades to a placeholder", func(t *testing.T) {
		att := model.Attachment{Type: "document", Filename: "dump.bin"}
		got := renderText(att, []byte{0xff, 0xfe, 0x00, 0x01})
		gt.Value(t, got).Equal("[dump.bin: conteúdo binário arquivado]")
	})
}

func TestRenderCSV(t *testing.T) {
	t.Run("stops at the row cap", func(t *testing.T) {
		var data []byte
		for i := 0; i < maxRenderedRows+10; i++ {
			data = append(data, []byte("a,b\n")...)
		}

		rendered, ok := renderCSV(data)
		gt.Bool(t, ok).True()
		gt.Array(t, strings.Split(rendered, "\n")).Length(maxRenderedRows)
	})

	t.Run("empty input is not csv", func(t *testing.T) {
		_, ok := renderCSV(nil)
		gt.Bool(t, ok).False()
	})
}
