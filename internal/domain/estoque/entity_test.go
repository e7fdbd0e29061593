package estoque

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMovimentacao(t *testing.T) {
	t.Run("movimentacao valida", func(t *testing.T) {
		m, err := NewMovimentacao("produto-1", MovimentacaoSaida, 2, "venda-1", "Venda venda-1")
		require.NoError(t, err)

		assert.NotEmpty(t, m.ID)
		assert.Equal(t, MovimentacaoSaida, m.TipoMovimentacao)
		assert.Equal(t, 2, m.Quantidade)
		assert.Equal(t, "venda-1", m.ReferenciaVendaID)
	})

	t.Run("quantidade deve ser positiva", func(t *testing.T) {
		_, err := NewMovimentacao("produto-1", MovimentacaoEntrada, 0, "", "")
		assert.ErrorIs(t, err, ErrQuantidadeInvalida)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		_, err := NewMovimentacao("produto-1", TipoMovimentacao("PERDA"), 1, "", "")
		assert.ErrorIs(t, err, ErrTipoInvalido)
	})
}
