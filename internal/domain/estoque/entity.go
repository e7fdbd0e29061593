package estoque

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrQuantidadeInvalida = errors.New("quantidade da movimentação deve ser maior que zero")
	ErrTipoInvalido       = errors.New("tipo de movimentação inválido")
)

// TipoMovimentacao classifica uma movimentação de estoque
type TipoMovimentacao string

const (
	MovimentacaoEntrada      TipoMovimentacao = "ENTRADA"
	MovimentacaoSaida        TipoMovimentacao = "SAIDA"
	MovimentacaoCancelamento TipoMovimentacao = "CANCELAMENTO_VENDA"
	MovimentacaoAjuste       TipoMovimentacao = "AJUSTE"
)

// MovimentacaoEstoque registra cada alteração de estoque de um produto,
// referenciando a venda quando a movimentação decorre de uma venda
type MovimentacaoEstoque struct {
	ID                string           `json:"id"`
	ProdutoID         string           `json:"produto_id"`
	TipoMovimentacao  TipoMovimentacao `json:"tipo_movimentacao"`
	Quantidade        int              `json:"quantidade"`
	ReferenciaVendaID string           `json:"referencia_venda_id,omitempty"`
	Observacao        string           `json:"observacao,omitempty"`
	DataHora          time.Time        `json:"data_hora"`
}

// NewMovimentacao cria um registro de movimentação de estoque
func NewMovimentacao(produtoID string, tipo TipoMovimentacao, quantidade int, referenciaVendaID, observacao string) (*MovimentacaoEstoque, error) {
	if quantidade < 1 {
		return nil, ErrQuantidadeInvalida
	}

	switch tipo {
	case MovimentacaoEntrada, MovimentacaoSaida, MovimentacaoCancelamento, MovimentacaoAjuste:
	default:
		return nil, ErrTipoInvalido
	}

	return &MovimentacaoEstoque{
		ID:                uuid.New().String(),
		ProdutoID:         produtoID,
		TipoMovimentacao:  tipo,
		Quantidade:        quantidade,
		ReferenciaVendaID: referenciaVendaID,
		Observacao:        observacao,
		DataHora:          time.Now(),
	}, nil
}
