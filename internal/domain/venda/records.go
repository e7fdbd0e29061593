package venda

import (
	"time"

	"github.com/google/uuid"
)

// Desconto registra a autorização de um desconto aplicado à venda
type Desconto struct {
	ID            string       `json:"id"`
	VendaID       string       `json:"venda_id"`
	Valor         float64      `json:"valor"`
	Tipo          TipoDesconto `json:"tipo"`
	AutorizadoPor string       `json:"autorizado_por"`
	Motivo        string       `json:"motivo"`
	DataHora      time.Time    `json:"data_hora"`
}

// NewDesconto cria o registro de auditoria de um desconto
func NewDesconto(vendaID string, valor float64, tipo TipoDesconto, autorizadoPor, motivo string) *Desconto {
	return &Desconto{
		ID:            uuid.New().String(),
		VendaID:       vendaID,
		Valor:         valor,
		Tipo:          tipo,
		AutorizadoPor: autorizadoPor,
		Motivo:        motivo,
		DataHora:      time.Now(),
	}
}

// Pagamento registra a liquidação de uma venda
type Pagamento struct {
	ID       string          `json:"id"`
	VendaID  string          `json:"venda_id"`
	Valor    float64         `json:"valor"`
	Metodo   MetodoPagamento `json:"metodo"`
	Status   string          `json:"status"`
	DataHora time.Time       `json:"data_hora"`
}

// NewPagamento cria o registro de um pagamento aprovado
func NewPagamento(vendaID string, valor float64, metodo MetodoPagamento) *Pagamento {
	return &Pagamento{
		ID:       uuid.New().String(),
		VendaID:  vendaID,
		Valor:    valor,
		Metodo:   metodo,
		Status:   "APROVADO",
		DataHora: time.Now(),
	}
}

// Cancelamento registra o cancelamento de uma venda. Quando a venda
// estava paga, EstornoRealizado carrega os dados necessários para a
// conciliação financeira externa (total líquido e método de pagamento
// permanecem na própria venda).
type Cancelamento struct {
	ID               string    `json:"id"`
	VendaID          string    `json:"venda_id"`
	CanceladoPor     string    `json:"cancelado_por"`
	Motivo           string    `json:"motivo"`
	EstoqueReposto   bool      `json:"estoque_reposto"`
	EstornoRealizado bool      `json:"estorno_realizado"`
	DataHora         time.Time `json:"data_hora"`
}

// NewCancelamento cria o registro de auditoria de um cancelamento
func NewCancelamento(vendaID, canceladoPor, motivo string, estorno bool) *Cancelamento {
	return &Cancelamento{
		ID:               uuid.New().String(),
		VendaID:          vendaID,
		CanceladoPor:     canceladoPor,
		Motivo:           motivo,
		EstoqueReposto:   true,
		EstornoRealizado: estorno,
		DataHora:         time.Now(),
	}
}
