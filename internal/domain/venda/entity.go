package venda

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/pdv-supermercado/internal/domain/produto"
	"github.com/hugohenrick/pdv-supermercado/internal/domain/usuario"
)

var (
	ErrNotFound                = errors.New("venda não encontrada")
	ErrVendaNaoAberta          = errors.New("venda não está aberta para esta operação")
	ErrVendaJaCancelada        = errors.New("venda já foi cancelada")
	ErrVendaVazia              = errors.New("venda não possui itens")
	ErrQuantidadeInvalida      = errors.New("quantidade deve ser maior que zero")
	ErrMotivoObrigatorio       = errors.New("motivo é obrigatório")
	ErrDescontoNaoAutorizado   = errors.New("apenas gerentes podem aplicar descontos")
	ErrDescontoInvalido        = errors.New("desconto fora do intervalo permitido")
	ErrTipoDescontoInvalido    = errors.New("tipo de desconto inválido")
	ErrMetodoPagamentoInvalido = errors.New("método de pagamento inválido")
	ErrValorPagoDivergente     = errors.New("valor pago não corresponde ao total da venda")
	ErrCancelamentoNegado      = errors.New("apenas gerentes podem cancelar vendas pagas")
)

// Status representa o estado da venda
type Status string

const (
	StatusOpen      Status = "OPEN"      // Venda aberta, aceita itens e desconto
	StatusPaid      Status = "PAID"      // Venda paga, estado terminal
	StatusCancelled Status = "CANCELLED" // Venda cancelada, estado terminal
)

// TipoDesconto define a forma de cálculo do desconto
type TipoDesconto string

const (
	DescontoFixo       TipoDesconto = "FIXO"
	DescontoPercentual TipoDesconto = "PERCENTUAL"
)

// MetodoPagamento define as formas de pagamento aceitas
type MetodoPagamento string

const (
	PagamentoDinheiro MetodoPagamento = "DINHEIRO"
	PagamentoCartao   MetodoPagamento = "CARTAO"
	PagamentoPix      MetodoPagamento = "PIX"
)

// ItemVenda representa uma linha de produto dentro da venda.
// O preço unitário é capturado no momento da adição e não acompanha
// alterações posteriores do catálogo.
type ItemVenda struct {
	ID            string  `json:"id"`
	VendaID       string  `json:"venda_id"`
	ProdutoID     string  `json:"produto_id"`
	NomeProduto   string  `json:"nome_produto"`
	Quantidade    int     `json:"quantidade"`
	PrecoUnitario float64 `json:"preco_unitario"`
	Subtotal      float64 `json:"subtotal"`
}

// Venda representa uma transação de venda do primeiro item até o
// pagamento ou cancelamento
type Venda struct {
	ID                 string          `json:"id"`
	Status             Status          `json:"status"`
	Itens              []ItemVenda     `json:"itens"`
	TotalBruto         float64         `json:"total_bruto"`
	DescontoAplicado   float64         `json:"desconto_aplicado"`
	TotalLiquido       float64         `json:"total_liquido"`
	MetodoPagamento    MetodoPagamento `json:"metodo_pagamento,omitempty"`
	MotivoCancelamento string          `json:"motivo_cancelamento,omitempty"`
	UsuarioCaixaID     string          `json:"usuario_caixa_id"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// NewVenda cria uma nova venda aberta, sem itens
func NewVenda(usuarioCaixaID string) *Venda {
	now := time.Now()
	return &Venda{
		ID:               uuid.New().String(),
		Status:           StatusOpen,
		Itens:            []ItemVenda{},
		TotalBruto:       0,
		DescontoAplicado: 0,
		TotalLiquido:     0,
		UsuarioCaixaID:   usuarioCaixaID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// IsOpen verifica se a venda ainda aceita operações
func (v *Venda) IsOpen() bool {
	return v.Status == StatusOpen
}

// AddItem adiciona um item à venda capturando o preço atual do produto.
// A reserva de estoque acontece fora do agregado, no catálogo; aqui
// valida-se apenas o estado da venda e a quantidade. Adicionar o mesmo
// produto duas vezes gera uma nova linha, nunca altera uma existente.
func (v *Venda) AddItem(p *produto.Produto, quantidade int) (*ItemVenda, error) {
	if v.Status != StatusOpen {
		return nil, ErrVendaNaoAberta
	}

	if quantidade < 1 {
		return nil, ErrQuantidadeInvalida
	}

	item := ItemVenda{
		ID:            uuid.New().String(),
		VendaID:       v.ID,
		ProdutoID:     p.ID,
		NomeProduto:   p.Nome,
		Quantidade:    quantidade,
		PrecoUnitario: p.Preco,
		Subtotal:      float64(quantidade) * p.Preco,
	}

	v.Itens = append(v.Itens, item)
	v.calcularTotais()
	v.UpdatedAt = time.Now()

	return &item, nil
}

// ApplyDiscount aplica um desconto autorizado por um gerente.
// O valor absoluto resultante deve ficar dentro de [0, total_bruto]
// para que o total líquido nunca seja negativo.
func (v *Venda) ApplyDiscount(actor *usuario.Usuario, valor float64, tipo TipoDesconto, motivo string) (float64, error) {
	if v.Status != StatusOpen {
		return 0, ErrVendaNaoAberta
	}

	if !actor.IsGerente() {
		return 0, ErrDescontoNaoAutorizado
	}

	if motivo == "" {
		return 0, ErrMotivoObrigatorio
	}

	var valorDesconto float64
	switch tipo {
	case DescontoFixo:
		valorDesconto = valor
	case DescontoPercentual:
		valorDesconto = v.TotalBruto * valor / 100
	default:
		return 0, ErrTipoDescontoInvalido
	}

	if valorDesconto < 0 || valorDesconto > v.TotalBruto {
		return 0, ErrDescontoInvalido
	}

	v.DescontoAplicado = valorDesconto
	v.calcularTotais()
	v.UpdatedAt = time.Now()

	return valorDesconto, nil
}

// Pay finaliza a venda registrando o método de pagamento.
// O valor pago deve corresponder exatamente ao total líquido, com
// precisão de centavos. O estoque já foi reservado na adição dos
// itens, então nenhuma baixa adicional acontece aqui.
func (v *Venda) Pay(metodo MetodoPagamento, valor float64) error {
	if v.Status != StatusOpen {
		return ErrVendaNaoAberta
	}

	if len(v.Itens) == 0 {
		return ErrVendaVazia
	}

	switch metodo {
	case PagamentoDinheiro, PagamentoCartao, PagamentoPix:
	default:
		return ErrMetodoPagamentoInvalido
	}

	if !sameAmount(valor, v.TotalLiquido) {
		return ErrValorPagoDivergente
	}

	v.Status = StatusPaid
	v.MetodoPagamento = metodo
	v.UpdatedAt = time.Now()

	return nil
}

// Cancel cancela a venda. Vendas abertas e pagas podem ser canceladas;
// o cancelamento de uma venda paga implica estorno do valor pago.
// Retorna se houve estorno para o chamador montar a confirmação correta.
// Cancelar uma venda já cancelada falha para impedir que o estoque
// seja devolvido duas vezes.
func (v *Venda) Cancel(actor *usuario.Usuario, motivo string) (estorno bool, err error) {
	if v.Status == StatusCancelled {
		return false, ErrVendaJaCancelada
	}

	if motivo == "" {
		return false, ErrMotivoObrigatorio
	}

	if v.Status == StatusPaid && !actor.IsGerente() {
		return false, ErrCancelamentoNegado
	}

	estorno = v.Status == StatusPaid

	v.Status = StatusCancelled
	v.MotivoCancelamento = motivo
	v.UpdatedAt = time.Now()

	return estorno, nil
}

// calcularTotais recalcula os totais a partir dos itens e do desconto
func (v *Venda) calcularTotais() {
	var total float64
	for _, item := range v.Itens {
		total += item.Subtotal
	}

	v.TotalBruto = total
	v.TotalLiquido = total - v.DescontoAplicado
}

// sameAmount compara dois valores monetários com precisão de centavos
func sameAmount(a, b float64) bool {
	return math.Round(a*100) == math.Round(b*100)
}
