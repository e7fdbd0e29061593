package dto

import (
	"time"

	"github.com/hugohenrick/pdv-supermercado/internal/domain/venda"
)

// AddItemRequest representa os dados para adicionar um item à venda.
// A quantidade padrão é 1 quando omitida.
type AddItemRequest struct {
	ProdutoID  string `json:"produto_id" binding:"required"`
	Quantidade int    `json:"quantidade"`
}

// DescontoRequest representa os dados para aplicação de desconto.
// O valor zero é legítimo, então a faixa é validada pelo domínio e não
// pelo binding.
type DescontoRequest struct {
	Valor  float64 `json:"valor"`
	Tipo   string  `json:"tipo" binding:"required"`
	Motivo string  `json:"motivo"`
}

// PagamentoRequest representa os dados para liquidação da venda.
// Uma venda com desconto total liquida por zero, então o valor não
// carrega a tag required.
type PagamentoRequest struct {
	Metodo string  `json:"metodo" binding:"required"`
	Valor  float64 `json:"valor"`
}

// CancelamentoRequest representa os dados para cancelamento da venda
type CancelamentoRequest struct {
	Motivo string `json:"motivo"`
}

// ItemVendaResponse representa um item da venda nas respostas da API
type ItemVendaResponse struct {
	ID            string  `json:"id"`
	ProdutoID     string  `json:"produto_id"`
	NomeProduto   string  `json:"nome_produto"`
	Quantidade    int     `json:"quantidade"`
	PrecoUnitario float64 `json:"preco_unitario"`
	Subtotal      float64 `json:"subtotal"`
}

// VendaResponse representa uma venda nas respostas da API
type VendaResponse struct {
	ID                 string              `json:"id"`
	Status             string              `json:"status"`
	Itens              []ItemVendaResponse `json:"itens"`
	TotalBruto         float64             `json:"total_bruto"`
	DescontoAplicado   float64             `json:"desconto_aplicado"`
	TotalLiquido       float64             `json:"total_liquido"`
	MetodoPagamento    string              `json:"metodo_pagamento,omitempty"`
	MotivoCancelamento string              `json:"motivo_cancelamento,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
}

// VendaListResponse representa a lista paginada de vendas, da mais
// recente para a mais antiga
type VendaListResponse struct {
	Vendas   []VendaResponse `json:"vendas"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// DescontoResponse representa o resultado da aplicação de um desconto
type DescontoResponse struct {
	Message       string  `json:"message"`
	ValorDesconto float64 `json:"valor_desconto"`
	TotalLiquido  float64 `json:"total_liquido"`
}

// CancelamentoResponse representa o resultado de um cancelamento. A
// flag de estorno permite ao chamador exibir o aviso correto quando a
// venda cancelada já estava paga.
type CancelamentoResponse struct {
	Message          string        `json:"message"`
	EstornoRealizado bool          `json:"estorno_realizado"`
	Venda            VendaResponse `json:"venda"`
}

// ToVendaListResponse converte a lista de vendas para a resposta paginada
func ToVendaListResponse(vendas []*venda.Venda, page, pageSize int) VendaListResponse {
	items := make([]VendaResponse, 0, len(vendas))
	for _, v := range vendas {
		items = append(items, ToVendaResponse(v))
	}

	return VendaListResponse{
		Vendas:   items,
		Page:     page,
		PageSize: pageSize,
	}
}

// ToVendaResponse converte uma venda do domínio para a resposta da API
func ToVendaResponse(v *venda.Venda) VendaResponse {
	itens := make([]ItemVendaResponse, 0, len(v.Itens))
	for _, item := range v.Itens {
		itens = append(itens, ItemVendaResponse{
			ID:            item.ID,
			ProdutoID:     item.ProdutoID,
			NomeProduto:   item.NomeProduto,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Subtotal:      item.Subtotal,
		})
	}

	return VendaResponse{
		ID:                 v.ID,
		Status:             string(v.Status),
		Itens:              itens,
		TotalBruto:         v.TotalBruto,
		DescontoAplicado:   v.DescontoAplicado,
		TotalLiquido:       v.TotalLiquido,
		MetodoPagamento:    string(v.MetodoPagamento),
		MotivoCancelamento: v.MotivoCancelamento,
		CreatedAt:          v.CreatedAt,
	}
}
