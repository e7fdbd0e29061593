package dto

import (
	"time"

	"github.com/hugohenrick/pdv-supermercado/internal/domain/estoque"
	"github.com/hugohenrick/pdv-supermercado/internal/domain/produto"
)

// ProdutoRequest representa os dados para cadastro de produto
type ProdutoRequest struct {
	Nome         string  `json:"nome" binding:"required"`
	SKU          string  `json:"sku" binding:"required"`
	Preco        float64 `json:"preco"`
	EstoqueAtual int     `json:"estoque_atual"`
}

// AjusteEstoqueRequest representa um ajuste manual de estoque
type AjusteEstoqueRequest struct {
	Quantidade int    `json:"quantidade" binding:"required"`
	Observacao string `json:"observacao"`
}

// ProdutoResponse representa um produto nas respostas da API
type ProdutoResponse struct {
	ID           string  `json:"id"`
	Nome         string  `json:"nome"`
	SKU          string  `json:"sku"`
	Preco        float64 `json:"preco"`
	EstoqueAtual int     `json:"estoque_atual"`
}

// ProdutoListResponse representa a lista paginada de produtos
type ProdutoListResponse struct {
	Produtos   []ProdutoResponse `json:"produtos"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// MovimentacaoResponse representa uma movimentação de estoque na API
type MovimentacaoResponse struct {
	ID                string    `json:"id"`
	ProdutoID         string    `json:"produto_id"`
	TipoMovimentacao  string    `json:"tipo_movimentacao"`
	Quantidade        int       `json:"quantidade"`
	ReferenciaVendaID string    `json:"referencia_venda_id,omitempty"`
	Observacao        string    `json:"observacao,omitempty"`
	DataHora          time.Time `json:"data_hora"`
}

// ToProdutoResponse converte um produto do domínio para a resposta da API
func ToProdutoResponse(p *produto.Produto) ProdutoResponse {
	return ProdutoResponse{
		ID:           p.ID,
		Nome:         p.Nome,
		SKU:          p.SKU,
		Preco:        p.Preco,
		EstoqueAtual: p.EstoqueAtual,
	}
}

// ToProdutoListResponse converte a lista de produtos para a resposta paginada
func ToProdutoListResponse(produtos []*produto.Produto, total, page, pageSize int) ProdutoListResponse {
	items := make([]ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		items = append(items, ToProdutoResponse(p))
	}

	return ProdutoListResponse{
		Produtos:   items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}
}

// ToMovimentacaoResponse converte uma movimentação para a resposta da API
func ToMovimentacaoResponse(m *estoque.MovimentacaoEstoque) MovimentacaoResponse {
	return MovimentacaoResponse{
		ID:                m.ID,
		ProdutoID:         m.ProdutoID,
		TipoMovimentacao:  string(m.TipoMovimentacao),
		Quantidade:        m.Quantidade,
		ReferenciaVendaID: m.ReferenciaVendaID,
		Observacao:        m.Observacao,
		DataHora:          m.DataHora,
	}
}

// ToMovimentacaoListResponse converte a lista de movimentações
func ToMovimentacaoListResponse(movimentacoes []*estoque.MovimentacaoEstoque) []MovimentacaoResponse {
	items := make([]MovimentacaoResponse, 0, len(movimentacoes))
	for _, m := range movimentacoes {
		items = append(items, ToMovimentacaoResponse(m))
	}
	return items
}
