package dto

import (
	"github.com/hugohenrick/pdv-supermercado/internal/domain/relatorio"
)

// VendasPorDiaResponse representa um dia de vendas no relatório
type VendasPorDiaResponse struct {
	Data       string  `json:"data"`
	Quantidade int     `json:"quantidade"`
	Total      float64 `json:"total"`
}

// ProdutoMaisVendidoResponse representa um produto no ranking de vendas
type ProdutoMaisVendidoResponse struct {
	Nome         string `json:"nome"`
	TotalVendido int    `json:"total_vendido"`
}

// ToVendasPorDiaResponse converte a projeção de vendas por dia
func ToVendasPorDiaResponse(dias []*relatorio.VendasPorDia) []VendasPorDiaResponse {
	items := make([]VendasPorDiaResponse, 0, len(dias))
	for _, dia := range dias {
		items = append(items, VendasPorDiaResponse{
			Data:       dia.Data.Format("2006-01-02"),
			Quantidade: dia.Quantidade,
			Total:      dia.Total,
		})
	}
	return items
}

// ToProdutosMaisVendidosResponse converte o ranking de produtos
func ToProdutosMaisVendidosResponse(produtos []*relatorio.ProdutoMaisVendido) []ProdutoMaisVendidoResponse {
	items := make([]ProdutoMaisVendidoResponse, 0, len(produtos))
	for _, p := range produtos {
		items = append(items, ProdutoMaisVendidoResponse{
			Nome:         p.Nome,
			TotalVendido: p.TotalVendido,
		})
	}
	return items
}
