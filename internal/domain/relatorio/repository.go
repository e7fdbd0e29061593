package relatorio

import (
	"context"
	"time"
)

// VendasPorDia agrega as vendas pagas de um dia
type VendasPorDia struct {
	Data       time.Time `json:"data"`
	Quantidade int       `json:"quantidade"`
	Total      float64   `json:"total"`
}

// ProdutoMaisVendido agrega a quantidade vendida de um produto
// considerando apenas vendas pagas
type ProdutoMaisVendido struct {
	Nome         string `json:"nome"`
	TotalVendido int    `json:"total_vendido"`
}

// Repository define as projeções de leitura sobre vendas liquidadas.
// São apenas agregações; vendas abertas ou canceladas nunca entram
// nos resultados.
type Repository interface {
	// VendasPorDia agrupa as vendas pagas por dia desde a data informada
	VendasPorDia(ctx context.Context, desde time.Time) ([]*VendasPorDia, error)

	// ProdutosMaisVendidos retorna os produtos mais vendidos em
	// quantidade, limitado aos primeiros `limit`
	ProdutosMaisVendidos(ctx context.Context, limit int) ([]*ProdutoMaisVendido, error)
}
