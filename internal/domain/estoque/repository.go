package estoque

import (
	"context"
)

// Repository define a interface para o livro de movimentações de estoque
type Repository interface {
	// Create registra uma movimentação de estoque
	Create(ctx context.Context, m *MovimentacaoEstoque) error

	// Adjust aplica o delta ao estoque do produto e registra a
	// movimentação correspondente de forma atômica. Delta positivo
	// devolve ao estoque, delta negativo baixa condicionalmente e falha
	// com produto.ErrEstoqueInsuficiente sem alterar nada quando não há
	// quantidade disponível.
	Adjust(ctx context.Context, m *MovimentacaoEstoque, delta int) error

	// ListByProduto lista as movimentações de um produto, da mais
	// recente para a mais antiga
	ListByProduto(ctx context.Context, produtoID string, limit, offset int) ([]*MovimentacaoEstoque, error)
}
