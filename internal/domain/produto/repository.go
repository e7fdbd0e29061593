package produto

import (
	"context"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Produto) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Produto, error)

	// FindBySKU busca um produto pelo SKU
	FindBySKU(ctx context.Context, sku string) (*Produto, error)

	// List lista os produtos do catálogo com paginação
	List(ctx context.Context, limit, offset int) ([]*Produto, error)

	// Count conta quantos produtos existem no catálogo
	Count(ctx context.Context) (int, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Produto) error

	// ReserveStock decrementa o estoque do produto de forma atômica.
	// Falha com ErrEstoqueInsuficiente sem alterar nada quando o
	// estoque disponível é menor que a quantidade pedida.
	ReserveStock(ctx context.Context, id string, quantidade int) error

	// ReleaseStock devolve a quantidade ao estoque do produto.
	// Usado apenas pela reversão de cancelamento de venda.
	ReleaseStock(ctx context.Context, id string, quantidade int) error
}
