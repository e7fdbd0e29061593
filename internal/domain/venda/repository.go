package venda

import (
	"context"
)

// Repository define a interface para persistência de vendas.
// Os métodos de operação (AddItem, ApplyDiscount, Pay, Cancel) gravam
// o efeito completo de uma operação do ciclo de vida (venda, registros
// de auditoria e movimentação de estoque) de forma atômica: ou tudo é
// persistido, ou nada é.
type Repository interface {
	// Create cria uma nova venda aberta
	Create(ctx context.Context, v *Venda) error

	// FindByID busca uma venda pelo ID, com seus itens
	FindByID(ctx context.Context, id string) (*Venda, error)

	// List lista as vendas com paginação, da mais recente para a mais antiga
	List(ctx context.Context, limit, offset int) ([]*Venda, error)

	// AddItem persiste um item adicionado à venda, reservando o estoque
	// do produto na mesma transação. Falha com produto.ErrEstoqueInsuficiente
	// sem alterar nada quando não há estoque disponível.
	AddItem(ctx context.Context, v *Venda, item *ItemVenda) error

	// ApplyDiscount persiste o desconto aplicado e os totais recalculados
	ApplyDiscount(ctx context.Context, v *Venda, d *Desconto) error

	// Pay persiste a liquidação da venda e o registro de pagamento
	Pay(ctx context.Context, v *Venda, p *Pagamento) error

	// Cancel persiste o cancelamento, devolvendo o estoque de todos os
	// itens da venda na mesma transação
	Cancel(ctx context.Context, v *Venda, c *Cancelamento) error
}
