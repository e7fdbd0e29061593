package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/pdv-supermercado/internal/domain/estoque"
	"github.com/hugohenrick/pdv-supermercado/internal/domain/venda"
	"github.com/hugohenrick/pdv-supermercado/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// VendaRepository implementa a interface venda.Repository. As operações
// do ciclo de vida rodam em uma única transação: venda, itens, registros
// de auditoria e estoque são gravados juntos ou não são gravados.
type VendaRepository struct {
	db *database.PostgresDB
}

// NewVendaRepository cria uma nova instância de VendaRepository
func NewVendaRepository(db *database.PostgresDB) venda.Repository {
	return &VendaRepository{
		db: db,
	}
}

// Create implementa venda.Repository.Create
func (r *VendaRepository) Create(ctx context.Context, v *venda.Venda) error {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO vendas (
			id, status, total_bruto, desconto_aplicado, total_liquido,
			usuario_caixa_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		v.ID, v.Status, v.TotalBruto, v.DescontoAplicado, v.TotalLiquido,
		v.UsuarioCaixaID, v.CreatedAt, v.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar venda: %w", err)
	}

	return nil
}

// FindByID implementa venda.Repository.FindByID
func (r *VendaRepository) FindByID(ctx context.Context, id string) (*venda.Venda, error) {
	var v venda.Venda
	var metodo, motivo *string

	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, status, total_bruto, desconto_aplicado, total_liquido,
			metodo_pagamento, motivo_cancelamento, usuario_caixa_id,
			created_at, updated_at
		FROM vendas WHERE id = $1`,
		id).Scan(&v.ID, &v.Status, &v.TotalBruto, &v.DescontoAplicado,
		&v.TotalLiquido, &metodo, &motivo, &v.UsuarioCaixaID,
		&v.CreatedAt, &v.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, venda.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	if metodo != nil {
		v.MetodoPagamento = venda.MetodoPagamento(*metodo)
	}
	if motivo != nil {
		v.MotivoCancelamento = *motivo
	}

	itens, err := r.findItens(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Itens = itens

	return &v, nil
}

// List implementa venda.Repository.List
func (r *VendaRepository) List(ctx context.Context, limit, offset int) ([]*venda.Venda, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, status, total_bruto, desconto_aplicado, total_liquido,
			metodo_pagamento, motivo_cancelamento, usuario_caixa_id,
			created_at, updated_at
		FROM vendas
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	var vendas []*venda.Venda
	for rows.Next() {
		var v venda.Venda
		var metodo, motivo *string

		if err := rows.Scan(&v.ID, &v.Status, &v.TotalBruto, &v.DescontoAplicado,
			&v.TotalLiquido, &metodo, &motivo, &v.UsuarioCaixaID,
			&v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}

		if metodo != nil {
			v.MetodoPagamento = venda.MetodoPagamento(*metodo)
		}
		if motivo != nil {
			v.MotivoCancelamento = *motivo
		}

		itens, err := r.findItens(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		v.Itens = itens

		vendas = append(vendas, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer vendas: %w", err)
	}

	return vendas, nil
}

// AddItem implementa venda.Repository.AddItem
func (r *VendaRepository) AddItem(ctx context.Context, v *venda.Venda, item *venda.ItemVenda) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		// Reserva pessimista: o estoque é baixado na adição do item,
		// não no pagamento
		if err := reserveStock(ctx, tx, item.ProdutoID, item.Quantidade); err != nil {
			return err
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO itens_venda (
				id, venda_id, produto_id, nome_produto, quantidade,
				preco_unitario, subtotal
			) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, item.VendaID, item.ProdutoID, item.NomeProduto,
			item.Quantidade, item.PrecoUnitario, item.Subtotal)
		if err != nil {
			return fmt.Errorf("erro ao inserir item da venda: %w", err)
		}

		if err := r.updateTotais(ctx, tx, v); err != nil {
			return err
		}

		m, err := estoque.NewMovimentacao(item.ProdutoID, estoque.MovimentacaoSaida,
			item.Quantidade, v.ID, fmt.Sprintf("Venda %s", v.ID))
		if err != nil {
			return err
		}

		return insertMovimentacao(ctx, tx, m)
	})
}

// ApplyDiscount implementa venda.Repository.ApplyDiscount
func (r *VendaRepository) ApplyDiscount(ctx context.Context, v *venda.Venda, d *venda.Desconto) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO descontos (
				id, venda_id, valor, tipo, autorizado_por, motivo, data_hora
			) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			d.ID, d.VendaID, d.Valor, d.Tipo, d.AutorizadoPor, d.Motivo, d.DataHora)
		if err != nil {
			return fmt.Errorf("erro ao registrar desconto: %w", err)
		}

		return r.updateTotais(ctx, tx, v)
	})
}

// Pay implementa venda.Repository.Pay
func (r *VendaRepository) Pay(ctx context.Context, v *venda.Venda, p *venda.Pagamento) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO pagamentos (
				id, venda_id, valor, metodo, status, data_hora
			) VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, p.VendaID, p.Valor, p.Metodo, p.Status, p.DataHora)
		if err != nil {
			return fmt.Errorf("erro ao registrar pagamento: %w", err)
		}

		return r.updateStatus(ctx, tx, v)
	})
}

// Cancel implementa venda.Repository.Cancel
func (r *VendaRepository) Cancel(ctx context.Context, v *venda.Venda, c *venda.Cancelamento) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		// A restrição de unicidade em cancelamentos.venda_id é a última
		// barreira contra devolver o estoque de uma mesma venda duas vezes
		_, err := tx.Exec(ctx,
			`INSERT INTO cancelamentos (
				id, venda_id, cancelado_por, motivo, estoque_reposto,
				estorno_realizado, data_hora
			) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			c.ID, c.VendaID, c.CanceladoPor, c.Motivo, c.EstoqueReposto,
			c.EstornoRealizado, c.DataHora)
		if err != nil {
			if strings.Contains(err.Error(), "duplicate key") {
				return venda.ErrVendaJaCancelada
			}
			return fmt.Errorf("erro ao registrar cancelamento: %w", err)
		}

		for _, item := range v.Itens {
			if err := releaseStock(ctx, tx, item.ProdutoID, item.Quantidade); err != nil {
				return err
			}

			m, err := estoque.NewMovimentacao(item.ProdutoID,
				estoque.MovimentacaoCancelamento, item.Quantidade, v.ID,
				fmt.Sprintf("Cancelamento da venda %s", v.ID))
			if err != nil {
				return err
			}

			if err := insertMovimentacao(ctx, tx, m); err != nil {
				return err
			}
		}

		return r.updateStatus(ctx, tx, v)
	})
}

// findItens carrega os itens da venda na ordem em que foram adicionados
func (r *VendaRepository) findItens(ctx context.Context, vendaID string) ([]venda.ItemVenda, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, venda_id, produto_id, nome_produto, quantidade,
			preco_unitario, subtotal
		FROM itens_venda
		WHERE venda_id = $1
		ORDER BY ordem ASC`,
		vendaID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens da venda: %w", err)
	}
	defer rows.Close()

	itens := []venda.ItemVenda{}
	for rows.Next() {
		var item venda.ItemVenda
		if err := rows.Scan(&item.ID, &item.VendaID, &item.ProdutoID,
			&item.NomeProduto, &item.Quantidade, &item.PrecoUnitario,
			&item.Subtotal); err != nil {
			return nil, fmt.Errorf("erro ao ler item da venda: %w", err)
		}
		itens = append(itens, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer itens da venda: %w", err)
	}

	return itens, nil
}

// updateTotais persiste os totais recalculados da venda
func (r *VendaRepository) updateTotais(ctx context.Context, tx pgx.Tx, v *venda.Venda) error {
	tag, err := tx.Exec(ctx,
		`UPDATE vendas
		SET total_bruto = $2, desconto_aplicado = $3, total_liquido = $4,
			updated_at = $5
		WHERE id = $1`,
		v.ID, v.TotalBruto, v.DescontoAplicado, v.TotalLiquido, v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar totais da venda: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return venda.ErrNotFound
	}

	return nil
}

// updateStatus persiste uma transição de estado da venda
func (r *VendaRepository) updateStatus(ctx context.Context, tx pgx.Tx, v *venda.Venda) error {
	var metodo, motivo interface{}
	if v.MetodoPagamento != "" {
		metodo = string(v.MetodoPagamento)
	}
	if v.MotivoCancelamento != "" {
		motivo = v.MotivoCancelamento
	}

	tag, err := tx.Exec(ctx,
		`UPDATE vendas
		SET status = $2, metodo_pagamento = $3, motivo_cancelamento = $4,
			updated_at = $5
		WHERE id = $1`,
		v.ID, v.Status, metodo, motivo, v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status da venda: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return venda.ErrNotFound
	}

	return nil
}
