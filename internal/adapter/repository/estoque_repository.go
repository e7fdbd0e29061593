package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/pdv-supermercado/internal/domain/estoque"
	"github.com/hugohenrick/pdv-supermercado/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// EstoqueRepository implementa a interface estoque.Repository
type EstoqueRepository struct {
	db *database.PostgresDB
}

// NewEstoqueRepository cria uma nova instância de EstoqueRepository
func NewEstoqueRepository(db *database.PostgresDB) estoque.Repository {
	return &EstoqueRepository{
		db: db,
	}
}

// Create implementa estoque.Repository.Create
func (r *EstoqueRepository) Create(ctx context.Context, m *estoque.MovimentacaoEstoque) error {
	return insertMovimentacao(ctx, r.db.Pool(), m)
}

// Adjust implementa estoque.Repository.Adjust. A alteração do estoque e
// o registro no livro acontecem na mesma transação: ou os dois efeitos
// são gravados, ou nenhum.
func (r *EstoqueRepository) Adjust(ctx context.Context, m *estoque.MovimentacaoEstoque, delta int) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		if delta >= 0 {
			if err := releaseStock(ctx, tx, m.ProdutoID, delta); err != nil {
				return err
			}
		} else {
			// A baixa condicional impede que o ajuste deixe o estoque negativo
			if err := reserveStock(ctx, tx, m.ProdutoID, -delta); err != nil {
				return err
			}
		}

		return insertMovimentacao(ctx, tx, m)
	})
}

// ListByProduto implementa estoque.Repository.ListByProduto
func (r *EstoqueRepository) ListByProduto(ctx context.Context, produtoID string, limit, offset int) ([]*estoque.MovimentacaoEstoque, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, produto_id, tipo_movimentacao, quantidade,
			referencia_venda_id, observacao, data_hora
		FROM movimentacoes_estoque
		WHERE produto_id = $1
		ORDER BY data_hora DESC
		LIMIT $2 OFFSET $3`,
		produtoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar movimentações: %w", err)
	}
	defer rows.Close()

	var movimentacoes []*estoque.MovimentacaoEstoque
	for rows.Next() {
		m, err := scanMovimentacao(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler movimentação: %w", err)
		}
		movimentacoes = append(movimentacoes, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer movimentações: %w", err)
	}

	return movimentacoes, nil
}

// scanMovimentacao lê uma linha do livro de movimentações. A referência
// de venda e a observação são colunas anuláveis e viram string vazia
// quando ausentes.
func scanMovimentacao(row pgx.Row) (*estoque.MovimentacaoEstoque, error) {
	var m estoque.MovimentacaoEstoque
	var referencia, observacao *string

	if err := row.Scan(&m.ID, &m.ProdutoID, &m.TipoMovimentacao,
		&m.Quantidade, &referencia, &observacao, &m.DataHora); err != nil {
		return nil, err
	}

	if referencia != nil {
		m.ReferenciaVendaID = *referencia
	}
	if observacao != nil {
		m.Observacao = *observacao
	}

	return &m, nil
}
