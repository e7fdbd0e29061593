package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/pdv-supermercado/internal/domain/estoque"
	"github.com/hugohenrick/pdv-supermercado/internal/domain/produto"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier é o subconjunto de pgxpool.Pool e pgx.Tx usado pelos helpers
// de estoque, permitindo que as mesmas operações rodem dentro ou fora
// de uma transação
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// reserveStock decrementa o estoque do produto em uma única instrução
// condicional. Nunca lê e depois escreve: a condição no UPDATE garante
// que o estoque não fica negativo mesmo sob concorrência.
func reserveStock(ctx context.Context, q querier, produtoID string, quantidade int) error {
	tag, err := q.Exec(ctx,
		`UPDATE produtos
		SET estoque_atual = estoque_atual - $2, updated_at = now()
		WHERE id = $1 AND estoque_atual >= $2`,
		produtoID, quantidade)
	if err != nil {
		return fmt.Errorf("erro ao reservar estoque: %w", err)
	}

	if tag.RowsAffected() == 0 {
		// Distinguir produto inexistente de estoque insuficiente
		var exists bool
		if err := q.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM produtos WHERE id = $1)`,
			produtoID).Scan(&exists); err != nil {
			return fmt.Errorf("erro ao verificar produto: %w", err)
		}
		if !exists {
			return produto.ErrNotFound
		}
		return produto.ErrEstoqueInsuficiente
	}

	return nil
}

// releaseStock devolve a quantidade ao estoque do produto
func releaseStock(ctx context.Context, q querier, produtoID string, quantidade int) error {
	tag, err := q.Exec(ctx,
		`UPDATE produtos
		SET estoque_atual = estoque_atual + $2, updated_at = now()
		WHERE id = $1`,
		produtoID, quantidade)
	if err != nil {
		return fmt.Errorf("erro ao devolver estoque: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return produto.ErrNotFound
	}

	return nil
}

// insertMovimentacao grava um registro no livro de movimentações
func insertMovimentacao(ctx context.Context, q querier, m *estoque.MovimentacaoEstoque) error {
	var referencia interface{}
	if m.ReferenciaVendaID != "" {
		referencia = m.ReferenciaVendaID
	}

	_, err := q.Exec(ctx,
		`INSERT INTO movimentacoes_estoque (
			id, produto_id, tipo_movimentacao, quantidade,
			referencia_venda_id, observacao, data_hora
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.ProdutoID, m.TipoMovimentacao, m.Quantidade,
		referencia, m.Observacao, m.DataHora)
	if err != nil {
		return fmt.Errorf("erro ao registrar movimentação de estoque: %w", err)
	}

	return nil
}
