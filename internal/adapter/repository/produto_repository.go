package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/pdv-supermercado/internal/domain/produto"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProdutoRepository implementa a interface produto.Repository
type ProdutoRepository struct {
	db *pgxpool.Pool
}

// NewProdutoRepository cria uma nova instância de ProdutoRepository
func NewProdutoRepository(db *pgxpool.Pool) produto.Repository {
	return &ProdutoRepository{
		db: db,
	}
}

// Create implementa produto.Repository.Create
func (r *ProdutoRepository) Create(ctx context.Context, p *produto.Produto) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO produtos (
			id, nome, sku, preco, estoque_atual, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Nome, p.SKU, p.Preco, p.EstoqueAtual, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return produto.ErrDuplicateSKU
		}
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa produto.Repository.FindByID
func (r *ProdutoRepository) FindByID(ctx context.Context, id string) (*produto.Produto, error) {
	var p produto.Produto

	err := r.db.QueryRow(ctx,
		`SELECT id, nome, sku, preco, estoque_atual, created_at, updated_at
		FROM produtos WHERE id = $1`,
		id).Scan(&p.ID, &p.Nome, &p.SKU, &p.Preco, &p.EstoqueAtual, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, produto.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return &p, nil
}

// FindBySKU implementa produto.Repository.FindBySKU
func (r *ProdutoRepository) FindBySKU(ctx context.Context, sku string) (*produto.Produto, error) {
	var p produto.Produto

	err := r.db.QueryRow(ctx,
		`SELECT id, nome, sku, preco, estoque_atual, created_at, updated_at
		FROM produtos WHERE sku = $1`,
		sku).Scan(&p.ID, &p.Nome, &p.SKU, &p.Preco, &p.EstoqueAtual, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, produto.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return &p, nil
}

// List implementa produto.Repository.List
func (r *ProdutoRepository) List(ctx context.Context, limit, offset int) ([]*produto.Produto, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, nome, sku, preco, estoque_atual, created_at, updated_at
		FROM produtos
		ORDER BY nome ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	var produtos []*produto.Produto
	for rows.Next() {
		var p produto.Produto
		if err := rows.Scan(&p.ID, &p.Nome, &p.SKU, &p.Preco, &p.EstoqueAtual, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		produtos = append(produtos, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer produtos: %w", err)
	}

	return produtos, nil
}

// Count implementa produto.Repository.Count
func (r *ProdutoRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM produtos`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	return total, nil
}

// Update implementa produto.Repository.Update
func (r *ProdutoRepository) Update(ctx context.Context, p *produto.Produto) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE produtos
		SET nome = $2, preco = $3, updated_at = $4
		WHERE id = $1`,
		p.ID, p.Nome, p.Preco, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return produto.ErrNotFound
	}

	return nil
}

// ReserveStock implementa produto.Repository.ReserveStock
func (r *ProdutoRepository) ReserveStock(ctx context.Context, id string, quantidade int) error {
	return reserveStock(ctx, r.db, id, quantidade)
}

// ReleaseStock implementa produto.Repository.ReleaseStock
func (r *ProdutoRepository) ReleaseStock(ctx context.Context, id string, quantidade int) error {
	return releaseStock(ctx, r.db, id, quantidade)
}
