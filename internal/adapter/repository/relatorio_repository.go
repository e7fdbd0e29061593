package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/pdv-supermercado/internal/domain/relatorio"
	"github.com/hugohenrick/pdv-supermercado/internal/domain/venda"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RelatorioRepository implementa as projeções de leitura sobre vendas
// liquidadas. Apenas vendas com status PAID entram nas agregações.
type RelatorioRepository struct {
	db *pgxpool.Pool
}

// NewRelatorioRepository cria uma nova instância de RelatorioRepository
func NewRelatorioRepository(db *pgxpool.Pool) relatorio.Repository {
	return &RelatorioRepository{
		db: db,
	}
}

// VendasPorDia implementa relatorio.Repository.VendasPorDia
func (r *RelatorioRepository) VendasPorDia(ctx context.Context, desde time.Time) ([]*relatorio.VendasPorDia, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DATE(created_at) AS data,
			COUNT(id) AS quantidade,
			COALESCE(SUM(total_liquido), 0) AS total
		FROM vendas
		WHERE created_at >= $1 AND status = $2
		GROUP BY DATE(created_at)
		ORDER BY data ASC`,
		desde, venda.StatusPaid)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas por dia: %w", err)
	}
	defer rows.Close()

	var resultado []*relatorio.VendasPorDia
	for rows.Next() {
		var dia relatorio.VendasPorDia
		if err := rows.Scan(&dia.Data, &dia.Quantidade, &dia.Total); err != nil {
			return nil, fmt.Errorf("erro ao ler vendas por dia: %w", err)
		}
		resultado = append(resultado, &dia)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer vendas por dia: %w", err)
	}

	return resultado, nil
}

// ProdutosMaisVendidos implementa relatorio.Repository.ProdutosMaisVendidos
func (r *RelatorioRepository) ProdutosMaisVendidos(ctx context.Context, limit int) ([]*relatorio.ProdutoMaisVendido, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.nome,
			COALESCE(SUM(i.quantidade), 0) AS total_vendido
		FROM produtos p
		JOIN itens_venda i ON i.produto_id = p.id
		JOIN vendas v ON v.id = i.venda_id
		WHERE v.status = $1
		GROUP BY p.id, p.nome
		ORDER BY SUM(i.quantidade) DESC
		LIMIT $2`,
		venda.StatusPaid, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar produtos mais vendidos: %w", err)
	}
	defer rows.Close()

	var resultado []*relatorio.ProdutoMaisVendido
	for rows.Next() {
		var p relatorio.ProdutoMaisVendido
		if err := rows.Scan(&p.Nome, &p.TotalVendido); err != nil {
			return nil, fmt.Errorf("erro ao ler produto mais vendido: %w", err)
		}
		resultado = append(resultado, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer produtos mais vendidos: %w", err)
	}

	return resultado, nil
}
