package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/pdv-supermercado/internal/domain/usuario"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UsuarioRepository implementa a interface usuario.Repository
type UsuarioRepository struct {
	db *pgxpool.Pool
}

// NewUsuarioRepository cria uma nova instância de UsuarioRepository
func NewUsuarioRepository(db *pgxpool.Pool) usuario.Repository {
	return &UsuarioRepository{
		db: db,
	}
}

// Create implementa usuario.Repository.Create
func (r *UsuarioRepository) Create(ctx context.Context, u *usuario.Usuario) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO usuarios (
			id, nome_usuario, senha_hash, nivel_acesso, nome_completo,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.NomeUsuario, u.SenhaHash, u.NivelAcesso, u.NomeCompleto,
		u.CreatedAt, u.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return usuario.ErrDuplicateUsername
		}
		return fmt.Errorf("erro ao criar usuário: %w", err)
	}

	return nil
}

// FindByID implementa usuario.Repository.FindByID
func (r *UsuarioRepository) FindByID(ctx context.Context, id string) (*usuario.Usuario, error) {
	var u usuario.Usuario

	err := r.db.QueryRow(ctx,
		`SELECT id, nome_usuario, senha_hash, nivel_acesso, nome_completo,
			created_at, updated_at
		FROM usuarios WHERE id = $1`,
		id).Scan(&u.ID, &u.NomeUsuario, &u.SenhaHash, &u.NivelAcesso,
		&u.NomeCompleto, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usuario.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return &u, nil
}

// FindByNomeUsuario implementa usuario.Repository.FindByNomeUsuario
func (r *UsuarioRepository) FindByNomeUsuario(ctx context.Context, nomeUsuario string) (*usuario.Usuario, error) {
	var u usuario.Usuario

	err := r.db.QueryRow(ctx,
		`SELECT id, nome_usuario, senha_hash, nivel_acesso, nome_completo,
			created_at, updated_at
		FROM usuarios WHERE nome_usuario = $1`,
		nomeUsuario).Scan(&u.ID, &u.NomeUsuario, &u.SenhaHash, &u.NivelAcesso,
		&u.NomeCompleto, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usuario.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return &u, nil
}

// List implementa usuario.Repository.List
func (r *UsuarioRepository) List(ctx context.Context, limit, offset int) ([]*usuario.Usuario, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, nome_usuario, senha_hash, nivel_acesso, nome_completo,
			created_at, updated_at
		FROM usuarios
		ORDER BY nome_usuario ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar usuários: %w", err)
	}
	defer rows.Close()

	var usuarios []*usuario.Usuario
	for rows.Next() {
		var u usuario.Usuario
		if err := rows.Scan(&u.ID, &u.NomeUsuario, &u.SenhaHash, &u.NivelAcesso,
			&u.NomeCompleto, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler usuário: %w", err)
		}
		usuarios = append(usuarios, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer usuários: %w", err)
	}

	return usuarios, nil
}
