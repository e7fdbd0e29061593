package usuario

import (
	"context"
)

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, u *Usuario) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*Usuario, error)

	// FindByNomeUsuario busca um usuário pelo nome de usuário
	FindByNomeUsuario(ctx context.Context, nomeUsuario string) (*Usuario, error)

	// List lista os usuários com paginação
	List(ctx context.Context, limit, offset int) ([]*Usuario, error)
}
