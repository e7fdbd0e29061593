package usuario

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound          = errors.New("usuário não encontrado")
	ErrEmptyUsername     = errors.New("nome de usuário não pode ser vazio")
	ErrDuplicateUsername = errors.New("já existe um usuário com este nome")
	ErrInvalidNivel      = errors.New("nível de acesso inválido")
)

// NivelAcesso representa o nível de acesso do usuário
type NivelAcesso string

const (
	NivelCaixa   NivelAcesso = "CAIXA"   // Operador de caixa
	NivelGerente NivelAcesso = "GERENTE" // Gerente da loja
)

// Usuario representa um operador autenticado do sistema.
// O motor de vendas recebe o usuário já resolvido pela camada de
// autenticação e confia no nível de acesso informado.
type Usuario struct {
	ID           string      `json:"id"`
	NomeUsuario  string      `json:"nome_usuario"`
	SenhaHash    string      `json:"-"`
	NivelAcesso  NivelAcesso `json:"nivel_acesso"`
	NomeCompleto string      `json:"nome_completo"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// NewUsuario cria um novo usuário do sistema
func NewUsuario(nomeUsuario, senha string, nivel NivelAcesso, nomeCompleto string) (*Usuario, error) {
	if nomeUsuario == "" {
		return nil, ErrEmptyUsername
	}

	if nivel != NivelCaixa && nivel != NivelGerente {
		return nil, ErrInvalidNivel
	}

	now := time.Now()
	u := &Usuario{
		ID:           uuid.New().String(),
		NomeUsuario:  nomeUsuario,
		NivelAcesso:  nivel,
		NomeCompleto: nomeCompleto,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.SetPassword(senha); err != nil {
		return nil, err
	}

	return u, nil
}

// SetPassword configura a senha do usuário com hash
func (u *Usuario) SetPassword(senha string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.SenhaHash = string(hash)
	u.UpdatedAt = time.Now()
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *Usuario) CheckPassword(senha string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(senha))
	return err == nil
}

// IsGerente verifica se o usuário é gerente
func (u *Usuario) IsGerente() bool {
	return u.NivelAcesso == NivelGerente
}
