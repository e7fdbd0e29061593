package dto

import (
	"time"

	"github.com/hugohenrick/pdv-supermercado/internal/domain/usuario"
)

// LoginRequest representa os dados para login
type LoginRequest struct {
	NomeUsuario string `json:"nome_usuario" binding:"required"`
	Senha       string `json:"senha" binding:"required"`
}

// LoginResponse representa a resposta de login bem-sucedido
type LoginResponse struct {
	User        UsuarioResponse `json:"user"`
	AccessToken string          `json:"access_token"`
	ExpiresAt   time.Time       `json:"expires_at"`
}

// UsuarioRequest representa os dados para criação de usuário
type UsuarioRequest struct {
	NomeUsuario  string `json:"nome_usuario" binding:"required"`
	Senha        string `json:"senha" binding:"required"`
	NivelAcesso  string `json:"nivel_acesso" binding:"required"`
	NomeCompleto string `json:"nome_completo"`
}

// UsuarioResponse representa um usuário nas respostas da API
type UsuarioResponse struct {
	ID           string `json:"id"`
	NomeUsuario  string `json:"nome_usuario"`
	NivelAcesso  string `json:"nivel_acesso"`
	NomeCompleto string `json:"nome_completo"`
}

// ToUsuarioResponse converte um usuário do domínio para a resposta da API
func ToUsuarioResponse(u *usuario.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:           u.ID,
		NomeUsuario:  u.NomeUsuario,
		NivelAcesso:  string(u.NivelAcesso),
		NomeCompleto: u.NomeCompleto,
	}
}
