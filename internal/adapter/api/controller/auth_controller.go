package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-supermercado/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-supermercado/internal/domain/usuario"
	"github.com/hugohenrick/pdv-supermercado/pkg/auth"
	"github.com/hugohenrick/pdv-supermercado/pkg/logger"
)

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	usuarios   usuario.Repository
	jwtService *auth.JWTService
	logger     logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(usuarios usuario.Repository, jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		usuarios:   usuarios,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login autentica um usuário e retorna um token JWT
// @Summary Autentica um usuário
// @Description Verifica as credenciais do usuário e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	u, err := c.usuarios.FindByNomeUsuario(ctx, req.NomeUsuario)
	if err != nil {
		if errors.Is(err, usuario.ErrNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Usuário ou senha incorretos"))
			return
		}
		c.logger.Error("erro ao autenticar usuário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao autenticar usuário", err.Error()))
		return
	}

	if !u.CheckPassword(req.Senha) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Usuário ou senha incorretos"))
		return
	}

	token, expiresAt, err := c.jwtService.GenerateToken(u)
	if err != nil {
		c.logger.Error("erro ao gerar token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User:        dto.ToUsuarioResponse(u),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	})
}

// Me retorna os dados do usuário autenticado
// @Summary Usuário autenticado
// @Description Retorna os dados do usuário resolvido a partir do token
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.UsuarioResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	u := auth.CurrentUser(ctx)
	if u == nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Autenticação requerida", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUsuarioResponse(u))
}

// CreateUsuario cria um novo usuário do sistema
// @Summary Criar usuário
// @Description Cria um novo operador (CAIXA ou GERENTE)
// @Tags auth
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param usuario body dto.UsuarioRequest true "Dados do usuário"
// @Success 201 {object} dto.UsuarioResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /usuarios [post]
func (c *AuthController) CreateUsuario(ctx *gin.Context) {
	actor := auth.CurrentUser(ctx)
	if actor == nil || !actor.IsGerente() {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Apenas gerentes podem criar usuários", ""))
		return
	}

	var req dto.UsuarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	u, err := usuario.NewUsuario(req.NomeUsuario, req.Senha, usuario.NivelAcesso(req.NivelAcesso), req.NomeCompleto)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar usuário", err.Error()))
		return
	}

	if err := c.usuarios.Create(ctx, u); err != nil {
		if errors.Is(err, usuario.ErrDuplicateUsername) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Usuário já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao salvar usuário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao salvar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUsuarioResponse(u))
}
