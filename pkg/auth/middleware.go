package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-supermercado/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-supermercado/internal/domain/usuario"
)

// contextUserKey é a chave do usuário resolvido no contexto da requisição
const contextUserKey = "current_user"

// JWTAuthMiddleware cria um middleware que valida o token Bearer e
// resolve o usuário autenticado no repositório. O motor de vendas
// nunca enxerga o token, apenas o usuário resolvido.
func JWTAuthMiddleware(jwtService *JWTService, usuarios usuario.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				"O cabeçalho Authorization não foi fornecido",
			))
			return
		}

		// Verificar o formato "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Formato de token inválido",
				"Use o formato 'Bearer <token>'",
			))
			return
		}

		claims, err := jwtService.ValidateToken(tokenParts[1])
		if err != nil {
			message := "Token inválido"
			if errors.Is(err, ErrExpiredToken) {
				message = "Token expirado"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized, message, err.Error(),
			))
			return
		}

		u, err := usuarios.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, usuario.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
					http.StatusUnauthorized, "Usuário não encontrado", err.Error(),
				))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
				http.StatusInternalServerError, "Erro ao resolver usuário", err.Error(),
			))
			return
		}

		c.Set(contextUserKey, u)
		c.Next()
	}
}

// CurrentUser retorna o usuário resolvido pelo middleware de autenticação
func CurrentUser(c *gin.Context) *usuario.Usuario {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil
	}

	u, ok := value.(*usuario.Usuario)
	if !ok {
		return nil
	}

	return u
}
