package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-supermercado/internal/adapter/api/controller"
)

// SetupAuthRoutes configura as rotas para autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController, authMiddleware gin.HandlerFunc) {
	authRouter := router.Group("/auth")
	{
		// Rota de login (não requer autenticação)
		authRouter.POST("/login", authController.Login)

		// Rota para obter informações do usuário logado (requer autenticação)
		authRouter.GET("/me", authMiddleware, authController.Me)
	}

	// Criação de usuários (requer gerente autenticado)
	router.POST("/usuarios", authMiddleware, authController.CreateUsuario)
}
