package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-supermercado/internal/adapter/api/controller"
)

// SetupProdutoRoutes configura as rotas de produtos
func SetupProdutoRoutes(router *gin.RouterGroup, produtoController *controller.ProdutoController, authMiddleware gin.HandlerFunc) {
	produtoRouter := router.Group("/produtos")
	produtoRouter.Use(authMiddleware)
	{
		produtoRouter.POST("", produtoController.Create)
		produtoRouter.GET("", produtoController.List)
		produtoRouter.GET("/:id", produtoController.Get)
		produtoRouter.POST("/:id/estoque", produtoController.AdjustStock)
		produtoRouter.GET("/:id/movimentacoes", produtoController.ListMovimentacoes)
	}
}
