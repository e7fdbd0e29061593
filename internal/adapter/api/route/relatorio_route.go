package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-supermercado/internal/adapter/api/controller"
)

// SetupRelatorioRoutes configura as rotas de relatórios
func SetupRelatorioRoutes(router *gin.RouterGroup, relatorioController *controller.RelatorioController, authMiddleware gin.HandlerFunc) {
	relatorioRouter := router.Group("/relatorios")
	relatorioRouter.Use(authMiddleware)
	{
		relatorioRouter.GET("/vendas", relatorioController.VendasPorDia)
		relatorioRouter.GET("/produtos-mais-vendidos", relatorioController.ProdutosMaisVendidos)
	}
}
