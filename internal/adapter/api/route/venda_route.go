package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-supermercado/internal/adapter/api/controller"
)

// SetupVendaRoutes configura as rotas do ciclo de vida da venda
func SetupVendaRoutes(router *gin.RouterGroup, vendaController *controller.VendaController, authMiddleware gin.HandlerFunc) {
	vendaRouter := router.Group("/vendas")
	vendaRouter.Use(authMiddleware)
	{
		vendaRouter.POST("", vendaController.Create)
		vendaRouter.GET("", vendaController.List)
		vendaRouter.GET("/:id", vendaController.Get)
		vendaRouter.POST("/:id/itens", vendaController.AddItem)
		vendaRouter.POST("/:id/desconto", vendaController.ApplyDiscount)
		vendaRouter.POST("/:id/pagamento", vendaController.Pay)
		vendaRouter.POST("/:id/cancelar", vendaController.Cancel)
	}
}
