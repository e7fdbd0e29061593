package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-supermercado/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-supermercado/internal/domain/relatorio"
	"github.com/hugohenrick/pdv-supermercado/pkg/logger"
)

// RelatorioController gerencia as requisições de relatórios
type RelatorioController struct {
	relatorios relatorio.Repository
	logger     logger.Logger
}

// NewRelatorioController cria uma nova instância de RelatorioController
func NewRelatorioController(relatorios relatorio.Repository, logger logger.Logger) *RelatorioController {
	return &RelatorioController{
		relatorios: relatorios,
		logger:     logger,
	}
}

// VendasPorDia retorna as vendas pagas dos últimos 30 dias agrupadas por dia
// @Summary Relatório de vendas
// @Description Vendas pagas dos últimos 30 dias agrupadas por dia
// @Tags relatorios
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.VendasPorDiaResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/vendas [get]
func (c *RelatorioController) VendasPorDia(ctx *gin.Context) {
	desde := time.Now().AddDate(0, 0, -30)

	dias, err := c.relatorios.VendasPorDia(ctx, desde)
	if err != nil {
		c.logger.Error("erro ao consultar relatório de vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao consultar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVendasPorDiaResponse(dias))
}

// ProdutosMaisVendidos retorna os dez produtos mais vendidos
// @Summary Produtos mais vendidos
// @Description Dez produtos mais vendidos em quantidade, considerando apenas vendas pagas
// @Tags relatorios
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.ProdutoMaisVendidoResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/produtos-mais-vendidos [get]
func (c *RelatorioController) ProdutosMaisVendidos(ctx *gin.Context) {
	produtos, err := c.relatorios.ProdutosMaisVendidos(ctx, 10)
	if err != nil {
		c.logger.Error("erro ao consultar produtos mais vendidos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao consultar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProdutosMaisVendidosResponse(produtos))
}
