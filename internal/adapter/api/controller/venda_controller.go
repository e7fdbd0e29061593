package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-supermercado/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-supermercado/internal/domain/produto"
	"github.com/hugohenrick/pdv-supermercado/internal/domain/venda"
	"github.com/hugohenrick/pdv-supermercado/internal/service"
	"github.com/hugohenrick/pdv-supermercado/pkg/auth"
	"github.com/hugohenrick/pdv-supermercado/pkg/logger"
)

// VendaController gerencia as requisições do ciclo de vida da venda
type VendaController struct {
	vendas *service.VendaService
	logger logger.Logger
}

// NewVendaController cria uma nova instância de VendaController
func NewVendaController(vendas *service.VendaService, logger logger.Logger) *VendaController {
	return &VendaController{
		vendas: vendas,
		logger: logger,
	}
}

// Create abre uma nova venda
// @Summary Criar venda
// @Description Abre uma nova venda para o operador autenticado
// @Tags vendas
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 201 {object} dto.VendaResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vendas [post]
func (c *VendaController) Create(ctx *gin.Context) {
	actor := auth.CurrentUser(ctx)

	v, err := c.vendas.Create(ctx, actor)
	if err != nil {
		c.logger.Error("erro ao criar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToVendaResponse(v))
}

// Get retorna uma venda pelo ID
// @Summary Buscar venda
// @Description Retorna os dados de uma venda com seus itens
// @Tags vendas
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.VendaResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vendas/{id} [get]
func (c *VendaController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	v, err := c.vendas.Get(ctx, id)
	if err != nil {
		c.respondError(ctx, err, "Erro ao buscar venda")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVendaResponse(v))
}

// List retorna a lista de vendas
// @Summary Listar vendas
// @Description Retorna as vendas paginadas, da mais recente para a mais antiga
// @Tags vendas
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.VendaListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vendas [get]
func (c *VendaController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	pagination := dto.GetPagination(page, size)
	offset := (pagination.Page - 1) * pagination.PageSize

	vendas, err := c.vendas.List(ctx, pagination.PageSize, offset)
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVendaListResponse(vendas, pagination.Page, pagination.PageSize))
}

// AddItem adiciona um item à venda
// @Summary Adicionar item
// @Description Adiciona um item à venda reservando o estoque do produto
// @Tags vendas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Param item body dto.AddItemRequest true "Produto e quantidade"
// @Success 201 {object} dto.VendaResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vendas/{id}/itens [post]
func (c *VendaController) AddItem(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	// Quantidade padrão de 1 quando o chamador omite o campo
	if req.Quantidade == 0 {
		req.Quantidade = 1
	}

	v, err := c.vendas.AddItem(ctx, id, req.ProdutoID, req.Quantidade)
	if err != nil {
		c.respondError(ctx, err, "Erro ao adicionar item")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToVendaResponse(v))
}

// ApplyDiscount aplica um desconto à venda
// @Summary Aplicar desconto
// @Description Aplica um desconto FIXO ou PERCENTUAL autorizado por um gerente
// @Tags vendas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Param desconto body dto.DescontoRequest true "Valor, tipo e motivo do desconto"
// @Success 200 {object} dto.DescontoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vendas/{id}/desconto [post]
func (c *VendaController) ApplyDiscount(ctx *gin.Context) {
	id := ctx.Param("id")
	actor := auth.CurrentUser(ctx)

	var req dto.DescontoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	valorDesconto, v, err := c.vendas.ApplyDiscount(ctx, id, actor, req.Valor, venda.TipoDesconto(req.Tipo), req.Motivo)
	if err != nil {
		c.respondError(ctx, err, "Erro ao aplicar desconto")
		return
	}

	ctx.JSON(http.StatusOK, dto.DescontoResponse{
		Message:       "Desconto aplicado com sucesso",
		ValorDesconto: valorDesconto,
		TotalLiquido:  v.TotalLiquido,
	})
}

// Pay liquida a venda
// @Summary Pagar venda
// @Description Liquida a venda com valor exato e método DINHEIRO, CARTAO ou PIX
// @Tags vendas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Param pagamento body dto.PagamentoRequest true "Método e valor do pagamento"
// @Success 200 {object} dto.VendaResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vendas/{id}/pagamento [post]
func (c *VendaController) Pay(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.PagamentoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	v, err := c.vendas.Pay(ctx, id, venda.MetodoPagamento(req.Metodo), req.Valor)
	if err != nil {
		c.respondError(ctx, err, "Erro ao processar pagamento")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVendaResponse(v))
}

// Cancel cancela a venda
// @Summary Cancelar venda
// @Description Cancela uma venda aberta ou paga, devolvendo o estoque dos itens
// @Tags vendas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Param cancelamento body dto.CancelamentoRequest true "Motivo do cancelamento"
// @Success 200 {object} dto.CancelamentoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vendas/{id}/cancelar [post]
func (c *VendaController) Cancel(ctx *gin.Context) {
	id := ctx.Param("id")
	actor := auth.CurrentUser(ctx)

	var req dto.CancelamentoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	v, estorno, err := c.vendas.Cancel(ctx, id, actor, req.Motivo)
	if err != nil {
		c.respondError(ctx, err, "Erro ao cancelar venda")
		return
	}

	message := "Venda cancelada com sucesso"
	if estorno {
		message = "Venda cancelada com sucesso. O valor pago deve ser estornado"
	}

	ctx.JSON(http.StatusOK, dto.CancelamentoResponse{
		Message:          message,
		EstornoRealizado: estorno,
		Venda:            dto.ToVendaResponse(v),
	})
}

// respondError traduz erros do domínio para os códigos HTTP do contrato
func (c *VendaController) respondError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, venda.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Venda não encontrada", err.Error()))
	case errors.Is(err, produto.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", err.Error()))
	case errors.Is(err, venda.ErrDescontoNaoAutorizado),
		errors.Is(err, venda.ErrCancelamentoNegado):
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, message, err.Error()))
	case errors.Is(err, venda.ErrVendaNaoAberta),
		errors.Is(err, venda.ErrVendaJaCancelada):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, message, err.Error()))
	case errors.Is(err, produto.ErrEstoqueInsuficiente),
		errors.Is(err, venda.ErrQuantidadeInvalida),
		errors.Is(err, venda.ErrMotivoObrigatorio),
		errors.Is(err, venda.ErrDescontoInvalido),
		errors.Is(err, venda.ErrTipoDescontoInvalido),
		errors.Is(err, venda.ErrVendaVazia),
		errors.Is(err, venda.ErrMetodoPagamentoInvalido),
		errors.Is(err, venda.ErrValorPagoDivergente):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, message, err.Error()))
	default:
		c.logger.Error(message, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, message, err.Error()))
	}
}
