package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-supermercado/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-supermercado/internal/domain/estoque"
	"github.com/hugohenrick/pdv-supermercado/internal/domain/produto"
	"github.com/hugohenrick/pdv-supermercado/pkg/logger"
)

// ProdutoController gerencia as requisições relacionadas ao catálogo
type ProdutoController struct {
	produtos      produto.Repository
	movimentacoes estoque.Repository
	logger        logger.Logger
}

// NewProdutoController cria uma nova instância de ProdutoController
func NewProdutoController(produtos produto.Repository, movimentacoes estoque.Repository, logger logger.Logger) *ProdutoController {
	return &ProdutoController{
		produtos:      produtos,
		movimentacoes: movimentacoes,
		logger:        logger,
	}
}

// Create cadastra um novo produto
// @Summary Criar produto
// @Description Cadastra um novo produto no catálogo
// @Tags produtos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param produto body dto.ProdutoRequest true "Dados do produto"
// @Success 201 {object} dto.ProdutoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos [post]
func (c *ProdutoController) Create(ctx *gin.Context) {
	var req dto.ProdutoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	p, err := produto.NewProduto(req.Nome, req.SKU, req.Preco, req.EstoqueAtual)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar produto", err.Error()))
		return
	}

	if err := c.produtos.Create(ctx, p); err != nil {
		if errors.Is(err, produto.ErrDuplicateSKU) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "SKU já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao salvar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProdutoResponse(p))
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Description Retorna os dados de um produto pelo ID
// @Tags produtos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProdutoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos/{id} [get]
func (c *ProdutoController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	p, err := c.produtos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, produto.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProdutoResponse(p))
}

// List retorna a lista de produtos disponíveis
// @Summary Listar produtos
// @Description Retorna a lista de produtos do catálogo paginada
// @Tags produtos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.ProdutoListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos [get]
func (c *ProdutoController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	pagination := dto.GetPagination(page, size)
	offset := (pagination.Page - 1) * pagination.PageSize

	produtos, err := c.produtos.List(ctx, pagination.PageSize, offset)
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar produtos", err.Error()))
		return
	}

	total, err := c.produtos.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProdutoListResponse(produtos, total, pagination.Page, pagination.PageSize))
}

// AdjustStock ajusta manualmente o estoque de um produto
// @Summary Ajustar estoque
// @Description Registra uma entrada ou ajuste negativo de estoque
// @Tags produtos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param ajuste body dto.AjusteEstoqueRequest true "Quantidade (positiva entra, negativa sai)"
// @Success 200 {object} dto.ProdutoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos/{id}/estoque [post]
func (c *ProdutoController) AdjustStock(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.AjusteEstoqueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	tipo := estoque.MovimentacaoEntrada
	quantidade := req.Quantidade
	if req.Quantidade < 0 {
		tipo = estoque.MovimentacaoAjuste
		quantidade = -req.Quantidade
	}

	m, err := estoque.NewMovimentacao(id, tipo, quantidade, "", req.Observacao)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Ajuste inválido", err.Error()))
		return
	}

	// O ajuste do estoque e o registro no livro são gravados juntos
	if err := c.movimentacoes.Adjust(ctx, m, req.Quantidade); err != nil {
		c.respondStockError(ctx, err)
		return
	}

	p, err := c.produtos.FindByID(ctx, id)
	if err != nil {
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProdutoResponse(p))
}

// ListMovimentacoes lista as movimentações de estoque de um produto
// @Summary Movimentações de estoque
// @Description Retorna o histórico de movimentações de estoque do produto
// @Tags produtos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {array} dto.MovimentacaoResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos/{id}/movimentacoes [get]
func (c *ProdutoController) ListMovimentacoes(ctx *gin.Context) {
	id := ctx.Param("id")

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))

	pagination := dto.GetPagination(page, size)
	offset := (pagination.Page - 1) * pagination.PageSize

	movimentacoes, err := c.movimentacoes.ListByProduto(ctx, id, pagination.PageSize, offset)
	if err != nil {
		c.logger.Error("erro ao listar movimentações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar movimentações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMovimentacaoListResponse(movimentacoes))
}

func (c *ProdutoController) respondStockError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, produto.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", err.Error()))
	case errors.Is(err, produto.ErrEstoqueInsuficiente):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Estoque insuficiente", err.Error()))
	default:
		c.logger.Error("erro ao ajustar estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao ajustar estoque", err.Error()))
	}
}
