package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pdv-supermercado/internal/domain/estoque"
	"github.com/hugohenrick/pdv-supermercado/internal/domain/produto"
	"github.com/hugohenrick/pdv-supermercado/pkg/logger"
)

// catalogoFake mantém os produtos em memória para os testes do controller
type catalogoFake struct {
	produtos map[string]*produto.Produto
}

func (r *catalogoFake) Create(ctx context.Context, p *produto.Produto) error {
	copia := *p
	r.produtos[p.ID] = &copia
	return nil
}

func (r *catalogoFake) FindByID(ctx context.Context, id string) (*produto.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, produto.ErrNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *catalogoFake) FindBySKU(ctx context.Context, sku string) (*produto.Produto, error) {
	for _, p := range r.produtos {
		if p.SKU == sku {
			copia := *p
			return &copia, nil
		}
	}
	return nil, produto.ErrNotFound
}

func (r *catalogoFake) List(ctx context.Context, limit, offset int) ([]*produto.Produto, error) {
	return nil, nil
}

func (r *catalogoFake) Count(ctx context.Context) (int, error) {
	return len(r.produtos), nil
}

func (r *catalogoFake) Update(ctx context.Context, p *produto.Produto) error {
	copia := *p
	r.produtos[p.ID] = &copia
	return nil
}

func (r *catalogoFake) ReserveStock(ctx context.Context, id string, quantidade int) error {
	p, ok := r.produtos[id]
	if !ok {
		return produto.ErrNotFound
	}
	if p.EstoqueAtual < quantidade {
		return produto.ErrEstoqueInsuficiente
	}
	p.EstoqueAtual -= quantidade
	return nil
}

func (r *catalogoFake) ReleaseStock(ctx context.Context, id string, quantidade int) error {
	p, ok := r.produtos[id]
	if !ok {
		return produto.ErrNotFound
	}
	p.EstoqueAtual += quantidade
	return nil
}

// livroFake reproduz o contrato atômico do livro de movimentações:
// Adjust altera o estoque e registra a movimentação juntos, e não
// registra nada quando a alteração falha.
type livroFake struct {
	catalogo      *catalogoFake
	movimentacoes []*estoque.MovimentacaoEstoque
}

func (r *livroFake) Create(ctx context.Context, m *estoque.MovimentacaoEstoque) error {
	r.movimentacoes = append(r.movimentacoes, m)
	return nil
}

func (r *livroFake) Adjust(ctx context.Context, m *estoque.MovimentacaoEstoque, delta int) error {
	if delta >= 0 {
		if err := r.catalogo.ReleaseStock(ctx, m.ProdutoID, delta); err != nil {
			return err
		}
	} else {
		if err := r.catalogo.ReserveStock(ctx, m.ProdutoID, -delta); err != nil {
			return err
		}
	}

	r.movimentacoes = append(r.movimentacoes, m)
	return nil
}

func (r *livroFake) ListByProduto(ctx context.Context, produtoID string, limit, offset int) ([]*estoque.MovimentacaoEstoque, error) {
	return r.movimentacoes, nil
}

func ajusteRequest(t *testing.T, c *ProdutoController, produtoID, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/produtos/"+produtoID+"/estoque", strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")
	ctx.Params = gin.Params{{Key: "id", Value: produtoID}}

	c.AdjustStock(ctx)
	return w
}

func TestAdjustStock(t *testing.T) {
	novoCenario := func(t *testing.T, estoqueInicial int) (*ProdutoController, *catalogoFake, *livroFake, *produto.Produto) {
		t.Helper()
		p, err := produto.NewProduto("Arroz 5kg", "ARZ-001", 10.00, estoqueInicial)
		require.NoError(t, err)

		catalogo := &catalogoFake{produtos: map[string]*produto.Produto{p.ID: p}}
		livro := &livroFake{catalogo: catalogo}
		controller := NewProdutoController(catalogo, livro, logger.NewNopLogger())

		return controller, catalogo, livro, p
	}

	t.Run("entrada de estoque registra movimentacao junto com o ajuste", func(t *testing.T) {
		controller, catalogo, livro, p := novoCenario(t, 20)

		w := ajusteRequest(t, controller, p.ID, `{"quantidade": 10, "observacao": "reposicao"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 30, catalogo.produtos[p.ID].EstoqueAtual)
		require.Len(t, livro.movimentacoes, 1)
		assert.Equal(t, estoque.MovimentacaoEntrada, livro.movimentacoes[0].TipoMovimentacao)
		assert.Equal(t, 10, livro.movimentacoes[0].Quantidade)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, float64(30), resp["estoque_atual"])
	})

	t.Run("ajuste negativo baixa o estoque", func(t *testing.T) {
		controller, catalogo, livro, p := novoCenario(t, 20)

		w := ajusteRequest(t, controller, p.ID, `{"quantidade": -5, "observacao": "quebra"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 15, catalogo.produtos[p.ID].EstoqueAtual)
		require.Len(t, livro.movimentacoes, 1)
		assert.Equal(t, estoque.MovimentacaoAjuste, livro.movimentacoes[0].TipoMovimentacao)
		assert.Equal(t, 5, livro.movimentacoes[0].Quantidade)
	})

	t.Run("ajuste alem do estoque nao altera nada", func(t *testing.T) {
		controller, catalogo, livro, p := novoCenario(t, 20)

		w := ajusteRequest(t, controller, p.ID, `{"quantidade": -21, "observacao": "inventario"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 20, catalogo.produtos[p.ID].EstoqueAtual)
		assert.Empty(t, livro.movimentacoes)
	})

	t.Run("produto inexistente", func(t *testing.T) {
		controller, _, livro, _ := novoCenario(t, 20)

		w := ajusteRequest(t, controller, "nao-existe", `{"quantidade": 5}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, livro.movimentacoes)
	})
}
