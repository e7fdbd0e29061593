package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pdv-supermercado/internal/domain/produto"
	"github.com/hugohenrick/pdv-supermercado/internal/domain/usuario"
	"github.com/hugohenrick/pdv-supermercado/internal/domain/venda"
	"github.com/hugohenrick/pdv-supermercado/pkg/logger"
)

// fakeProdutoRepo mantém o catálogo em memória com as mesmas garantias
// de estoque do repositório real: a reserva falha sem alterar nada
// quando não há quantidade suficiente.
type fakeProdutoRepo struct {
	mu       sync.Mutex
	produtos map[string]*produto.Produto
}

func newFakeProdutoRepo() *fakeProdutoRepo {
	return &fakeProdutoRepo{produtos: make(map[string]*produto.Produto)}
}

func (r *fakeProdutoRepo) Create(ctx context.Context, p *produto.Produto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copia := *p
	r.produtos[p.ID] = &copia
	return nil
}

func (r *fakeProdutoRepo) FindByID(ctx context.Context, id string) (*produto.Produto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.produtos[id]
	if !ok {
		return nil, produto.ErrNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *fakeProdutoRepo) FindBySKU(ctx context.Context, sku string) (*produto.Produto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.produtos {
		if p.SKU == sku {
			copia := *p
			return &copia, nil
		}
	}
	return nil, produto.ErrNotFound
}

func (r *fakeProdutoRepo) List(ctx context.Context, limit, offset int) ([]*produto.Produto, error) {
	return nil, nil
}

func (r *fakeProdutoRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.produtos), nil
}

func (r *fakeProdutoRepo) Update(ctx context.Context, p *produto.Produto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.produtos[p.ID]; !ok {
		return produto.ErrNotFound
	}
	copia := *p
	r.produtos[p.ID] = &copia
	return nil
}

func (r *fakeProdutoRepo) ReserveStock(ctx context.Context, id string, quantidade int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
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

func (r *fakeProdutoRepo) ReleaseStock(ctx context.Context, id string, quantidade int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.produtos[id]
	if !ok {
		return produto.ErrNotFound
	}
	p.EstoqueAtual += quantidade
	return nil
}

func (r *fakeProdutoRepo) estoque(t *testing.T, id string) int {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.produtos[id]
	require.True(t, ok)
	return p.EstoqueAtual
}

// fakeVendaRepo reproduz em memória o contrato transacional do
// repositório de vendas: cada operação reserva ou devolve estoque no
// catálogo junto com a gravação, e nada é gravado quando a reserva falha.
type fakeVendaRepo struct {
	mu         sync.Mutex
	produtos   *fakeProdutoRepo
	vendas     map[string]*venda.Venda
	cancelados map[string]bool
}

func newFakeVendaRepo(produtos *fakeProdutoRepo) *fakeVendaRepo {
	return &fakeVendaRepo{
		produtos:   produtos,
		vendas:     make(map[string]*venda.Venda),
		cancelados: make(map[string]bool),
	}
}

func cloneVenda(v *venda.Venda) *venda.Venda {
	copia := *v
	copia.Itens = make([]venda.ItemVenda, len(v.Itens))
	copy(copia.Itens, v.Itens)
	return &copia
}

func (r *fakeVendaRepo) guardar(v *venda.Venda) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vendas[v.ID] = cloneVenda(v)
}

func (r *fakeVendaRepo) Create(ctx context.Context, v *venda.Venda) error {
	r.guardar(v)
	return nil
}

func (r *fakeVendaRepo) FindByID(ctx context.Context, id string) (*venda.Venda, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vendas[id]
	if !ok {
		return nil, venda.ErrNotFound
	}
	return cloneVenda(v), nil
}

func (r *fakeVendaRepo) List(ctx context.Context, limit, offset int) ([]*venda.Venda, error) {
	return nil, nil
}

func (r *fakeVendaRepo) AddItem(ctx context.Context, v *venda.Venda, item *venda.ItemVenda) error {
	if err := r.produtos.ReserveStock(ctx, item.ProdutoID, item.Quantidade); err != nil {
		return err
	}
	r.guardar(v)
	return nil
}

func (r *fakeVendaRepo) ApplyDiscount(ctx context.Context, v *venda.Venda, d *venda.Desconto) error {
	r.guardar(v)
	return nil
}

func (r *fakeVendaRepo) Pay(ctx context.Context, v *venda.Venda, p *venda.Pagamento) error {
	r.guardar(v)
	return nil
}

func (r *fakeVendaRepo) Cancel(ctx context.Context, v *venda.Venda, c *venda.Cancelamento) error {
	r.mu.Lock()
	if r.cancelados[v.ID] {
		r.mu.Unlock()
		return venda.ErrVendaJaCancelada
	}
	r.cancelados[v.ID] = true
	r.mu.Unlock()

	for _, item := range v.Itens {
		if err := r.produtos.ReleaseStock(ctx, item.ProdutoID, item.Quantidade); err != nil {
			return err
		}
	}
	r.guardar(v)
	return nil
}

type fixture struct {
	service  *VendaService
	produtos *fakeProdutoRepo
	vendas   *fakeVendaRepo
	caixa    *usuario.Usuario
	gerente  *usuario.Usuario
	arroz    *produto.Produto
	feijao   *produto.Produto
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	produtos := newFakeProdutoRepo()
	vendas := newFakeVendaRepo(produtos)

	caixa, err := usuario.NewUsuario("joao", "senha123", usuario.NivelCaixa, "João Caixa")
	require.NoError(t, err)
	gerente, err := usuario.NewUsuario("maria", "senha123", usuario.NivelGerente, "Maria Gerente")
	require.NoError(t, err)

	arroz, err := produto.NewProduto("Arroz 5kg", "ARZ-001", 10.00, 50)
	require.NoError(t, err)
	feijao, err := produto.NewProduto("Feijão 1kg", "FEJ-001", 5.00, 30)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, produtos.Create(ctx, arroz))
	require.NoError(t, produtos.Create(ctx, feijao))

	return &fixture{
		service:  NewVendaService(vendas, produtos, logger.NewNopLogger()),
		produtos: produtos,
		vendas:   vendas,
		caixa:    caixa,
		gerente:  gerente,
		arroz:    arroz,
		feijao:   feijao,
	}
}

func TestVendaServiceCicloCompleto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	v, err := f.service.Create(ctx, f.caixa)
	require.NoError(t, err)
	assert.Equal(t, venda.StatusOpen, v.Status)

	v, err = f.service.AddItem(ctx, v.ID, f.arroz.ID, 2)
	require.NoError(t, err)
	v, err = f.service.AddItem(ctx, v.ID, f.feijao.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, 25.00, v.TotalBruto)
	assert.Equal(t, 48, f.produtos.estoque(t, f.arroz.ID))
	assert.Equal(t, 29, f.produtos.estoque(t, f.feijao.ID))

	valorDesconto, v, err := f.service.ApplyDiscount(ctx, v.ID, f.gerente, 5.00, venda.DescontoFixo, "cliente frequente")
	require.NoError(t, err)
	assert.Equal(t, 5.00, valorDesconto)
	assert.Equal(t, 20.00, v.TotalLiquido)

	v, err = f.service.Pay(ctx, v.ID, venda.PagamentoDinheiro, 20.00)
	require.NoError(t, err)
	assert.Equal(t, venda.StatusPaid, v.Status)

	// O pagamento não mexe no estoque; a baixa aconteceu na adição
	assert.Equal(t, 48, f.produtos.estoque(t, f.arroz.ID))
	assert.Equal(t, 29, f.produtos.estoque(t, f.feijao.ID))
}

func TestVendaServiceAddItem(t *testing.T) {
	t.Run("estoque insuficiente nao altera venda nem catalogo", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		v, err := f.service.Create(ctx, f.caixa)
		require.NoError(t, err)

		_, err = f.service.AddItem(ctx, v.ID, f.feijao.ID, 31)
		assert.ErrorIs(t, err, produto.ErrEstoqueInsuficiente)

		assert.Equal(t, 30, f.produtos.estoque(t, f.feijao.ID))
		persistida, err := f.vendas.FindByID(ctx, v.ID)
		require.NoError(t, err)
		assert.Empty(t, persistida.Itens)
		assert.Equal(t, 0.0, persistida.TotalBruto)
	})

	t.Run("produto inexistente", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		v, err := f.service.Create(ctx, f.caixa)
		require.NoError(t, err)

		_, err = f.service.AddItem(ctx, v.ID, "nao-existe", 1)
		assert.ErrorIs(t, err, produto.ErrNotFound)
	})

	t.Run("venda inexistente", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.AddItem(context.Background(), "nao-existe", f.arroz.ID, 1)
		assert.ErrorIs(t, err, venda.ErrNotFound)
	})
}

func TestVendaServicePay(t *testing.T) {
	t.Run("valor divergente mantem a venda aberta", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		v, err := f.service.Create(ctx, f.caixa)
		require.NoError(t, err)
		_, err = f.service.AddItem(ctx, v.ID, f.arroz.ID, 1)
		require.NoError(t, err)

		_, err = f.service.Pay(ctx, v.ID, venda.PagamentoPix, 9.99)
		assert.ErrorIs(t, err, venda.ErrValorPagoDivergente)

		persistida, err := f.vendas.FindByID(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, venda.StatusOpen, persistida.Status)
	})

	t.Run("venda vazia nao pode ser paga", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		v, err := f.service.Create(ctx, f.caixa)
		require.NoError(t, err)

		_, err = f.service.Pay(ctx, v.ID, venda.PagamentoDinheiro, 0)
		assert.ErrorIs(t, err, venda.ErrVendaVazia)
	})
}

func TestVendaServiceCancel(t *testing.T) {
	t.Run("cancelar venda aberta devolve o estoque de todos os itens", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		v, err := f.service.Create(ctx, f.caixa)
		require.NoError(t, err)
		_, err = f.service.AddItem(ctx, v.ID, f.arroz.ID, 2)
		require.NoError(t, err)
		_, err = f.service.AddItem(ctx, v.ID, f.feijao.ID, 3)
		require.NoError(t, err)

		v, estorno, err := f.service.Cancel(ctx, v.ID, f.caixa, "cliente desistiu")
		require.NoError(t, err)

		assert.False(t, estorno)
		assert.Equal(t, venda.StatusCancelled, v.Status)
		assert.Equal(t, 50, f.produtos.estoque(t, f.arroz.ID))
		assert.Equal(t, 30, f.produtos.estoque(t, f.feijao.ID))
	})

	t.Run("cancelar venda paga por gerente gera estorno", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		v, err := f.service.Create(ctx, f.caixa)
		require.NoError(t, err)
		_, err = f.service.AddItem(ctx, v.ID, f.arroz.ID, 2)
		require.NoError(t, err)
		_, err = f.service.Pay(ctx, v.ID, venda.PagamentoCartao, 20.00)
		require.NoError(t, err)

		_, estorno, err := f.service.Cancel(ctx, v.ID, f.gerente, "produto com defeito")
		require.NoError(t, err)

		assert.True(t, estorno)
		assert.Equal(t, 50, f.produtos.estoque(t, f.arroz.ID))
	})

	t.Run("caixa nao pode cancelar venda paga", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		v, err := f.service.Create(ctx, f.caixa)
		require.NoError(t, err)
		_, err = f.service.AddItem(ctx, v.ID, f.arroz.ID, 2)
		require.NoError(t, err)
		_, err = f.service.Pay(ctx, v.ID, venda.PagamentoCartao, 20.00)
		require.NoError(t, err)

		_, _, err = f.service.Cancel(ctx, v.ID, f.caixa, "tentativa")
		assert.ErrorIs(t, err, venda.ErrCancelamentoNegado)
		assert.Equal(t, 48, f.produtos.estoque(t, f.arroz.ID))
	})

	t.Run("cancelamento duplicado nao devolve estoque duas vezes", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		v, err := f.service.Create(ctx, f.caixa)
		require.NoError(t, err)
		_, err = f.service.AddItem(ctx, v.ID, f.arroz.ID, 2)
		require.NoError(t, err)

		_, _, err = f.service.Cancel(ctx, v.ID, f.caixa, "primeira vez")
		require.NoError(t, err)

		_, _, err = f.service.Cancel(ctx, v.ID, f.caixa, "segunda vez")
		assert.ErrorIs(t, err, venda.ErrVendaJaCancelada)
		assert.Equal(t, 50, f.produtos.estoque(t, f.arroz.ID))
	})
}
