package venda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pdv-supermercado/internal/domain/produto"
	"github.com/hugohenrick/pdv-supermercado/internal/domain/usuario"
)

func novoProduto(t *testing.T, nome, sku string, preco float64, estoque int) *produto.Produto {
	t.Helper()
	p, err := produto.NewProduto(nome, sku, preco, estoque)
	require.NoError(t, err)
	return p
}

func novoUsuario(t *testing.T, nome string, nivel usuario.NivelAcesso) *usuario.Usuario {
	t.Helper()
	u, err := usuario.NewUsuario(nome, "senha123", nivel, "Usuário de Teste")
	require.NoError(t, err)
	return u
}

func TestNewVenda(t *testing.T) {
	v := NewVenda("caixa-1")

	assert.NotEmpty(t, v.ID)
	assert.Equal(t, StatusOpen, v.Status)
	assert.Empty(t, v.Itens)
	assert.Equal(t, 0.0, v.TotalBruto)
	assert.Equal(t, 0.0, v.DescontoAplicado)
	assert.Equal(t, 0.0, v.TotalLiquido)
}

func TestAddItem(t *testing.T) {
	arroz := novoProduto(t, "Arroz 5kg", "ARZ-001", 10.00, 50)
	feijao := novoProduto(t, "Feijao 1kg", "FEJ-001", 5.00, 30)

	t.Run("deve somar os subtotais no total bruto", func(t *testing.T) {
		v := NewVenda("caixa-1")

		item, err := v.AddItem(arroz, 2)
		require.NoError(t, err)
		assert.Equal(t, 20.00, item.Subtotal)

		_, err = v.AddItem(feijao, 1)
		require.NoError(t, err)

		assert.Len(t, v.Itens, 2)
		assert.Equal(t, 25.00, v.TotalBruto)
		assert.Equal(t, 25.00, v.TotalLiquido)
	})

	t.Run("deve capturar o preco do produto no momento da adicao", func(t *testing.T) {
		v := NewVenda("caixa-1")
		leite := novoProduto(t, "Leite 1L", "LEI-001", 4.50, 10)

		item, err := v.AddItem(leite, 1)
		require.NoError(t, err)

		leite.Preco = 6.00
		assert.Equal(t, 4.50, item.PrecoUnitario)
		assert.Equal(t, 4.50, v.TotalBruto)
	})

	t.Run("adicionar o mesmo produto gera uma nova linha", func(t *testing.T) {
		v := NewVenda("caixa-1")

		_, err := v.AddItem(arroz, 2)
		require.NoError(t, err)
		_, err = v.AddItem(arroz, 3)
		require.NoError(t, err)

		assert.Len(t, v.Itens, 2)
		assert.Equal(t, 2, v.Itens[0].Quantidade)
		assert.Equal(t, 3, v.Itens[1].Quantidade)
		assert.Equal(t, 50.00, v.TotalBruto)
	})

	t.Run("quantidade menor que um deve falhar", func(t *testing.T) {
		v := NewVenda("caixa-1")

		_, err := v.AddItem(arroz, 0)
		assert.ErrorIs(t, err, ErrQuantidadeInvalida)

		_, err = v.AddItem(arroz, -1)
		assert.ErrorIs(t, err, ErrQuantidadeInvalida)
		assert.Empty(t, v.Itens)
	})

	t.Run("venda que nao esta aberta nao aceita itens", func(t *testing.T) {
		v := NewVenda("caixa-1")
		_, err := v.AddItem(arroz, 1)
		require.NoError(t, err)
		require.NoError(t, v.Pay(PagamentoDinheiro, 10.00))

		_, err = v.AddItem(feijao, 1)
		assert.ErrorIs(t, err, ErrVendaNaoAberta)
		assert.Len(t, v.Itens, 1)
	})
}

func TestApplyDiscount(t *testing.T) {
	gerente := novoUsuario(t, "maria", usuario.NivelGerente)
	caixa := novoUsuario(t, "joao", usuario.NivelCaixa)

	vendaCom := func(t *testing.T, total float64) *Venda {
		t.Helper()
		v := NewVenda(caixa.ID)
		p := novoProduto(t, "Produto", "PRD-001", total, 100)
		_, err := v.AddItem(p, 1)
		require.NoError(t, err)
		return v
	}

	t.Run("desconto percentual sobre o total bruto", func(t *testing.T) {
		v := vendaCom(t, 100.00)

		valor, err := v.ApplyDiscount(gerente, 10, DescontoPercentual, "cliente fidelidade")
		require.NoError(t, err)

		assert.Equal(t, 10.00, valor)
		assert.Equal(t, 10.00, v.DescontoAplicado)
		assert.Equal(t, 90.00, v.TotalLiquido)
		assert.Equal(t, 100.00, v.TotalBruto)
	})

	t.Run("desconto fixo", func(t *testing.T) {
		v := vendaCom(t, 25.00)

		valor, err := v.ApplyDiscount(gerente, 5.00, DescontoFixo, "promocao")
		require.NoError(t, err)

		assert.Equal(t, 5.00, valor)
		assert.Equal(t, 20.00, v.TotalLiquido)
	})

	t.Run("caixa nao pode aplicar desconto", func(t *testing.T) {
		v := vendaCom(t, 100.00)

		_, err := v.ApplyDiscount(caixa, 10, DescontoPercentual, "tentativa")
		assert.ErrorIs(t, err, ErrDescontoNaoAutorizado)
		assert.Equal(t, 0.0, v.DescontoAplicado)
		assert.Equal(t, 100.00, v.TotalLiquido)
	})

	t.Run("desconto de cem por cento zera o total liquido", func(t *testing.T) {
		v := vendaCom(t, 50.00)

		valor, err := v.ApplyDiscount(gerente, 50.00, DescontoFixo, "cortesia")
		require.NoError(t, err)

		assert.Equal(t, 50.00, valor)
		assert.Equal(t, 0.0, v.TotalLiquido)

		// A venda liquida pelo total com desconto, que aqui é zero
		require.NoError(t, v.Pay(PagamentoDinheiro, 0))
		assert.Equal(t, StatusPaid, v.Status)
	})

	t.Run("desconto zero e valido", func(t *testing.T) {
		v := vendaCom(t, 50.00)

		valor, err := v.ApplyDiscount(gerente, 0, DescontoFixo, "sem desconto")
		require.NoError(t, err)

		assert.Equal(t, 0.0, valor)
		assert.Equal(t, 50.00, v.TotalLiquido)
	})

	t.Run("desconto maior que o total bruto deve falhar", func(t *testing.T) {
		v := vendaCom(t, 50.00)

		_, err := v.ApplyDiscount(gerente, 60.00, DescontoFixo, "erro")
		assert.ErrorIs(t, err, ErrDescontoInvalido)
		assert.Equal(t, 50.00, v.TotalLiquido)
	})

	t.Run("desconto negativo deve falhar", func(t *testing.T) {
		v := vendaCom(t, 50.00)

		_, err := v.ApplyDiscount(gerente, -5.00, DescontoFixo, "erro")
		assert.ErrorIs(t, err, ErrDescontoInvalido)
	})

	t.Run("motivo obrigatorio", func(t *testing.T) {
		v := vendaCom(t, 50.00)

		_, err := v.ApplyDiscount(gerente, 5.00, DescontoFixo, "")
		assert.ErrorIs(t, err, ErrMotivoObrigatorio)
	})

	t.Run("tipo de desconto desconhecido deve falhar", func(t *testing.T) {
		v := vendaCom(t, 50.00)

		_, err := v.ApplyDiscount(gerente, 5.00, TipoDesconto("CUPOM"), "erro")
		assert.ErrorIs(t, err, ErrTipoDescontoInvalido)
	})

	t.Run("venda paga nao aceita desconto", func(t *testing.T) {
		v := vendaCom(t, 50.00)
		require.NoError(t, v.Pay(PagamentoPix, 50.00))

		_, err := v.ApplyDiscount(gerente, 5.00, DescontoFixo, "tarde demais")
		assert.ErrorIs(t, err, ErrVendaNaoAberta)
	})
}

func TestPay(t *testing.T) {
	caixa := novoUsuario(t, "joao", usuario.NivelCaixa)
	gerente := novoUsuario(t, "maria", usuario.NivelGerente)

	t.Run("pagamento com valor exato fecha a venda", func(t *testing.T) {
		v := NewVenda(caixa.ID)
		p := novoProduto(t, "Produto", "PRD-001", 100.00, 10)
		_, err := v.AddItem(p, 1)
		require.NoError(t, err)
		_, err = v.ApplyDiscount(gerente, 10, DescontoPercentual, "fidelidade")
		require.NoError(t, err)

		err = v.Pay(PagamentoCartao, 90.00)
		require.NoError(t, err)

		assert.Equal(t, StatusPaid, v.Status)
		assert.Equal(t, PagamentoCartao, v.MetodoPagamento)
	})

	t.Run("valor divergente mantem a venda aberta", func(t *testing.T) {
		v := NewVenda(caixa.ID)
		p := novoProduto(t, "Produto", "PRD-001", 100.00, 10)
		_, err := v.AddItem(p, 1)
		require.NoError(t, err)
		_, err = v.ApplyDiscount(gerente, 10, DescontoPercentual, "fidelidade")
		require.NoError(t, err)

		err = v.Pay(PagamentoDinheiro, 89.99)
		assert.ErrorIs(t, err, ErrValorPagoDivergente)
		assert.Equal(t, StatusOpen, v.Status)
		assert.Empty(t, v.MetodoPagamento)
	})

	t.Run("venda sem itens nao pode ser paga", func(t *testing.T) {
		v := NewVenda(caixa.ID)

		err := v.Pay(PagamentoDinheiro, 0)
		assert.ErrorIs(t, err, ErrVendaVazia)
		assert.Equal(t, StatusOpen, v.Status)
	})

	t.Run("metodo de pagamento desconhecido deve falhar", func(t *testing.T) {
		v := NewVenda(caixa.ID)
		p := novoProduto(t, "Produto", "PRD-001", 10.00, 10)
		_, err := v.AddItem(p, 1)
		require.NoError(t, err)

		err = v.Pay(MetodoPagamento("CHEQUE"), 10.00)
		assert.ErrorIs(t, err, ErrMetodoPagamentoInvalido)
	})

	t.Run("venda ja paga nao pode ser paga novamente", func(t *testing.T) {
		v := NewVenda(caixa.ID)
		p := novoProduto(t, "Produto", "PRD-001", 10.00, 10)
		_, err := v.AddItem(p, 1)
		require.NoError(t, err)
		require.NoError(t, v.Pay(PagamentoPix, 10.00))

		err = v.Pay(PagamentoPix, 10.00)
		assert.ErrorIs(t, err, ErrVendaNaoAberta)
	})
}

func TestCancel(t *testing.T) {
	caixa := novoUsuario(t, "joao", usuario.NivelCaixa)
	gerente := novoUsuario(t, "maria", usuario.NivelGerente)

	vendaAberta := func(t *testing.T) *Venda {
		t.Helper()
		v := NewVenda(caixa.ID)
		p := novoProduto(t, "Produto", "PRD-001", 10.00, 10)
		_, err := v.AddItem(p, 2)
		require.NoError(t, err)
		return v
	}

	t.Run("cancelar venda aberta nao gera estorno", func(t *testing.T) {
		v := vendaAberta(t)

		estorno, err := v.Cancel(caixa, "cliente desistiu")
		require.NoError(t, err)

		assert.False(t, estorno)
		assert.Equal(t, StatusCancelled, v.Status)
		assert.Equal(t, "cliente desistiu", v.MotivoCancelamento)
	})

	t.Run("cancelar venda paga gera estorno", func(t *testing.T) {
		v := vendaAberta(t)
		require.NoError(t, v.Pay(PagamentoCartao, 20.00))

		estorno, err := v.Cancel(gerente, "produto com defeito")
		require.NoError(t, err)

		assert.True(t, estorno)
		assert.Equal(t, StatusCancelled, v.Status)
	})

	t.Run("caixa nao pode cancelar venda paga", func(t *testing.T) {
		v := vendaAberta(t)
		require.NoError(t, v.Pay(PagamentoCartao, 20.00))

		_, err := v.Cancel(caixa, "tentativa")
		assert.ErrorIs(t, err, ErrCancelamentoNegado)
		assert.Equal(t, StatusPaid, v.Status)
	})

	t.Run("cancelamento duplicado deve falhar", func(t *testing.T) {
		v := vendaAberta(t)
		_, err := v.Cancel(caixa, "primeira vez")
		require.NoError(t, err)

		_, err = v.Cancel(caixa, "segunda vez")
		assert.ErrorIs(t, err, ErrVendaJaCancelada)
	})

	t.Run("motivo obrigatorio", func(t *testing.T) {
		v := vendaAberta(t)

		_, err := v.Cancel(caixa, "")
		assert.ErrorIs(t, err, ErrMotivoObrigatorio)
		assert.Equal(t, StatusOpen, v.Status)
	})
}

func TestCicloCompletoDaVenda(t *testing.T) {
	// Cenario completo: dois produtos, desconto fixo de gerente e pagamento em dinheiro
	caixa := novoUsuario(t, "joao", usuario.NivelCaixa)
	gerente := novoUsuario(t, "maria", usuario.NivelGerente)
	arroz := novoProduto(t, "Arroz 5kg", "ARZ-001", 10.00, 50)
	feijao := novoProduto(t, "Feijao 1kg", "FEJ-001", 5.00, 30)

	v := NewVenda(caixa.ID)

	_, err := v.AddItem(arroz, 2)
	require.NoError(t, err)
	_, err = v.AddItem(feijao, 1)
	require.NoError(t, err)
	assert.Equal(t, 25.00, v.TotalBruto)

	valor, err := v.ApplyDiscount(gerente, 5.00, DescontoFixo, "cliente frequente")
	require.NoError(t, err)
	assert.Equal(t, 5.00, valor)
	assert.Equal(t, 20.00, v.TotalLiquido)

	err = v.Pay(PagamentoDinheiro, 20.00)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, v.Status)
	assert.Equal(t, PagamentoDinheiro, v.MetodoPagamento)
}
