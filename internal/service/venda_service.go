package service

import (
	"context"
	"fmt"

	"github.com/hugohenrick/pdv-supermercado/internal/domain/produto"
	"github.com/hugohenrick/pdv-supermercado/internal/domain/usuario"
	"github.com/hugohenrick/pdv-supermercado/internal/domain/venda"
	"github.com/hugohenrick/pdv-supermercado/pkg/logger"
)

// VendaService implementa o ciclo de vida da venda: agregação de itens,
// desconto, pagamento e cancelamento, sempre com reserva de estoque no
// catálogo. Cada operação é serializada por venda e persiste todos os
// seus efeitos de uma vez, ou nenhum.
type VendaService struct {
	vendas   venda.Repository
	produtos produto.Repository
	logger   logger.Logger
	locks    *vendaLocks
}

// NewVendaService cria uma nova instância de VendaService
func NewVendaService(vendas venda.Repository, produtos produto.Repository, logger logger.Logger) *VendaService {
	return &VendaService{
		vendas:   vendas,
		produtos: produtos,
		logger:   logger,
		locks:    newVendaLocks(),
	}
}

// Create abre uma nova venda para o operador de caixa informado
func (s *VendaService) Create(ctx context.Context, actor *usuario.Usuario) (*venda.Venda, error) {
	v := venda.NewVenda(actor.ID)

	if err := s.vendas.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("erro ao criar venda: %w", err)
	}

	s.logger.Info("venda criada", "venda_id", v.ID, "usuario", actor.NomeUsuario)
	return v, nil
}

// Get busca uma venda pelo ID
func (s *VendaService) Get(ctx context.Context, id string) (*venda.Venda, error) {
	return s.vendas.FindByID(ctx, id)
}

// List lista as vendas com paginação, da mais recente para a mais antiga
func (s *VendaService) List(ctx context.Context, limit, offset int) ([]*venda.Venda, error) {
	return s.vendas.List(ctx, limit, offset)
}

// AddItem adiciona um item à venda reservando o estoque do produto no
// momento da adição. O preço unitário é capturado do catálogo e fica
// imune a alterações posteriores.
func (s *VendaService) AddItem(ctx context.Context, vendaID, produtoID string, quantidade int) (*venda.Venda, error) {
	unlock := s.locks.lock(vendaID)
	defer unlock()

	v, err := s.vendas.FindByID(ctx, vendaID)
	if err != nil {
		return nil, err
	}

	p, err := s.produtos.FindByID(ctx, produtoID)
	if err != nil {
		return nil, err
	}

	item, err := v.AddItem(p, quantidade)
	if err != nil {
		return nil, err
	}

	// A reserva definitiva acontece dentro da transação do repositório;
	// em caso de estoque insuficiente nada é persistido e a venda
	// permanece como estava.
	if err := s.vendas.AddItem(ctx, v, item); err != nil {
		return nil, err
	}

	s.logger.Info("item adicionado à venda",
		"venda_id", v.ID, "produto_id", p.ID, "quantidade", quantidade)

	return v, nil
}

// ApplyDiscount aplica um desconto à venda. Apenas gerentes podem
// autorizar descontos e o valor resultante nunca excede o total bruto.
// Retorna o valor absoluto do desconto junto com a venda atualizada.
func (s *VendaService) ApplyDiscount(ctx context.Context, vendaID string, actor *usuario.Usuario, valor float64, tipo venda.TipoDesconto, motivo string) (float64, *venda.Venda, error) {
	unlock := s.locks.lock(vendaID)
	defer unlock()

	v, err := s.vendas.FindByID(ctx, vendaID)
	if err != nil {
		return 0, nil, err
	}

	valorDesconto, err := v.ApplyDiscount(actor, valor, tipo, motivo)
	if err != nil {
		return 0, nil, err
	}

	d := venda.NewDesconto(v.ID, valorDesconto, tipo, actor.ID, motivo)

	if err := s.vendas.ApplyDiscount(ctx, v, d); err != nil {
		return 0, nil, err
	}

	s.logger.Info("desconto aplicado",
		"venda_id", v.ID, "valor", valorDesconto, "autorizado_por", actor.NomeUsuario)

	return valorDesconto, v, nil
}

// Pay liquida a venda. O valor pago deve corresponder exatamente ao
// total líquido; o estoque já foi baixado na adição dos itens, então
// o pagamento não mexe no catálogo.
func (s *VendaService) Pay(ctx context.Context, vendaID string, metodo venda.MetodoPagamento, valor float64) (*venda.Venda, error) {
	unlock := s.locks.lock(vendaID)
	defer unlock()

	v, err := s.vendas.FindByID(ctx, vendaID)
	if err != nil {
		return nil, err
	}

	if err := v.Pay(metodo, valor); err != nil {
		return nil, err
	}

	p := venda.NewPagamento(v.ID, valor, metodo)

	if err := s.vendas.Pay(ctx, v, p); err != nil {
		return nil, err
	}

	s.logger.Info("venda liquidada", "venda_id", v.ID, "metodo", metodo, "valor", valor)

	return v, nil
}

// Cancel cancela uma venda aberta ou paga, devolvendo o estoque de
// todos os itens exatamente uma vez. O cancelamento de uma venda paga
// implica estorno e exige um gerente; a flag retornada permite ao
// chamador exibir a confirmação adequada.
func (s *VendaService) Cancel(ctx context.Context, vendaID string, actor *usuario.Usuario, motivo string) (*venda.Venda, bool, error) {
	unlock := s.locks.lock(vendaID)
	defer unlock()

	v, err := s.vendas.FindByID(ctx, vendaID)
	if err != nil {
		return nil, false, err
	}

	estorno, err := v.Cancel(actor, motivo)
	if err != nil {
		return nil, false, err
	}

	c := venda.NewCancelamento(v.ID, actor.ID, motivo, estorno)

	if err := s.vendas.Cancel(ctx, v, c); err != nil {
		return nil, false, err
	}

	s.logger.Info("venda cancelada",
		"venda_id", v.ID, "estorno", estorno, "cancelado_por", actor.NomeUsuario)

	return v, estorno, nil
}
