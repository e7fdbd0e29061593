package produto

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound            = errors.New("produto não encontrado")
	ErrEmptyName           = errors.New("nome do produto não pode ser vazio")
	ErrEmptySKU            = errors.New("sku do produto não pode ser vazio")
	ErrInvalidPrice        = errors.New("preço do produto não pode ser negativo")
	ErrInvalidStock        = errors.New("estoque do produto não pode ser negativo")
	ErrDuplicateSKU        = errors.New("já existe um produto com este sku")
	ErrEstoqueInsuficiente = errors.New("estoque insuficiente para o produto")
)

// Produto representa um item do catálogo disponível para venda
type Produto struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	SKU          string    `json:"sku"`
	Preco        float64   `json:"preco"`
	EstoqueAtual int       `json:"estoque_atual"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewProduto cria um novo produto do catálogo
func NewProduto(nome, sku string, preco float64, estoqueAtual int) (*Produto, error) {
	if nome == "" {
		return nil, ErrEmptyName
	}

	if sku == "" {
		return nil, ErrEmptySKU
	}

	if preco < 0 {
		return nil, ErrInvalidPrice
	}

	if estoqueAtual < 0 {
		return nil, ErrInvalidStock
	}

	now := time.Now()
	return &Produto{
		ID:           uuid.New().String(),
		Nome:         nome,
		SKU:          sku,
		Preco:        preco,
		EstoqueAtual: estoqueAtual,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// HasStock verifica se há estoque suficiente para a quantidade solicitada
func (p *Produto) HasStock(quantidade int) bool {
	return p.EstoqueAtual >= quantidade
}

// Update atualiza os dados cadastrais do produto
func (p *Produto) Update(nome string, preco float64) error {
	if nome == "" {
		return ErrEmptyName
	}

	if preco < 0 {
		return ErrInvalidPrice
	}

	p.Nome = nome
	p.Preco = preco
	p.UpdatedAt = time.Now()

	return nil
}
