package main

// @title           PDV Supermercado API
// @version         1.0
// @description     API do ponto de venda: catálogo, vendas, descontos, pagamentos, cancelamentos e relatórios

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
