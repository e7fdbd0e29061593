package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hugohenrick/pdv-supermercado/docs"
	"github.com/hugohenrick/pdv-supermercado/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-supermercado/internal/adapter/api/route"
	"github.com/hugohenrick/pdv-supermercado/internal/adapter/repository"
	"github.com/hugohenrick/pdv-supermercado/internal/infrastructure/database"
	"github.com/hugohenrick/pdv-supermercado/internal/service"
	"github.com/hugohenrick/pdv-supermercado/pkg/auth"
	"github.com/hugohenrick/pdv-supermercado/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *database.PostgresDB
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	appLogger := logger.NewLogger()

	// Configurar banco de dados
	config := database.NewPostgresConfigFromEnv()
	db, err := database.NewPostgresDB(config)
	if err != nil {
		return nil, err
	}

	// Criar repositórios
	produtoRepo := repository.NewProdutoRepository(db.Pool())
	vendaRepo := repository.NewVendaRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db.Pool())
	estoqueRepo := repository.NewEstoqueRepository(db)
	relatorioRepo := repository.NewRelatorioRepository(db.Pool())

	// Criar serviço do ciclo de vida da venda
	vendaService := service.NewVendaService(vendaRepo, produtoRepo, appLogger)

	// Configurar autenticação
	jwtService, err := auth.NewJWTService()
	if err != nil {
		db.Close()
		return nil, err
	}
	authMiddleware := auth.JWTAuthMiddleware(jwtService, usuarioRepo)

	// Criar controllers
	authController := controller.NewAuthController(usuarioRepo, jwtService, appLogger)
	produtoController := controller.NewProdutoController(produtoRepo, estoqueRepo, appLogger)
	vendaController := controller.NewVendaController(vendaService, appLogger)
	relatorioController := controller.NewRelatorioController(relatorioRepo, appLogger)

	// Configurar router
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	// Health check
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "API PDV funcionando",
			"status":  "OK",
		})
	})

	// Documentação Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas da API
	v1 := router.Group("/api/v1")
	route.SetupAuthRoutes(v1, authController, authMiddleware)
	route.SetupProdutoRoutes(v1, produtoController, authMiddleware)
	route.SetupVendaRoutes(v1, vendaController, authMiddleware)
	route.SetupRelatorioRoutes(v1, relatorioController, authMiddleware)

	return &App{
		router: router,
		db:     db,
		logger: appLogger,
	}, nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
