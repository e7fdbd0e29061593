package main

import (
	"flag"
	"log"

	"github.com/hugohenrick/pdv-supermercado/internal/infrastructure/database"
	"github.com/joho/godotenv"
)

func main() {
	down := flag.Bool("down", false, "desfaz a última migração em vez de aplicar as pendentes")
	flag.Parse()

	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	config := database.NewPostgresConfigFromEnv()

	if *down {
		if err := database.RollbackMigration(config); err != nil {
			log.Fatalf("Erro ao desfazer migração: %v", err)
		}
		log.Println("Migração desfeita com sucesso!")
		return
	}

	if err := database.RunMigrations(config); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	log.Println("Migrações executadas com sucesso!")
}
