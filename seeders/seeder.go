package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedLocations cadastra os locais padrão usados pelos formulários.
func SeedLocations(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Cadastrando locais padrão...")

	if err := seedLocations(ctx, db); err != nil {
		log.Fatalf("❌ Erro ao cadastrar locais: %v", err)
	}
	log.Println("✅ Locais cadastrados!")
}

// SeedDemo cadastra dados de exemplo para o painel e a agenda.
func SeedDemo(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Cadastrando dados de exemplo...")

	if err := seedDemo(ctx, db); err != nil {
		log.Fatalf("❌ Erro ao cadastrar dados de exemplo: %v", err)
	}
	log.Println("✅ Dados de exemplo cadastrados!")
}
