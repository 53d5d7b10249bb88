package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedLocations(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Preenchendo a tabela 'locais'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, name := range locationsData {
		if _, err := tx.Exec(ctx, `INSERT INTO locais (nome) VALUES ($1) ON CONFLICT (nome) DO NOTHING`, name); err != nil {
			log.Printf("Erro ao inserir o local '%s': %v", name, err)
			return err
		}
	}

	return tx.Commit(ctx)
}
