package seeders

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// seedDemo insere equipamentos e intervenções de exemplo. Rodar de novo não duplica nada.
func seedDemo(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Preenchendo equipamentos e intervenções de exemplo...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, eq := range demoEquipmentData {
		_, err := tx.Exec(ctx,
			`INSERT INTO equipamentos (patrimonio, marca, modelo, local_inicial, potencia, voltagem, tipo)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (patrimonio) DO NOTHING`,
			eq.Patrimony, eq.Brand, eq.Model, eq.Location, eq.Power, eq.Voltage, eq.Category,
		)
		if err != nil {
			log.Printf("Erro ao inserir o equipamento '%s': %v", eq.Patrimony, err)
			return err
		}
	}

	today := time.Now().Truncate(24 * time.Hour).Add(9 * time.Hour)
	for _, iv := range demoInterventionsData {
		start := today.AddDate(0, 0, -iv.DaysAgo)
		var end *time.Time
		if iv.Duration > 0 {
			t := start.Add(iv.Duration)
			end = &t
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO intervencoes (patrimonio, tipo, descricao, data_inicio, data_termino, local_origem, local_destino, custo, responsavel)
			 SELECT $1::varchar, $2::text, $3::text, $4::timestamptz, $5::timestamptz, NULLIF($6::text, ''), NULLIF($7::text, ''), $8::float8, $9::text
			 WHERE NOT EXISTS (SELECT 1 FROM intervencoes WHERE patrimonio = $1 AND tipo = $2 AND descricao = $3)`,
			iv.Patrimony, iv.Type, iv.Description, start, end, iv.Origin, iv.Destination, iv.Cost, iv.Responsible,
		)
		if err != nil {
			log.Printf("Erro ao inserir intervenção de '%s': %v", iv.Patrimony, err)
			return err
		}
	}

	return tx.Commit(ctx)
}
