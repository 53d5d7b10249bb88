package main

import (
	"context"
	"flag"
	"log"

	"ac-registry/pkg/config"
	"ac-registry/pkg/database/postgresql"
	applogger "ac-registry/pkg/logger"
	"ac-registry/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 SEEDERS (preenchimento do banco)           ")
	log.Println("======================================================")

	runLocations := flag.Bool("locations", false, "Cadastrar os locais padrão")
	runDemo := flag.Bool("demo", false, "Cadastrar equipamentos e intervenções de exemplo")
	runAll := flag.Bool("all", false, "Rodar todos os seeders (equivale a -locations -demo)")

	flag.Parse()

	if !*runLocations && !*runDemo && !*runAll {
		log.Println("❌ Nenhum seeder selecionado.")
		log.Println("")
		log.Println("Flags disponíveis:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Exemplos:")
		log.Println("  go run ./seeders/cmd/seed -locations")
		log.Println("  go run ./seeders/cmd/seed -all")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	logger := applogger.NewLogger("")
	ctx := context.Background()

	dbPool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, logger)
	if err != nil {
		log.Fatalf("❌ Erro ao conectar: %v", err)
	}
	defer dbPool.Close()

	if err := postgresql.Migrate(ctx, dbPool); err != nil {
		log.Fatalf("❌ Erro ao aplicar migrações: %v", err)
	}

	log.Println("======================================================")

	if *runAll || *runLocations {
		seeders.SeedLocations(dbPool)
		log.Println("======================================================")
	}

	if *runAll || *runDemo {
		seeders.SeedDemo(dbPool)
		log.Println("======================================================")
	}

	log.Println("✅ Seeders concluídos.")
	log.Println("======================================================")
}
