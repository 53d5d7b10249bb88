package routes

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ac-registry/internal/controllers"
	"ac-registry/internal/repositories"
	"ac-registry/internal/services"
	"ac-registry/pkg/config"
	"ac-registry/pkg/eventbus"
	"ac-registry/pkg/middleware"
	"ac-registry/pkg/validation"
)

// InitRouter monta repositórios, serviços e rotas. dbConn recebe as escritas;
// readConn (conexão pública, só leitura) atende as consultas do painel.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, readConn *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: criando rotas")

	location := cfg.Query.Location()
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	api := e.Group("/api", rateLimiter.Middleware(logger))

	// --- 1. REPOSITÓRIOS ---
	txManager := repositories.NewTxManager(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	interventionRepo := repositories.NewInterventionRepository(dbConn, logger)
	locationRepo := repositories.NewLocationRepository(dbConn)

	readEquipmentRepo := repositories.NewEquipmentRepository(readConn, logger)
	readInterventionRepo := repositories.NewInterventionRepository(readConn, logger)

	// --- 2. SERVIÇOS ---
	bus := eventbus.New(logger)

	equipmentService := services.NewEquipmentService(equipmentRepo, interventionRepo, txManager, bus, location, logger)
	interventionService := services.NewInterventionService(interventionRepo, equipmentRepo, bus, location, logger)
	locationService := services.NewLocationService(locationRepo, logger)

	queryService := services.NewQueryService(
		readEquipmentRepo,
		readInterventionRepo,
		cacheRepo,
		cfg.Query.SnapshotTTL,
		location,
		cfg.Query.SplitYears,
		logger,
	)
	queryService.Subscribe(bus)

	importer := services.NewEquipmentImporter(equipmentService, locationService, validation.New().Engine(), logger)
	importService := services.NewImportJobService(importer, cacheRepo, logger)

	// --- 3. ROTAS ---
	healthCtrl := controllers.NewHealthController(map[string]controllers.HealthCheck{
		"postgres": dbConn.Ping,
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	}, logger)
	e.GET("/health", healthCtrl.Health)

	runEquipmentRouter(api, equipmentService, interventionService, importService, logger)
	runInterventionRouter(api, interventionService, location, logger)
	runLocationRouter(api, locationService, logger)
	runQueryRouter(api, queryService, location, logger)

	logger.Info("InitRouter: rotas criadas")
}
