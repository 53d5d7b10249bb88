// Arquivo: main.go

package main

import (
	"context"
	"net/http"
	_ "time/tzdata"

	"ac-registry/internal/routes"
	"ac-registry/pkg/config"
	"ac-registry/pkg/database/postgresql"
	apperrors "ac-registry/pkg/errors"
	applogger "ac-registry/pkg/logger"
	appmiddleware "ac-registry/pkg/middleware"
	"ac-registry/pkg/utils"
	"ac-registry/pkg/validation"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 1. Configuração e logger
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.File)
	defer logger.Sync()

	e := echo.New()
	e.HideBanner = true

	// 2. Middlewares
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! PANIC capturado !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Erro interno do servidor", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.Server.AllowedOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	e.Use(appmiddleware.RequestLogger(logger))

	// 3. Validador
	e.Validator = validation.New()

	// 4. Bancos: conexão privilegiada (escritas) e pública (consultas)
	ctx := context.Background()

	dbConn, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, logger)
	if err != nil {
		logger.Fatal("não foi possível conectar ao PostgreSQL", zap.Error(err))
	}
	defer dbConn.Close()

	if err := postgresql.Migrate(ctx, dbConn); err != nil {
		logger.Fatal("erro ao aplicar migrações", zap.Error(err))
	}

	readConn := dbConn
	if cfg.Postgres.ReadOnlyDSN != cfg.Postgres.DSN {
		readConn, err = postgresql.ConnectDB(ctx, cfg.Postgres.ReadOnlyDSN, logger)
		if err != nil {
			logger.Fatal("não foi possível conectar ao PostgreSQL (leitura)", zap.Error(err))
		}
		defer readConn.Close()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		logger.Fatal("não foi possível conectar ao Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}
	defer redisClient.Close()

	// 5. Rotas
	routes.InitRouter(e, dbConn, readConn, redisClient, logger, cfg)

	// 6. Servidor
	logger.Info("🚀 Servidor iniciado", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Erro ao iniciar o servidor", zap.Error(err))
	}
}
