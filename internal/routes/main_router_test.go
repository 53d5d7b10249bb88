// Arquivo: internal/routes/main_router_test.go
package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"ac-registry/pkg/config"
	"ac-registry/pkg/database/postgresql"
	"ac-registry/pkg/validation"
)

// RegistryAPITestSuite sobe o roteador completo contra Postgres e Redis reais.
// Sem TEST_DATABASE_URL os testes são ignorados.
type RegistryAPITestSuite struct {
	suite.Suite
	Echo  *echo.Echo
	DB    *pgxpool.Pool
	Redis *redis.Client
}

func (s *RegistryAPITestSuite) SetupSuite() {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		s.T().Skip("TEST_DATABASE_URL não definido")
	}

	ctx := context.Background()
	logger := zap.NewNop()

	dbConn, err := postgresql.ConnectDB(ctx, dsn, logger)
	s.Require().NoError(err)
	s.Require().NoError(postgresql.Migrate(ctx, dbConn))

	redisAddr := os.Getenv("TEST_REDIS_ADDRESS")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr, DB: 1}) // DB 1 para testes
	if err := redisClient.Ping(ctx).Err(); err != nil {
		dbConn.Close()
		s.T().Skipf("Redis indisponível em %s: %v", redisAddr, err)
	}

	cfg := config.New()
	cfg.Query.Timezone = "America/Sao_Paulo"
	cfg.Query.SnapshotTTL = time.Minute
	cfg.RateLimit.RPS = 1000
	cfg.RateLimit.Burst = 1000

	e := echo.New()
	e.Validator = validation.New()
	InitRouter(e, dbConn, dbConn, redisClient, logger, cfg)

	s.Echo = e
	s.DB = dbConn
	s.Redis = redisClient
}

func (s *RegistryAPITestSuite) SetupTest() {
	ctx := context.Background()
	_, err := s.DB.Exec(ctx, `TRUNCATE intervencoes, equipamentos, locais RESTART IDENTITY`)
	s.Require().NoError(err)
	s.Require().NoError(s.Redis.FlushDB(ctx).Err())
}

func (s *RegistryAPITestSuite) TearDownSuite() {
	if s.DB != nil {
		s.DB.Close()
	}
	if s.Redis != nil {
		s.Redis.Close()
	}
}

func (s *RegistryAPITestSuite) request(method, target string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	var out map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return rec, out
}

func (s *RegistryAPITestSuite) TestEquipmentWorkflow() {
	s.Run("1_CreateLocation", func() {
		rec, _ := s.request(http.MethodPost, "/api/locations", map[string]string{"name": "Sala 101"})
		s.Equal(http.StatusCreated, rec.Code, "Body: %s", rec.Body.String())
	})

	s.Run("2_CreateEquipment", func() {
		rec, out := s.request(http.MethodPost, "/api/equipment", map[string]interface{}{
			"patrimony":        "AC001",
			"brand":            "LG",
			"power":            12000,
			"initial_location": "Sala 101",
		})
		s.Require().Equal(http.StatusCreated, rec.Code, "Body: %s", rec.Body.String())
		body := out["body"].(map[string]interface{})
		s.Equal("AC001", body["patrimony"])
	})

	s.Run("3_DuplicatePatrimony", func() {
		rec, out := s.request(http.MethodPost, "/api/equipment", map[string]interface{}{
			"patrimony":        "AC001",
			"initial_location": "Sala 101",
		})
		s.Equal(http.StatusConflict, rec.Code)
		s.Equal("Número de patrimônio já cadastrado.", out["message"])
	})

	s.Run("4_RegisterAndSchedule", func() {
		start := time.Now().AddDate(0, 0, 3).Format("2006-01-02")
		end := time.Now().AddDate(0, 0, 4).Format("2006-01-02")
		rec, out := s.request(http.MethodPost, "/api/intervencoes/registrar", map[string]interface{}{
			"patrimonio":  "AC001",
			"tipo":        "reserva",
			"descricao":   "Evento no auditório",
			"dataInicio":  start,
			"dataTermino": end,
			"custo":       150,
		})
		s.Require().Equal(http.StatusOK, rec.Code, "Body: %s", rec.Body.String())
		s.Equal("Intervenção registrada com sucesso.", out["message"])

		req := httptest.NewRequest(http.MethodGet, "/api/intervencoes/agendadas", nil)
		recList := httptest.NewRecorder()
		s.Echo.ServeHTTP(recList, req)
		s.Require().Equal(http.StatusOK, recList.Code)

		var events []map[string]interface{}
		s.Require().NoError(json.Unmarshal(recList.Body.Bytes(), &events))
		s.Require().Len(events, 1)
		s.Equal("AC001", events[0]["baseIntervencaoId"])
		s.Equal("reserva", events[0]["tipo"])
	})

	s.Run("5_RegisterUnknownEquipment", func() {
		rec, out := s.request(http.MethodPost, "/api/intervencoes/registrar", map[string]interface{}{
			"patrimonio": "ZZ999",
			"tipo":       "reclamacao",
		})
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("Equipamento não encontrado.", out["error"])
	})

	s.Run("6_DashboardSeesWrites", func() {
		rec, out := s.request(http.MethodGet, "/api/query/dashboard?brand=lg", nil)
		s.Require().Equal(http.StatusOK, rec.Code, "Body: %s", rec.Body.String())
		body := out["body"].(map[string]interface{})
		s.Equal(float64(1), body["count"])
		stats := body["stats"].(map[string]interface{})
		s.Equal(float64(150), stats["total_cost"])
		s.Equal(float64(1), stats["total_equipment"])
	})

	s.Run("7_Details", func() {
		rec, out := s.request(http.MethodGet, "/api/equipment/patrimony/AC001", nil)
		s.Require().Equal(http.StatusOK, rec.Code)
		body := out["body"].(map[string]interface{})
		s.Equal("Sala 101", body["current_location"])
		s.Equal(true, body["active"])
	})
}

func (s *RegistryAPITestSuite) TestHealth() {
	rec, out := s.request(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("healthy", out["status"])
}

func (s *RegistryAPITestSuite) TestNotFoundPatrimony() {
	rec, _ := s.request(http.MethodGet, fmt.Sprintf("/api/equipment/patrimony/%s", "NAOEXISTE"), nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func TestRegistryAPISuite(t *testing.T) {
	suite.Run(t, new(RegistryAPITestSuite))
}
