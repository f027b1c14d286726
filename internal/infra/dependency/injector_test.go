package dependency

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finanzas-pareja/ledger/config"
	"github.com/finanzas-pareja/ledger/internal/infra/db/dbtest"
	"github.com/finanzas-pareja/ledger/internal/integration/email"
)

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.JWT.Secret = "injector-test-secret"
	cfg.Recurring.RejectPolicy = "soft"
	return cfg
}

func send(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}

	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestNewInjector(t *testing.T) {
	t.Run("rejects an unknown reject policy", func(t *testing.T) {
		cfg := testConfig()
		cfg.Recurring.RejectPolicy = "archive"

		_, err := NewInjector(cfg, dbtest.New(t), Options{EmailSender: email.NewMockEmailSender()})
		assert.Error(t, err)
	})

	t.Run("serves the ledger over HTTP with the injected clock", func(t *testing.T) {
		today := time.Date(2024, 3, 20, 15, 0, 0, 0, time.UTC)
		injector, err := NewInjector(testConfig(), dbtest.New(t), Options{
			EmailSender: email.NewMockEmailSender(),
			Clock:       func() time.Time { return today },
		})
		require.NoError(t, err)
		engine := injector.Router.Setup("test")

		health := send(t, engine, http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusOK, health.Code)

		register := send(t, engine, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"email":    "ana@example.com",
			"name":     "Ana",
			"password": "SecurePass123!",
		})
		require.Equal(t, http.StatusCreated, register.Code, register.Body.String())

		var auth struct {
			AccessToken string `json:"access_token"`
		}
		require.NoError(t, json.Unmarshal(register.Body.Bytes(), &auth))
		require.NotEmpty(t, auth.AccessToken)

		created := send(t, engine, http.MethodPost, "/api/v1/movements", auth.AccessToken, map[string]any{
			"date":          "2024-03-05",
			"category_name": "Supermercado",
			"amount":        "150.50",
			"type":          "gasto",
		})
		require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

		summary := send(t, engine, http.MethodGet, "/api/v1/movements/summary", auth.AccessToken, nil)
		require.Equal(t, http.StatusOK, summary.Code)

		var out map[string]string
		require.NoError(t, json.Unmarshal(summary.Body.Bytes(), &out))
		assert.Equal(t, "2024-03-01", out["start_date"])
		assert.Equal(t, "2024-03-20", out["end_date"])
		assert.Equal(t, "150.50", out["expense_total"])
		assert.Equal(t, "-150.50", out["balance"])
	})

	t.Run("maps coded errors to statuses", func(t *testing.T) {
		injector, err := NewInjector(testConfig(), dbtest.New(t), Options{EmailSender: email.NewMockEmailSender()})
		require.NoError(t, err)
		engine := injector.Router.Setup("test")

		unauthenticated := send(t, engine, http.MethodGet, "/api/v1/budgets", "", nil)
		assert.Equal(t, http.StatusUnauthorized, unauthenticated.Code)

		register := send(t, engine, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"email":    "ana@example.com",
			"name":     "Ana",
			"password": "short",
		})
		assert.Equal(t, http.StatusBadRequest, register.Code)
		assert.Contains(t, register.Body.String(), "AUTH-010003")
	})
}
