package router

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"reanalyzer/internal/cache"
	"reanalyzer/internal/engine"
	"reanalyzer/internal/logger"
	"reanalyzer/internal/middleware"
	"reanalyzer/internal/services"
	"reanalyzer/internal/testutil"
	"reanalyzer/internal/validator"
)

const testAPIKey = "test-api-key"

// testApp holds the full application stack for flow tests.
type testApp struct {
	DB     *gorm.DB
	Cache  *cache.Memory
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test", "error")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T, limiter *middleware.RateLimiter) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	mem := cache.NewMemory(cache.MemoryOptions{})
	analysis, err := services.NewAnalysisService(engine.DefaultPolicy(), mem, time.Minute)
	testutil.AssertNoError(t, err)

	r := New(Options{DB: db, Analysis: analysis, Limiter: limiter, APIKey: testAPIKey})
	return &testApp{DB: db, Cache: mem, Router: r}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set(middleware.APIKeyHeader, apiKey)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func errorCode(result map[string]interface{}) interface{} {
	errObj, _ := result["error"].(map[string]interface{})
	return errObj["code"]
}
