package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Gokulvemuri/job-application-manager/internal/database"
	"github.com/Gokulvemuri/job-application-manager/internal/middleware"
	"github.com/Gokulvemuri/job-application-manager/internal/testutil"
	"github.com/Gokulvemuri/job-application-manager/internal/utilities"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T, cfg Config) (*Server, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	mock.ExpectPing()
	db, err := database.NewDBInstanceFromConn(conn, &database.DBConfig{})
	require.NoError(t, err)

	return New(cfg, db, zap.NewNop()), mock
}

func writeBundle(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	return dir
}

func TestHelloWorldHandler(t *testing.T) {
	s, _ := newTestServer(t, Config{})
	r := s.RegisterRoutes()

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Server running", rec.Body.String())
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestHealthHandler(t *testing.T) {
	s, mock := newTestServer(t, Config{})

	mock.ExpectPing()
	rec, resp, err := utilities.SimulateAPICall(s.healthHandler, "/health", http.MethodGet, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "up", resp["status"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthHandler_databaseDown(t *testing.T) {
	s, mock := newTestServer(t, Config{})
	r := s.RegisterRoutes()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	rec, resp := testutil.MakeJSONRequest(nil, r, "/health", http.MethodGet)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "down", resp["status"])
}

func TestRegisterRoutes_staticFallback(t *testing.T) {
	s, _ := newTestServer(t, Config{StaticDir: writeBundle(t)})
	r := s.RegisterRoutes()

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/applications/42", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<html>app</html>", rec.Body.String())
}

func TestRegisterRoutes_unknownNonGet(t *testing.T) {
	s, _ := newTestServer(t, Config{StaticDir: writeBundle(t)})
	r := s.RegisterRoutes()

	rec, resp := testutil.MakeJSONRequest(gin.H{}, r, "/jobs", http.MethodPost)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", resp["error"])
}

func TestRegisterRoutes_invalidIDSkipsStore(t *testing.T) {
	s, mock := newTestServer(t, Config{})
	r := s.RegisterRoutes()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec, resp := testutil.MakeJSONRequest(nil, r, "/job/abc", method)
		assert.Equal(t, http.StatusNotFound, rec.Code, method)
		assert.Equal(t, "Not found", resp["error"], method)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterRoutes_bodyTooLarge(t *testing.T) {
	s, mock := newTestServer(t, Config{})
	r := s.RegisterRoutes()

	payload := []byte(`{"company_name":"` + strings.Repeat("a", int(middleware.DefaultJSONBodyLimit)) + `"}`)
	rec := testutil.MakeRawRequest(payload, r, "/job", http.MethodPost)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterRoutes_storeFailure(t *testing.T) {
	s, mock := newTestServer(t, Config{})
	r := s.RegisterRoutes()

	mock.ExpectQuery(`SELECT \* FROM "companies"`).
		WillReturnError(errors.New("connection reset by peer"))
	rec := testutil.MakeRawRequest(nil, r, "/job", http.MethodGet)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Server error", rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterRoutes_corsPreflight(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		want    string
	}{
		{"all origins", nil, "*"},
		{"listed origin", []string{"http://localhost:5173"}, "http://localhost:5173"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t, Config{AllowOrigins: tt.origins})
			r := s.RegisterRoutes()

			rec := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodOptions, "/job", nil)
			req.Header.Set("Origin", "http://localhost:5173")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STATIC_DIR", "dist")
	t.Setenv("ALLOW_ORIGIN", "http://a.example, http://b.example,")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "dist", cfg.StaticDir)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowOrigins)
}

func TestConfigFromEnv_defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STATIC_DIR", "")
	t.Setenv("ALLOW_ORIGIN", "")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "build", cfg.StaticDir)
	assert.Empty(t, cfg.AllowOrigins)

	t.Setenv("PORT", "http")
	_, err = ConfigFromEnv()
	assert.Error(t, err)
}

func TestHTTPServer(t *testing.T) {
	s, _ := newTestServer(t, Config{Port: 4321})
	srv := s.HTTPServer()

	assert.Equal(t, ":4321", srv.Addr)
	assert.NotNil(t, srv.Handler)
}

func TestRegisterRoutes_swaggerDoc(t *testing.T) {
	s, _ := newTestServer(t, Config{})
	r := s.RegisterRoutes()

	rec := testutil.MakeRawRequest(nil, r, "/swagger/doc.json", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/job/{id}"`)
}
