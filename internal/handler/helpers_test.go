package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/emsys-dev/employee-manager/backend/internal/config"
	"github.com/emsys-dev/employee-manager/backend/internal/domain"
	"github.com/emsys-dev/employee-manager/backend/internal/repository"
	"github.com/emsys-dev/employee-manager/backend/internal/token"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock, *token.JWTManager) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 5

	repo := repository.NewRepository(cfg, db)
	tokens := token.NewJWTManager(testSecret, 7*24*time.Hour)

	h, err := NewHandler(cfg, repo, tokens)
	require.NoError(t, err)
	h.RegisterRoutes()

	return h, mock, tokens
}

func issueTestToken(t *testing.T, tokens *token.JWTManager) string {
	t.Helper()

	tokenString, err := tokens.Issue(&domain.Account{ID: 1, Username: "admin", Role: domain.RoleAdmin})
	require.NoError(t, err)

	return tokenString
}

func doRequest(h *Handler, method, path, body, bearerToken string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	rr := httptest.NewRecorder()
	h.Mux.ServeHTTP(rr, req)

	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := map[string]any{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))

	return body
}

func violationFields(t *testing.T, rr *httptest.ResponseRecorder) []string {
	t.Helper()

	body := decodeBody(t, rr)
	rawViolations, ok := body["errors"].([]any)
	require.True(t, ok, "expected an errors list, got %v", body)

	fields := make([]string, 0, len(rawViolations))
	for _, raw := range rawViolations {
		violation := raw.(map[string]any)
		fields = append(fields, violation["field"].(string))
	}

	return fields
}

func employeeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "position", "department", "salary", "created_at"})
}

func existsRow(exists bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"exists"}).AddRow(exists)
}

func idAndCreatedAtRow(id int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id, time.Now())
}

func createdAtRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now())
}
