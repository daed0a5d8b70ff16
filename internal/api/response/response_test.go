package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guuullchin11/baku-air-guardian/internal/api/middleware"
	"github.com/guuullchin11/baku-air-guardian/internal/api/models"
	"github.com/guuullchin11/baku-air-guardian/internal/api/response"
)

// requestWithID builds a request carrying a generated request ID in its
// context, the way the middleware chain would.
func requestWithID(t *testing.T) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/test/path", http.NoBody)
	var captured *http.Request
	middleware.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		captured = r
	})).ServeHTTP(httptest.NewRecorder(), req)

	return captured
}

func TestJSON_WritesBodyAndHeaders(t *testing.T) {
	req := requestWithID(t)
	w := httptest.NewRecorder()

	response.JSON(w, req, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestJSON_NilBody(t *testing.T) {
	req := requestWithID(t)
	w := httptest.NewRecorder()

	response.JSON(w, req, http.StatusOK, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestBadRequest_WritesProblem(t *testing.T) {
	req := requestWithID(t)
	w := httptest.NewRecorder()

	response.BadRequest(w, req, "message is required")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var problem models.Problem
	err := json.Unmarshal(w.Body.Bytes(), &problem)
	require.NoError(t, err)

	assert.Equal(t, models.ProblemTypeValidation, problem.Type)
	assert.Equal(t, "message is required", problem.Detail)
	assert.Equal(t, "/test/path", problem.Instance)
	assert.NotEmpty(t, problem.TraceID)
}

func TestNotFound_WritesProblem(t *testing.T) {
	req := requestWithID(t)
	w := httptest.NewRecorder()

	response.NotFound(w, req, "unknown district")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var problem models.Problem
	err := json.Unmarshal(w.Body.Bytes(), &problem)
	require.NoError(t, err)

	assert.Equal(t, models.ProblemTypeNotFound, problem.Type)
}

func TestInternalError_WritesProblem(t *testing.T) {
	req := requestWithID(t)
	w := httptest.NewRecorder()

	response.InternalError(w, req, "pollution data unavailable")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var problem models.Problem
	err := json.Unmarshal(w.Body.Bytes(), &problem)
	require.NoError(t, err)

	assert.Equal(t, models.ProblemTypeInternal, problem.Type)
	assert.Equal(t, "pollution data unavailable", problem.Detail)
}

