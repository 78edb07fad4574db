package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/academies/internal/app/controllers"
	"github.com/yigit/academies/internal/app/models"
	"github.com/yigit/academies/internal/app/models/dto"
	"github.com/yigit/academies/internal/app/repositories"
	"github.com/yigit/academies/internal/app/services"
	"github.com/yigit/academies/internal/middleware"
	"github.com/yigit/academies/internal/testutil"
)

type envelope struct {
	Data  json.RawMessage  `json:"data"`
	Error *dto.ErrorDetail `json:"error"`
}

func newTestRouter(t *testing.T, policy repositories.DeletePolicy) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database := testutil.NewTestDatabase(t)
	svc := services.NewServices(repositories.NewRepositories(database, policy))

	router := gin.New()
	router.Use(middleware.RequestID())
	SetupRouter(router, controllers.NewControllers(svc, database, APIBasePath))
	return router
}

func do(t *testing.T, router *gin.Engine, method, path, contentType, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func TestSchoolLifecycle(t *testing.T) {
	router := newTestRouter(t, repositories.DeleteRestrict)

	w, env := do(t, router, http.MethodPost, "/api/v1/schools", "application/json", `{"name":"Lincoln High","web":"lincoln.edu"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/api/v1/schools/1", w.Header().Get("Location"))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	var created models.School
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, int64(1), created.ID)

	w, _ = do(t, router, http.MethodPatch, "/api/v1/schools/1", "application/json-patch+json", `[{"op":"replace","path":"/phone","value":"555-0100"}]`)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w, env = do(t, router, http.MethodGet, "/api/v1/schools/1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got models.School
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "555-0100", got.Phone)
	assert.Equal(t, "Lincoln High", got.Name)

	w, _ = do(t, router, http.MethodPut, "/api/v1/schools/1", "application/json", `{"id":1,"name":"Lincoln Academy","web":"academy.edu"}`)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w, env = do(t, router, http.MethodGet, "/api/v1/schools", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.School
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, models.School{ID: 1, Name: "Lincoln Academy", Web: "academy.edu"}, list[0])

	w, _ = do(t, router, http.MethodDelete, "/api/v1/schools/1", "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w, _ = do(t, router, http.MethodDelete, "/api/v1/schools/1", "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, env = do(t, router, http.MethodGet, "/api/v1/schools/1", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestErrorStatuses(t *testing.T) {
	router := newTestRouter(t, repositories.DeleteRestrict)
	w, _ := do(t, router, http.MethodPost, "/api/v1/schools", "application/json", `{"name":"Lincoln High","web":"lincoln.edu"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = do(t, router, http.MethodPost, "/api/v1/students", "application/json", `{"firstName":"Ada","lastName":"Lovelace","schoolId":1}`)
	require.Equal(t, http.StatusCreated, w.Code)

	tests := []struct {
		name        string
		method      string
		path        string
		contentType string
		body        string
		status      int
		code        dto.ErrorCode
	}{
		{"get id zero", http.MethodGet, "/api/v1/schools/0", "", "", http.StatusBadRequest, dto.ErrorCodeInvalidArgument},
		{"get non-numeric id", http.MethodGet, "/api/v1/schools/abc", "", "", http.StatusBadRequest, dto.ErrorCodeInvalidArgument},
		{"get absent", http.MethodGet, "/api/v1/schools/999999", "", "", http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"create invalid", http.MethodPost, "/api/v1/schools", "application/json", `{"name":""}`, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"create duplicate", http.MethodPost, "/api/v1/schools", "application/json", `{"name":"lincoln high","web":"x.edu"}`, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"create preset id", http.MethodPost, "/api/v1/schools", "application/json", `{"id":5,"name":"New","web":"new.edu"}`, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"create malformed json", http.MethodPost, "/api/v1/schools", "application/json", `{"name":`, http.StatusBadRequest, dto.ErrorCodeMalformedBody},
		{"create null body", http.MethodPost, "/api/v1/schools", "application/json", `null`, http.StatusBadRequest, dto.ErrorCodeInvalidArgument},
		{"create wrong content type", http.MethodPost, "/api/v1/schools", "text/plain", `{}`, http.StatusUnsupportedMediaType, dto.ErrorCodeMalformedBody},
		{"replace id mismatch", http.MethodPut, "/api/v1/schools/1", "application/json", `{"id":2,"name":"A","web":"a.edu"}`, http.StatusBadRequest, dto.ErrorCodeInvalidArgument},
		{"replace absent", http.MethodPut, "/api/v1/schools/77", "application/json", `{"id":77,"name":"A","web":"a.edu"}`, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"patch null", http.MethodPatch, "/api/v1/schools/1", "application/json", `null`, http.StatusBadRequest, dto.ErrorCodeInvalidArgument},
		{"patch id zero", http.MethodPatch, "/api/v1/schools/0", "application/json", `[]`, http.StatusBadRequest, dto.ErrorCodeInvalidArgument},
		{"patch absent", http.MethodPatch, "/api/v1/schools/999", "application/json", `[{"op":"replace","path":"/phone","value":"1"}]`, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"patch id field", http.MethodPatch, "/api/v1/schools/1", "application/json", `[{"op":"replace","path":"/id","value":3}]`, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"delete id zero", http.MethodDelete, "/api/v1/schools/0", "", "", http.StatusBadRequest, dto.ErrorCodeInvalidArgument},
		{"delete referenced", http.MethodDelete, "/api/v1/schools/1", "", "", http.StatusConflict, dto.ErrorCodeResourceReferenced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(t, router, tt.method, tt.path, tt.contentType, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	router := newTestRouter(t, repositories.DeleteRestrict)

	w, env := do(t, router, http.MethodPost, "/api/v1/schools", "application/json", `{"web":"lincoln.edu"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)

	details, ok := env.Error.Details.(map[string]interface{})
	require.True(t, ok)
	violations, ok := details["violations"].([]interface{})
	require.True(t, ok)
	require.Len(t, violations, 1)
	assert.Equal(t, "name", violations[0].(map[string]interface{})["field"])
}

func TestRelationRoutes(t *testing.T) {
	router := newTestRouter(t, repositories.DeleteRestrict)
	for _, body := range []struct{ path, json string }{
		{"/api/v1/schools", `{"name":"Lincoln High","web":"lincoln.edu"}`},
		{"/api/v1/teachers", `{"firstName":"Grace","lastName":"Hopper","schoolId":1}`},
		{"/api/v1/students", `{"firstName":"Ada","lastName":"Lovelace","schoolId":1}`},
		{"/api/v1/courses", `{"name":"Algorithms","teacherId":1}`},
		{"/api/v1/enrollments", `{"studentId":1,"courseId":1}`},
		{"/api/v1/grades", `{"studentId":1,"courseId":1,"grade":91}`},
	} {
		w, _ := do(t, router, http.MethodPost, body.path, "application/json", body.json)
		require.Equal(t, http.StatusCreated, w.Code, "%s: %s", body.path, w.Body.String())
	}

	for _, path := range []string{
		"/api/v1/schools/1/students",
		"/api/v1/schools/1/teachers",
		"/api/v1/teachers/1/courses",
		"/api/v1/students/1/grades",
		"/api/v1/students/1/enrollments",
		"/api/v1/courses/1/grades",
		"/api/v1/courses/1/enrollments",
	} {
		w, env := do(t, router, http.MethodGet, path, "", "")
		require.Equal(t, http.StatusOK, w.Code, path)
		var items []map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &items))
		assert.Len(t, items, 1, path)
	}

	w, _ := do(t, router, http.MethodGet, "/api/v1/schools/9/students", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = do(t, router, http.MethodGet, "/api/v1/schools/0/students", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndPing(t *testing.T) {
	router := newTestRouter(t, repositories.DeleteRestrict)

	w, env := do(t, router, http.MethodGet, "/api/v1/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var health dto.HealthResponse
	require.NoError(t, json.Unmarshal(env.Data, &health))
	assert.Equal(t, "ok", health.Status)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pong")
}
