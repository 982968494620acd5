package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/taskboard-api/internal/application"
	"github.com/oksasatya/taskboard-api/internal/infrastructure/memory"
	"github.com/oksasatya/taskboard-api/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	os.Exit(m.Run())
}

type testEnv struct {
	router  *gin.Engine
	userSvc *application.UserService
	taskSvc *application.TaskService
}

func newTestEnv() *testEnv {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	tasks := memory.NewTaskRepository()
	users := memory.NewUserRepository().WithCascadeTo(tasks)

	taskSvc := application.NewTaskService(tasks, users, logger, nil)
	userSvc := application.NewUserService(users, tasks, logger, nil)

	taskHandler := NewTaskHandler(taskSvc, logger)
	userHandler := NewUserHandler(userSvc, logger)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/users", userHandler.List)
	api.GET("/users/lookup", userHandler.Lookup)
	api.GET("/users/:id", userHandler.Get)
	api.POST("/users", userHandler.Create)
	api.DELETE("/users/:id", userHandler.Delete)
	api.GET("/users/:id/tasks", taskHandler.ListByUser)
	api.GET("/tasks", taskHandler.List)
	api.GET("/tasks/:id", taskHandler.Get)
	api.POST("/tasks", taskHandler.Create)
	api.PUT("/tasks/:id", taskHandler.Update)
	api.DELETE("/tasks/:id", taskHandler.Delete)

	return &testEnv{router: r, userSvc: userSvc, taskSvc: taskSvc}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, payload)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func (e *testEnv) createUser(t *testing.T, first, last, email string) int64 {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/users", gin.H{
		"first_name": first,
		"last_name":  last,
		"email":      email,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return int64(decodeData(t, w)["id"].(float64))
}

func TestCreateUserEndpoint(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/api/users", gin.H{
		"first_name": "Alice",
		"last_name":  "Johnson",
		"email":      "alice.johnson@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "Alice", data["first_name"])
	assert.Equal(t, "alice.johnson@example.com", data["email"])
	assert.NotZero(t, data["id"])
	assert.NotEmpty(t, data["created_at"])
}

func TestCreateUserEndpointBadPayload(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/api/users", gin.H{
		"first_name": "Alice",
		"last_name":  "Johnson",
		"email":      "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
}

func TestCreateUserEndpointDuplicateEmail(t *testing.T) {
	env := newTestEnv()
	env.createUser(t, "Alice", "Johnson", "alice@example.com")

	w := env.do(t, http.MethodPost, "/api/users", gin.H{
		"first_name": "Other",
		"last_name":  "Alice",
		"email":      "alice@example.com",
	})
	// Unique violations stay generic failures.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetUserEndpoint(t *testing.T) {
	env := newTestEnv()
	id := env.createUser(t, "Alice", "Johnson", "alice@example.com")

	w := env.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/users/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User with id 999 not found")

	w = env.do(t, http.MethodGet, "/api/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A parseable but out-of-range id is a miss, not a bad request.
	w = env.do(t, http.MethodGet, "/api/users/0", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User with id 0 not found")
}

func TestGetTaskEndpointNonPositiveID(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/api/tasks/0", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Task with id 0 not found")

	w = env.do(t, http.MethodGet, "/api/tasks/-5", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Task with id -5 not found")
}

func TestUserLookupEndpoint(t *testing.T) {
	env := newTestEnv()
	env.createUser(t, "Alice", "Johnson", "alice@example.com")

	w := env.do(t, http.MethodGet, "/api/users/lookup?first_name=Alice&last_name=Johnson", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice", decodeData(t, w)["first_name"])

	w = env.do(t, http.MethodGet, "/api/users/lookup?first_name=alice&last_name=johnson", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/api/users/lookup", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTaskEndpoint(t *testing.T) {
	env := newTestEnv()
	userID := env.createUser(t, "Alice", "Johnson", "alice@example.com")

	w := env.do(t, http.MethodPost, "/api/tasks", gin.H{
		"description": "Write docs",
		"status":      "TODO",
		"user_id":     userID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decodeData(t, w)
	assert.Equal(t, "Write docs", data["description"])
	assert.Equal(t, "TODO", data["status"])
	assert.Equal(t, float64(userID), data["user_id"])
}

func TestCreateTaskEndpointUnknownUser(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/api/tasks", gin.H{
		"description": "Write docs",
		"status":      "TODO",
		"user_id":     999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User with id 999 not found")
}

func TestCreateTaskEndpointValidation(t *testing.T) {
	env := newTestEnv()
	userID := env.createUser(t, "Alice", "Johnson", "alice@example.com")

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing description", gin.H{"status": "TODO", "user_id": userID}},
		{"bad status", gin.H{"description": "x", "status": "PENDING", "user_id": userID}},
		{"zero user id", gin.H{"description": "x", "status": "TODO", "user_id": 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/tasks", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUpdateTaskEndpoint(t *testing.T) {
	env := newTestEnv()
	userID := env.createUser(t, "Alice", "Johnson", "alice@example.com")

	w := env.do(t, http.MethodPost, "/api/tasks", gin.H{
		"description": "Write docs",
		"status":      "TODO",
		"user_id":     userID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	taskID := int64(decodeData(t, w)["id"].(float64))

	w = env.do(t, http.MethodPut, fmt.Sprintf("/api/tasks/%d", taskID), gin.H{
		"description": "Write better docs",
		"status":      "DOING",
		"user_id":     userID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "Write better docs", data["description"])
	assert.Equal(t, "DOING", data["status"])

	w = env.do(t, http.MethodPut, "/api/tasks/999", gin.H{
		"description": "x",
		"status":      "DONE",
		"user_id":     userID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Task with id 999 not found")
}

func TestDeleteTaskEndpoint(t *testing.T) {
	env := newTestEnv()
	userID := env.createUser(t, "Alice", "Johnson", "alice@example.com")

	w := env.do(t, http.MethodPost, "/api/tasks", gin.H{
		"description": "Write docs",
		"status":      "TODO",
		"user_id":     userID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	taskID := int64(decodeData(t, w)["id"].(float64))

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", taskID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/tasks/%d", taskID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", taskID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTasksByUserEndpoint(t *testing.T) {
	env := newTestEnv()
	userID := env.createUser(t, "Alice", "Johnson", "alice@example.com")

	// Known user, zero tasks: empty list.
	w := env.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d/tasks", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Empty(t, envelope.Data)

	// Unknown user: 404, not an empty list.
	w = env.do(t, http.MethodGet, "/api/users/999/tasks", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// The full lifecycle: user → task → cascade on user delete.
func TestUserDeleteCascadesOverHTTP(t *testing.T) {
	env := newTestEnv()
	userID := env.createUser(t, "Alice", "Johnson", "alice.johnson@example.com")

	w := env.do(t, http.MethodPost, "/api/tasks", gin.H{
		"description": "Write docs",
		"status":      "TODO",
		"user_id":     userID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	taskID := int64(decodeData(t, w)["id"].(float64))

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/users/%d", userID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/tasks/%d", taskID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
