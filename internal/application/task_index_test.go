package application

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/taskboard-api/internal/domain/entity"
	"github.com/oksasatya/taskboard-api/internal/infrastructure/memory"
)

// esRecorder stands in for a cluster and records every request the client
// sends, so tests can assert on the mirror traffic without Elasticsearch.
type esRecorder struct {
	mu   sync.Mutex
	reqs []string
}

func (r *esRecorder) record(req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reqs = append(r.reqs, req.Method+" "+req.URL.Path)
}

func (r *esRecorder) requests() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.reqs...)
}

func (r *esRecorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reqs = nil
}

func newESRecorder(t *testing.T) (*elasticsearch.Client, *esRecorder) {
	t.Helper()
	rec := &esRecorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		rec.record(req)
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return client, rec
}

func newIndexedServices(t *testing.T) (*TaskService, *UserService, *esRecorder) {
	t.Helper()
	client, rec := newESRecorder(t)
	tasks := memory.NewTaskRepository()
	users := memory.NewUserRepository().WithCascadeTo(tasks)
	logger := newTestLogger()
	index := NewTaskIndex(client, "tasks", logger)
	return NewTaskService(tasks, users, logger, index),
		NewUserService(users, tasks, logger, index),
		rec
}

func TestCreateTaskIndexesDocument(t *testing.T) {
	taskSvc, userSvc, rec := newIndexedServices(t)
	ctx := context.Background()
	user := seedUser(t, userSvc)

	task, err := taskSvc.CreateTask(ctx, "Write docs", entity.StatusTodo, user.ID)
	require.NoError(t, err)

	assert.Contains(t, rec.requests(), fmt.Sprintf("PUT /tasks/_doc/%d", task.ID))
}

func TestDeleteTaskRemovesDocument(t *testing.T) {
	taskSvc, userSvc, rec := newIndexedServices(t)
	ctx := context.Background()
	user := seedUser(t, userSvc)

	task, err := taskSvc.CreateTask(ctx, "Write docs", entity.StatusTodo, user.ID)
	require.NoError(t, err)
	rec.reset()

	deleted, err := taskSvc.DeleteTask(ctx, task.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	assert.Contains(t, rec.requests(), fmt.Sprintf("DELETE /tasks/_doc/%d", task.ID))
}

// Deleting a user cascades its tasks out of the store; the same delete has
// to take their search documents with it, or they stay searchable forever.
func TestDeleteUserRemovesTaskDocuments(t *testing.T) {
	taskSvc, userSvc, rec := newIndexedServices(t)
	ctx := context.Background()
	user := seedUser(t, userSvc)

	first, err := taskSvc.CreateTask(ctx, "First task", entity.StatusTodo, user.ID)
	require.NoError(t, err)
	second, err := taskSvc.CreateTask(ctx, "Second task", entity.StatusDoing, user.ID)
	require.NoError(t, err)
	rec.reset()

	deleted, err := userSvc.DeleteUser(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	got := rec.requests()
	assert.Contains(t, got, fmt.Sprintf("DELETE /tasks/_doc/%d", first.ID))
	assert.Contains(t, got, fmt.Sprintf("DELETE /tasks/_doc/%d", second.ID))
}

func TestDeleteUserWithoutTasksIssuesNoDeletes(t *testing.T) {
	_, userSvc, rec := newIndexedServices(t)
	ctx := context.Background()
	user := seedUser(t, userSvc)
	rec.reset()

	deleted, err := userSvc.DeleteUser(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	for _, req := range rec.requests() {
		assert.NotContains(t, req, "DELETE ")
	}
}
