package application

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/taskboard-api/internal/domain/entity"
)

// TaskIndex mirrors task writes into an Elasticsearch index so that task
// search can query them. Writes are best-effort: an unreachable cluster
// degrades search, never the Postgres write that triggered the mirror.
// A nil TaskIndex disables the mirror entirely.
type TaskIndex struct {
	ES     *elasticsearch.Client
	Name   string
	Logger *logrus.Logger
}

func NewTaskIndex(es *elasticsearch.Client, name string, logger *logrus.Logger) *TaskIndex {
	return &TaskIndex{ES: es, Name: name, Logger: logger}
}

func (ix *TaskIndex) enabled() bool {
	return ix != nil && ix.ES != nil && ix.Name != ""
}

// Index pushes the task document, keyed by the task id.
func (ix *TaskIndex) Index(ctx context.Context, t *entity.Task) {
	if !ix.enabled() {
		return
	}
	doc := map[string]any{
		"id":          t.ID,
		"description": t.Description,
		"status":      t.Status.String(),
		"user_id":     t.UserID,
		"created_at":  t.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":  t.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      ix.Name,
		DocumentID: strconv.FormatInt(t.ID, 10),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, ix.ES)
	if err != nil {
		if ix.Logger != nil {
			ix.Logger.WithError(err).WithField("task_id", t.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && ix.Logger != nil {
		ix.Logger.WithField("status", res.Status()).WithField("task_id", t.ID).Warn("es index response error")
	}
}

// Remove deletes the task's document. Called on task delete and, for every
// cascaded task, on user delete.
func (ix *TaskIndex) Remove(ctx context.Context, taskID int64) {
	if !ix.enabled() {
		return
	}
	req := esapi.DeleteRequest{Index: ix.Name, DocumentID: strconv.FormatInt(taskID, 10)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, ix.ES)
	if err != nil {
		if ix.Logger != nil {
			ix.Logger.WithError(err).WithField("task_id", taskID).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query on description and status and returns
// the raw hit sources. With the mirror disabled it returns an empty result.
func (ix *TaskIndex) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if !ix.enabled() {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"description^2", "status"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := ix.ES.Search(
		ix.ES.Search.WithContext(c),
		ix.ES.Search.WithIndex(ix.Name),
		ix.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
