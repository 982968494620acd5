package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/taskboard-api/internal/domain/entity"
	"github.com/oksasatya/taskboard-api/internal/domain/repository"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

const taskColumns = `id, description, status, user_id, created_at, updated_at`

// scanTask rehydrates a row through the entity constructor; in particular
// the status column is re-validated against the enumeration on every read.
func scanTask(row pgx.Row) (*entity.Task, error) {
	var (
		id, userID           int64
		description, status  string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &description, &status, &userID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	st, err := entity.ParseTaskStatus(status)
	if err != nil {
		return nil, err
	}
	return entity.NewTask(id, description, st, userID, createdAt, updatedAt)
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) (*entity.Task, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (description, status, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+taskColumns,
		t.Description, t.Status.String(), t.UserID, t.CreatedAt, t.UpdatedAt)
	return scanTask(row)
}

func (r *TaskRepository) Update(ctx context.Context, t *entity.Task) (*entity.Task, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET description = $1, status = $2, user_id = $3, updated_at = $4
		WHERE id = $5
		RETURNING `+taskColumns,
		t.Description, t.Status.String(), t.UserID, t.UpdatedAt, t.ID)
	task, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return task, err
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*entity.Task, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	t, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return t, err
}

func (r *TaskRepository) GetByUserID(ctx context.Context, userID int64) ([]*entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *TaskRepository) GetAll(ctx context.Context) ([]*entity.Task, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func collectTasks(rows pgx.Rows) ([]*entity.Task, error) {
	tasks := make([]*entity.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
