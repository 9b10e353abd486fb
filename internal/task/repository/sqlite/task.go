package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dothis/internal/model"
	repo "dothis/internal/task/repository"
	"dothis/pkg/datemath"
	"dothis/pkg/recurrence"
)

const taskColumns = `id, user_id, series_id, series_index, title, description, priority, project, tags,
	due_date, due_time, duration_minutes, recurrence, completed, completed_at, calendar_event_id,
	created_at, updated_at`

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	return r.createTask(ctx, r.db, opt)
}

func (r *implRepository) createTask(ctx context.Context, q querier, opt repo.CreateTaskOptions) (model.Task, error) {
	tags, err := json.Marshal(nonNil(opt.Tags))
	if err != nil {
		return model.Task{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	rec, err := json.Marshal(opt.Recurrence)
	if err != nil {
		return model.Task{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}

	now := r.now().UTC().Format(time.RFC3339Nano)
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, NULL, ?, ?, ?)
		RETURNING ` + taskColumns

	t, err := r.scanTask(q.QueryRowContext(ctx, query,
		opt.ID, opt.UserID, opt.SeriesID, max(opt.SeriesIndex, 1), opt.Title, opt.Description,
		opt.Priority, opt.Project, string(tags), formatDate(opt.DueDate), opt.DueTime,
		opt.DurationMinutes, string(rec), opt.CalendarEventID, now, now,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task. Returns a zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ? AND user_id = ? LIMIT 1`

	t, err := r.scanTask(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a page of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	where, whereArgs := r.buildWhere(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, whereArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// CompleteTask marks an open Task done. Returns a zero-value Task when no open task matched.
func (r *implRepository) CompleteTask(ctx context.Context, opt repo.CompleteTaskOptions) (model.Task, error) {
	return r.completeTask(ctx, r.db, opt)
}

// CompleteAndSchedule marks an open Task done and, when next is set, inserts
// the follow-up instance in the same transaction. Either both rows change or
// neither does. Returns a zero-value Task and nil next when no open task matched.
func (r *implRepository) CompleteAndSchedule(ctx context.Context, opt repo.CompleteTaskOptions, next *repo.CreateTaskOptions) (model.Task, *model.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CompleteAndSchedule"), err)
		return model.Task{}, nil, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	done, err := r.completeTask(ctx, tx, opt)
	if err != nil || done.ID == "" {
		return model.Task{}, nil, err
	}

	var created *model.Task
	if next != nil {
		t, err := r.createTask(ctx, tx, *next)
		if err != nil {
			return model.Task{}, nil, err
		}
		created = &t
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CompleteAndSchedule"), err)
		return model.Task{}, nil, repo.ErrFailedToUpdate
	}
	return done, created, nil
}

func (r *implRepository) completeTask(ctx context.Context, q querier, opt repo.CompleteTaskOptions) (model.Task, error) {
	query := `UPDATE tasks SET completed = 1, completed_at = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND completed = 0
		RETURNING ` + taskColumns

	now := r.now().UTC().Format(time.RFC3339Nano)
	t, err := r.scanTask(q.QueryRowContext(ctx, query,
		opt.CompletedAt.UTC().Format(time.RFC3339Nano), now, opt.ID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CompleteTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// UpdateRecurrence replaces the schedule of an open Task. Returns a zero-value Task
// when no open task matched.
func (r *implRepository) UpdateRecurrence(ctx context.Context, opt repo.UpdateRecurrenceOptions) (model.Task, error) {
	rec, err := json.Marshal(opt.Recurrence)
	if err != nil {
		return model.Task{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}

	query := `UPDATE tasks SET recurrence = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND completed = 0
		RETURNING ` + taskColumns

	now := r.now().UTC().Format(time.RFC3339Nano)
	t, err := r.scanTask(r.db.QueryRowContext(ctx, query, string(rec), now, opt.ID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateRecurrence"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	const query = `DELETE FROM tasks WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanTask(row scanner) (model.Task, error) {
	var (
		t                    model.Task
		tags, rec            string
		dueDate, completedAt sql.NullString
		completed            int
		createdAt, updatedAt string
	)
	err := row.Scan(
		&t.ID, &t.UserID, &t.SeriesID, &t.SeriesIndex, &t.Title, &t.Description, &t.Priority, &t.Project, &tags,
		&dueDate, &t.DueTime, &t.DurationMinutes, &rec, &completed, &completedAt, &t.CalendarEventID,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	if err := json.Unmarshal([]byte(tags), &t.Tags); err != nil {
		return model.Task{}, fmt.Errorf("decode tags: %w", err)
	}
	if len(t.Tags) == 0 {
		t.Tags = nil
	}
	var cfg recurrence.Config
	if err := json.Unmarshal([]byte(rec), &cfg); err != nil {
		return model.Task{}, fmt.Errorf("decode recurrence: %w", err)
	}
	t.Recurrence = cfg

	if dueDate.Valid && dueDate.String != "" {
		d, err := time.ParseInLocation(datemath.ISODate, dueDate.String, r.loc)
		if err != nil {
			return model.Task{}, fmt.Errorf("decode due_date: %w", err)
		}
		t.DueDate = &d
	}
	t.Completed = completed != 0
	if completedAt.Valid {
		at, err := time.Parse(time.RFC3339Nano, completedAt.String)
		if err != nil {
			return model.Task{}, fmt.Errorf("decode completed_at: %w", err)
		}
		t.CompletedAt = &at
	}
	if t.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return model.Task{}, fmt.Errorf("decode created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return model.Task{}, fmt.Errorf("decode updated_at: %w", err)
	}
	return t, nil
}

func formatDate(d *time.Time) any {
	if d == nil {
		return nil
	}
	return d.Format(datemath.ISODate)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
