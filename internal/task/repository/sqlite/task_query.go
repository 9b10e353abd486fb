package sqlite

import (
	"strings"

	repo "dothis/internal/task/repository"
)

// buildWhere builds the WHERE clause + args shared by the count and page queries.
func (r *implRepository) buildWhere(opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}

	if opt.Project != "" {
		conditions = append(conditions, "project = ?")
		args = append(args, opt.Project)
	}
	if opt.Completed != nil {
		conditions = append(conditions, "completed = ?")
		args = append(args, boolInt(*opt.Completed))
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
// Open tasks come first, then by due date with undated tasks last.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	where, args := r.buildWhere(opt)
	parts := []string{
		"WHERE " + where,
		"ORDER BY completed ASC, due_date IS NULL, due_date ASC, due_time ASC, created_at ASC",
	}

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
		if opt.Offset > 0 {
			parts = append(parts, "OFFSET ?")
			args = append(args, opt.Offset)
		}
	}
	return strings.Join(parts, " "), args
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
