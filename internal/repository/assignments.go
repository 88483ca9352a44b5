package repository

import (
	"context"
	"time"

	"github.com/tylerleech/twnkil-schedule/internal/domain"
)

func (r *Repository) GetAssignmentByID(id int64) (*domain.Assignment, error) {
	query := `
		SELECT week_start_date, audit_employee_1, audit_employee_2, audit_day, balance_check_employee, notes, created_at, version
		FROM assignments WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	assignment := &domain.Assignment{
		ID: id,
	}

	dst := []any{
		&assignment.WeekStartDate,
		&assignment.AuditEmployee1,
		&assignment.AuditEmployee2,
		&assignment.AuditDay,
		&assignment.BalanceCheckEmployee,
		&assignment.Notes,
		&assignment.CreatedAt,
		&assignment.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return assignment, nil
}

func (r *Repository) GetAssignmentByWeek(weekStart time.Time) (*domain.Assignment, error) {
	query := `
		SELECT id, audit_employee_1, audit_employee_2, audit_day, balance_check_employee, notes, created_at, version
		FROM assignments WHERE week_start_date = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	assignment := &domain.Assignment{
		WeekStartDate: weekStart,
	}

	dst := []any{
		&assignment.ID,
		&assignment.AuditEmployee1,
		&assignment.AuditEmployee2,
		&assignment.AuditDay,
		&assignment.BalanceCheckEmployee,
		&assignment.Notes,
		&assignment.CreatedAt,
		&assignment.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, weekStart).Scan(dst...); err != nil {
		return nil, err
	}

	return assignment, nil
}

func (r *Repository) GetAllAssignments() ([]*domain.Assignment, error) {
	query := `
		SELECT id, week_start_date, audit_employee_1, audit_employee_2, audit_day, balance_check_employee, notes, created_at, version
		FROM assignments
		ORDER BY week_start_date DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := []*domain.Assignment{}
	for rows.Next() {
		assignment := &domain.Assignment{}
		dst := []any{
			&assignment.ID,
			&assignment.WeekStartDate,
			&assignment.AuditEmployee1,
			&assignment.AuditEmployee2,
			&assignment.AuditDay,
			&assignment.BalanceCheckEmployee,
			&assignment.Notes,
			&assignment.CreatedAt,
			&assignment.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *Repository) GetRecentAssignments(limit int) ([]*domain.Assignment, error) {
	query := `
		SELECT id, week_start_date, audit_employee_1, audit_employee_2, audit_day, balance_check_employee, notes, created_at, version
		FROM assignments
		ORDER BY week_start_date DESC
		LIMIT $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := []*domain.Assignment{}
	for rows.Next() {
		assignment := &domain.Assignment{}
		dst := []any{
			&assignment.ID,
			&assignment.WeekStartDate,
			&assignment.AuditEmployee1,
			&assignment.AuditEmployee2,
			&assignment.AuditDay,
			&assignment.BalanceCheckEmployee,
			&assignment.Notes,
			&assignment.CreatedAt,
			&assignment.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *Repository) CreateAssignment(assignment *domain.Assignment) error {
	query := `
		INSERT INTO assignments (week_start_date, audit_employee_1, audit_employee_2, audit_day, balance_check_employee, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		assignment.WeekStartDate,
		assignment.AuditEmployee1,
		assignment.AuditEmployee2,
		assignment.AuditDay,
		assignment.BalanceCheckEmployee,
		assignment.Notes,
	}
	dst := []any{&assignment.ID, &assignment.CreatedAt, &assignment.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateAssignment(assignment *domain.Assignment) error {
	// week_start_date is the record's natural key and is never updated.
	query := `
		UPDATE assignments
		SET
			audit_employee_1 = $1,
			audit_employee_2 = $2,
			audit_day = $3,
			balance_check_employee = $4,
			notes = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		assignment.AuditEmployee1,
		assignment.AuditEmployee2,
		assignment.AuditDay,
		assignment.BalanceCheckEmployee,
		assignment.Notes,
		assignment.ID,
		assignment.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&assignment.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteAssignment(id int64) (bool, error) {
	query := `
		DELETE FROM assignments WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
