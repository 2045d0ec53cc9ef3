package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/diegoclair/shift-notify-bot/internal/domain/contract"
	"github.com/diegoclair/shift-notify-bot/internal/domain/entity"
)

type employeeRepo struct {
	db dbConn
}

func newEmployeeRepo(db dbConn) contract.EmployeeRepo {
	return &employeeRepo{db: db}
}

const employeeColumns = `
	SELECT e.id, e.name, e.department_id, e.user_id, e.created_at,
		u.id, u.slack_user_id, u.name, u.email
	FROM employees e
	LEFT JOIN users u ON u.id = e.user_id
`

func (r *employeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	query := `
		INSERT INTO employees (name, department_id, user_id)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		employee.Name,
		employee.DepartmentID,
		employee.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	employee.ID = id
	return nil
}

func (r *employeeRepo) Find(ctx context.Context, filter entity.EmployeeFilter) ([]*entity.Employee, error) {
	var (
		where []string
		args  []interface{}
	)

	if filter.DepartmentID != 0 {
		where = append(where, "e.department_id = ?")
		args = append(args, filter.DepartmentID)
	}
	if filter.LinkedOnly {
		where = append(where, "e.user_id IS NOT NULL")
	}
	if len(filter.IDs) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(filter.IDs)), ",")
		where = append(where, "e.id IN ("+placeholders+")")
		for _, id := range filter.IDs {
			args = append(args, id)
		}
	}

	query := employeeColumns
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY e.name ASC, e.id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find employees: %w", err)
	}
	defer rows.Close()

	var employees []*entity.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

func (r *employeeRepo) GetBySlackUserID(ctx context.Context, slackUserID string) (*entity.Employee, error) {
	query := employeeColumns + " WHERE u.slack_user_id = ?"

	employee, err := scanEmployee(r.db.QueryRowContext(ctx, query, slackUserID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee, nil
}

func (r *employeeRepo) Delete(ctx context.Context, employeeID int64) error {
	query := `DELETE FROM employees WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row rowScanner) (*entity.Employee, error) {
	var (
		employee     = &entity.Employee{}
		departmentID sql.NullInt64
		userID       sql.NullInt64
		joinedID     sql.NullInt64
		slackUserID  sql.NullString
		userName     sql.NullString
		userEmail    sql.NullString
	)

	err := row.Scan(
		&employee.ID,
		&employee.Name,
		&departmentID,
		&userID,
		&employee.CreatedAt,
		&joinedID,
		&slackUserID,
		&userName,
		&userEmail,
	)
	if err != nil {
		return nil, err
	}

	if departmentID.Valid {
		employee.DepartmentID = &departmentID.Int64
	}
	if userID.Valid {
		employee.UserID = &userID.Int64
	}
	if joinedID.Valid {
		employee.User = &entity.User{
			ID:          joinedID.Int64,
			SlackUserID: slackUserID.String,
			Name:        userName.String,
			Email:       userEmail.String,
		}
	}

	return employee, nil
}
