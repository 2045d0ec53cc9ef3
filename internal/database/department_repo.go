package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diegoclair/shift-notify-bot/internal/domain/contract"
	"github.com/diegoclair/shift-notify-bot/internal/domain/entity"
)

type departmentRepo struct {
	db dbConn
}

func newDepartmentRepo(db dbConn) contract.DepartmentRepo {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) Create(ctx context.Context, department *entity.Department) error {
	query := `INSERT INTO departments (name) VALUES (?)`

	result, err := r.db.ExecContext(ctx, query, department.Name)
	if err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	department.ID = id
	return nil
}

func (r *departmentRepo) GetByName(ctx context.Context, name string) (*entity.Department, error) {
	query := `
		SELECT id, name, created_at
		FROM departments
		WHERE name = ? COLLATE NOCASE
	`

	department := &entity.Department{}

	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&department.ID,
		&department.Name,
		&department.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	return department, nil
}

func (r *departmentRepo) List(ctx context.Context) ([]*entity.Department, error) {
	query := `
		SELECT id, name, created_at
		FROM departments
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []*entity.Department
	for rows.Next() {
		department := &entity.Department{}
		err := rows.Scan(
			&department.ID,
			&department.Name,
			&department.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate departments: %w", err)
	}

	return departments, nil
}
