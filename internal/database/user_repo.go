package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/shift-notify-bot/internal/domain/contract"
	"github.com/diegoclair/shift-notify-bot/internal/domain/entity"
)

type userRepo struct {
	db dbConn
}

func newUserRepo(db dbConn) contract.UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (slack_user_id, name, email)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		user.SlackUserID,
		user.Name,
		user.Email,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = id
	return nil
}

func (r *userRepo) GetBySlackID(ctx context.Context, slackUserID string) (*entity.User, error) {
	user := &entity.User{}
	query := `
		SELECT id, slack_user_id, name, email, created_at, updated_at
		FROM users
		WHERE slack_user_id = ?
	`

	err := r.db.QueryRowContext(ctx, query, slackUserID).Scan(
		&user.ID,
		&user.SlackUserID,
		&user.Name,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *userRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET
			name = ?,
			email = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		user.Name,
		user.Email,
		time.Now(),
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}
