package contract

import (
	"context"

	"github.com/diegoclair/shift-notify-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Department() DepartmentRepo
	Employee() EmployeeRepo
	User() UserRepo
}

// DepartmentRepo defines the contract for department repository
type DepartmentRepo interface {
	Create(ctx context.Context, department *entity.Department) error
	GetByName(ctx context.Context, name string) (*entity.Department, error)
	List(ctx context.Context) ([]*entity.Department, error)
}

// EmployeeRepo defines the contract for employee repository
type EmployeeRepo interface {
	Create(ctx context.Context, employee *entity.Employee) error
	Find(ctx context.Context, filter entity.EmployeeFilter) ([]*entity.Employee, error)
	GetBySlackUserID(ctx context.Context, slackUserID string) (*entity.Employee, error)
	Delete(ctx context.Context, employeeID int64) error
}

// UserRepo defines the contract for user repository
type UserRepo interface {
	Create(ctx context.Context, user *entity.User) error
	GetBySlackID(ctx context.Context, slackUserID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
