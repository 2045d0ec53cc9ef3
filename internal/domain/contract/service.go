package contract

import (
	"context"

	"github.com/diegoclair/shift-notify-bot/internal/domain/entity"
)

type ShiftService interface {
	OnDepartmentChange(ctx context.Context, req *entity.ShiftRequest, departmentID int64) error
	Preview(ctx context.Context, req *entity.ShiftRequest) (*entity.ShiftPreview, error)
	Dispatch(ctx context.Context, req *entity.ShiftRequest) (*entity.DispatchResult, error)
}

type DirectoryService interface {
	AddEmployee(ctx context.Context, slackUserID, departmentName string) (*entity.Employee, error)
	RemoveEmployee(ctx context.Context, slackUserID string) error
	ListEmployees(ctx context.Context, departmentName string) ([]*entity.Employee, error)
	ListDepartments(ctx context.Context) ([]*entity.Department, error)
	FindDepartment(ctx context.Context, name string) (*entity.Department, error)
	SelectEmployees(ctx context.Context, slackUserIDs []string, employeeIDs []int64) ([]*entity.Employee, error)
	RequesterTimezone(ctx context.Context, slackUserID string) string
}
