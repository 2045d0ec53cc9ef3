package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/shift-notify-bot/internal/domain"
	"github.com/diegoclair/shift-notify-bot/internal/domain/contract"
	"github.com/diegoclair/shift-notify-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type directoryService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	log         *zap.Logger
}

func newDirectory(dm contract.DataManager, slackClient contract.SlackClient, log *zap.Logger) *directoryService {
	return &directoryService{
		dm:          dm,
		slackClient: slackClient,
		log:         log,
	}
}

// AddEmployee links a Slack user to a new employee, creating the user and the
// department when they do not exist yet
func (s *directoryService) AddEmployee(ctx context.Context, slackUserID, departmentName string) (*entity.Employee, error) {
	existing, err := s.dm.Employee().GetBySlackUserID(ctx, slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing employee: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user is already in the directory")
	}

	userInfo, err := s.slackClient.GetUserInfoContext(ctx, slackUserID)
	if err != nil {
		s.log.Error("failed to get user info from Slack", zap.String("slack_user_id", slackUserID), zap.Error(err))
		return nil, fmt.Errorf("failed to get user info from Slack: %w", err)
	}

	name := displayName(userInfo)
	departmentName = strings.TrimSpace(departmentName)

	var employee *entity.Employee
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		user, err := tx.User().GetBySlackID(ctx, slackUserID)
		if err != nil {
			return fmt.Errorf("failed to check existing user: %w", err)
		}

		if user == nil {
			user = &entity.User{
				SlackUserID: slackUserID,
				Name:        name,
				Email:       userInfo.Profile.Email,
			}
			if err := tx.User().Create(ctx, user); err != nil {
				return err
			}
		} else {
			user.Name = name
			user.Email = userInfo.Profile.Email
			if err := tx.User().Update(ctx, user); err != nil {
				return err
			}
		}

		employee = &entity.Employee{
			Name:   name,
			UserID: &user.ID,
			User:   user,
		}

		if departmentName != "" {
			department, err := getOrCreateDepartment(ctx, tx, departmentName)
			if err != nil {
				return err
			}
			employee.DepartmentID = &department.ID
		}

		return tx.Employee().Create(ctx, employee)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("employee added",
		zap.Int64("employee_id", employee.ID),
		zap.String("slack_user_id", slackUserID),
		zap.String("department", departmentName),
	)

	return employee, nil
}

func getOrCreateDepartment(ctx context.Context, dm contract.DataManager, name string) (*entity.Department, error) {
	department, err := dm.Department().GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check department: %w", err)
	}
	if department != nil {
		return department, nil
	}

	department = &entity.Department{Name: name}
	if err := dm.Department().Create(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

func (s *directoryService) RemoveEmployee(ctx context.Context, slackUserID string) error {
	employee, err := s.dm.Employee().GetBySlackUserID(ctx, slackUserID)
	if err != nil {
		return fmt.Errorf("failed to find employee: %w", err)
	}

	if employee == nil {
		return fmt.Errorf("employee not found in directory")
	}

	return s.dm.Employee().Delete(ctx, employee.ID)
}

// ListEmployees lists one department, or everyone when departmentName is empty
func (s *directoryService) ListEmployees(ctx context.Context, departmentName string) ([]*entity.Employee, error) {
	filter := entity.EmployeeFilter{}

	if strings.TrimSpace(departmentName) != "" {
		department, err := s.FindDepartment(ctx, departmentName)
		if err != nil {
			return nil, err
		}
		filter.DepartmentID = department.ID
	}

	return s.dm.Employee().Find(ctx, filter)
}

func (s *directoryService) ListDepartments(ctx context.Context) ([]*entity.Department, error) {
	return s.dm.Department().List(ctx)
}

func (s *directoryService) FindDepartment(ctx context.Context, name string) (*entity.Department, error) {
	name = strings.TrimSpace(name)

	department, err := s.dm.Department().GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	if department == nil {
		return nil, fmt.Errorf("%w: department %q not found", domain.ErrInvalidInput, name)
	}

	return department, nil
}

// SelectEmployees resolves an explicit selection. Every reference must exist;
// duplicates are dropped.
func (s *directoryService) SelectEmployees(ctx context.Context, slackUserIDs []string, employeeIDs []int64) ([]*entity.Employee, error) {
	var selected []*entity.Employee
	seen := make(map[int64]bool)

	add := func(employee *entity.Employee) {
		if seen[employee.ID] {
			return
		}
		seen[employee.ID] = true
		selected = append(selected, employee)
	}

	for _, slackUserID := range slackUserIDs {
		employee, err := s.dm.Employee().GetBySlackUserID(ctx, slackUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to find employee: %w", err)
		}
		if employee == nil {
			return nil, fmt.Errorf("%w: <@%s> is not in the directory", domain.ErrInvalidInput, slackUserID)
		}
		add(employee)
	}

	if len(employeeIDs) > 0 {
		employees, err := s.dm.Employee().Find(ctx, entity.EmployeeFilter{IDs: employeeIDs})
		if err != nil {
			return nil, fmt.Errorf("failed to find employees: %w", err)
		}

		found := make(map[int64]*entity.Employee, len(employees))
		for _, employee := range employees {
			found[employee.ID] = employee
		}
		for _, id := range employeeIDs {
			employee, ok := found[id]
			if !ok {
				return nil, fmt.Errorf("%w: employee #%d not found", domain.ErrInvalidInput, id)
			}
			add(employee)
		}
	}

	return selected, nil
}

// RequesterTimezone returns the IANA timezone from the Slack profile, or "" when it
// cannot be read
func (s *directoryService) RequesterTimezone(ctx context.Context, slackUserID string) string {
	userInfo, err := s.slackClient.GetUserInfoContext(ctx, slackUserID)
	if err != nil {
		s.log.Warn("failed to read requester timezone", zap.String("slack_user_id", slackUserID), zap.Error(err))
		return ""
	}
	return userInfo.TZ
}

func displayName(userInfo *slack.User) string {
	if userInfo.Profile.RealName != "" {
		return userInfo.Profile.RealName
	}
	if userInfo.Profile.DisplayName != "" {
		return userInfo.Profile.DisplayName
	}
	if userInfo.RealName != "" {
		return userInfo.RealName
	}
	return userInfo.Name
}
