package entity

import "time"

type Department struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// User is the addressable identity linked to an employee
type User struct {
	ID          int64
	SlackUserID string
	Name        string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Employee struct {
	ID           int64
	Name         string
	DepartmentID *int64
	UserID       *int64
	CreatedAt    time.Time

	// User is filled by the repository when the employee has a linked user
	User *User
}

// HasUser reports whether the employee can be addressed
func (e *Employee) HasUser() bool {
	return e.User != nil
}

// EmployeeFilter is the predicate for directory queries. Zero values do not filter.
type EmployeeFilter struct {
	IDs          []int64
	DepartmentID int64
	LinkedOnly   bool
}
