package database

import (
	"context"
	"testing"

	"github.com/diegoclair/shift-notify-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type directoryFixture struct {
	kitchen   *entity.Department
	warehouse *entity.Department
	olena     *entity.Employee // kitchen, linked, with email
	taras     *entity.Employee // kitchen, linked, no email
	mykola    *entity.Employee // kitchen, not linked
	iryna     *entity.Employee // warehouse, linked
}

func seedDirectory(t *testing.T, db *DB) directoryFixture {
	t.Helper()

	ctx := context.Background()
	departments := newDepartmentRepo(db.conn)
	users := newUserRepo(db.conn)
	employees := newEmployeeRepo(db.conn)

	var f directoryFixture

	f.kitchen = &entity.Department{Name: "Kitchen"}
	require.NoError(t, departments.Create(ctx, f.kitchen))
	f.warehouse = &entity.Department{Name: "Warehouse"}
	require.NoError(t, departments.Create(ctx, f.warehouse))

	newEmployee := func(name string, department *entity.Department, user *entity.User) *entity.Employee {
		employee := &entity.Employee{Name: name, DepartmentID: &department.ID}
		if user != nil {
			require.NoError(t, users.Create(ctx, user))
			employee.UserID = &user.ID
		}
		require.NoError(t, employees.Create(ctx, employee))
		return employee
	}

	f.olena = newEmployee("Olena", f.kitchen, &entity.User{SlackUserID: "U001", Name: "Olena", Email: "olena@example.com"})
	f.taras = newEmployee("Taras", f.kitchen, &entity.User{SlackUserID: "U002", Name: "Taras"})
	f.mykola = newEmployee("Mykola", f.kitchen, nil)
	f.iryna = newEmployee("Iryna", f.warehouse, &entity.User{SlackUserID: "U003", Name: "Iryna", Email: "iryna@example.com"})

	return f
}

func employeeNames(employees []*entity.Employee) []string {
	names := make([]string, 0, len(employees))
	for _, e := range employees {
		names = append(names, e.Name)
	}
	return names
}

func TestEmployeeRepo_Find(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newEmployeeRepo(db.conn)
	f := seedDirectory(t, db)

	tests := []struct {
		name      string
		filter    entity.EmployeeFilter
		wantNames []string
	}{
		{
			name:      "Should return everyone without filter",
			filter:    entity.EmployeeFilter{},
			wantNames: []string{"Iryna", "Mykola", "Olena", "Taras"},
		},
		{
			name:      "Should filter by department",
			filter:    entity.EmployeeFilter{DepartmentID: f.kitchen.ID},
			wantNames: []string{"Mykola", "Olena", "Taras"},
		},
		{
			name:      "Should keep only employees with a linked user",
			filter:    entity.EmployeeFilter{DepartmentID: f.kitchen.ID, LinkedOnly: true},
			wantNames: []string{"Olena", "Taras"},
		},
		{
			name:      "Should filter by ids",
			filter:    entity.EmployeeFilter{IDs: []int64{f.iryna.ID, f.mykola.ID}},
			wantNames: []string{"Iryna", "Mykola"},
		},
		{
			name:      "Should return nothing for an empty department",
			filter:    entity.EmployeeFilter{DepartmentID: 99999},
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.Find(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNames, employeeNames(found))
		})
	}
}

func TestEmployeeRepo_Find_JoinsUser(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newEmployeeRepo(db.conn)
	f := seedDirectory(t, db)

	found, err := repo.Find(ctx, entity.EmployeeFilter{IDs: []int64{f.olena.ID, f.mykola.ID}})
	require.NoError(t, err)
	require.Len(t, found, 2)

	mykola, olena := found[0], found[1]

	assert.False(t, mykola.HasUser())
	assert.Nil(t, mykola.UserID)
	require.NotNil(t, mykola.DepartmentID)
	assert.Equal(t, f.kitchen.ID, *mykola.DepartmentID)

	require.True(t, olena.HasUser())
	assert.Equal(t, *olena.UserID, olena.User.ID)
	assert.Equal(t, "U001", olena.User.SlackUserID)
	assert.Equal(t, "olena@example.com", olena.User.Email)
}

func TestEmployeeRepo_GetBySlackUserID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newEmployeeRepo(db.conn)
	f := seedDirectory(t, db)

	found, err := repo.GetBySlackUserID(ctx, "U003")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, f.iryna.ID, found.ID)
	assert.Equal(t, "Iryna", found.User.Name)

	notFound, err := repo.GetBySlackUserID(ctx, "UNOTFOUND")
	require.NoError(t, err)
	assert.Nil(t, notFound)
}

func TestEmployeeRepo_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newEmployeeRepo(db.conn)
	f := seedDirectory(t, db)

	require.NoError(t, repo.Delete(ctx, f.taras.ID))

	deleted, err := repo.GetBySlackUserID(ctx, "U002")
	require.NoError(t, err)
	assert.Nil(t, deleted, "Expected employee to be deleted")

	// The linked user stays in the directory
	user, err := newUserRepo(db.conn).GetBySlackID(ctx, "U002")
	require.NoError(t, err)
	assert.NotNil(t, user)
}
