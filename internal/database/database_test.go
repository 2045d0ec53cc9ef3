package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/diegoclair/shift-notify-bot/internal/domain/entity"
	"github.com/diegoclair/shift-notify-bot/migrator/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	assert.Equal(t, "./shift.db?_foreign_keys=on", dsn("./shift.db"))
	assert.Equal(t, "file:shift.db?cache=shared&_foreign_keys=on", dsn("file:shift.db?cache=shared"))
}

func TestNew_ForeignKeysOnEveryConnection(t *testing.T) {
	ctx := context.Background()

	db, err := New(filepath.Join(t.TempDir(), "directory.db"))
	require.NoError(t, err)
	defer CleanupTestDB(t, db)

	// hold two connections at once so the pool cannot hand out the same one
	first, err := db.DB().Conn(ctx)
	require.NoError(t, err)
	defer first.Close()

	second, err := db.DB().Conn(ctx)
	require.NoError(t, err)
	defer second.Close()

	var enabled int
	require.NoError(t, first.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)

	enabled = 0
	require.NoError(t, second.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func TestNew_DeletingDepartmentUnlinksEmployees(t *testing.T) {
	ctx := context.Background()

	db, err := New(filepath.Join(t.TempDir(), "directory.db"))
	require.NoError(t, err)
	defer CleanupTestDB(t, db)

	require.NoError(t, sqlite.Migrate(db.DB()))
	dm := NewInstance(db)

	department := &entity.Department{Name: "Kitchen"}
	require.NoError(t, dm.Department().Create(ctx, department))

	employee := &entity.Employee{Name: "Mykola", DepartmentID: &department.ID}
	require.NoError(t, dm.Employee().Create(ctx, employee))

	_, err = db.DB().ExecContext(ctx, "DELETE FROM departments WHERE id = ?", department.ID)
	require.NoError(t, err)

	employees, err := dm.Employee().Find(ctx, entity.EmployeeFilter{IDs: []int64{employee.ID}})
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Nil(t, employees[0].DepartmentID)
}
