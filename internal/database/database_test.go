package database

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/config"
	"github.com/SAP-F-2025/course-service/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := Open(context.Background(), config.DatabaseConfig{Driver: DriverSQLite, URL: name}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestSqliteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "file::memory:?_pragma=foreign_keys(1)"},
		{"cms.db", "cms.db?_pragma=foreign_keys(1)"},
		{"file:x?mode=memory", "file:x?mode=memory&_pragma=foreign_keys(1)"},
		{"cms.db?_pragma=foreign_keys(0)", "cms.db?_pragma=foreign_keys(0)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sqliteDSN(tt.in))
	}
}

func TestDialectorFor_UnknownDriver(t *testing.T) {
	_, err := dialectorFor(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Migrate(db))

	for _, entity := range Entities() {
		assert.True(t, db.Migrator().HasTable(entity))
	}
}

func TestCascadeDeleteUser(t *testing.T) {
	db := newTestDB(t)

	user := models.User{Name: "a", Email: "a@x.io", HashedPassword: "h", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)
	course := models.Course{Title: "c"}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Create(&models.Enrollment{StudentID: user.ID, CourseID: course.ID}).Error)
	require.NoError(t, db.Create(&models.Notification{UserID: user.ID, Title: "t"}).Error)

	require.NoError(t, db.Delete(&models.User{}, user.ID).Error)

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Notification{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUniqueEnrollmentPair(t *testing.T) {
	db := newTestDB(t)

	user := models.User{Name: "a", Email: "a@x.io", HashedPassword: "h", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)
	course := models.Course{Title: "c"}
	require.NoError(t, db.Create(&course).Error)

	require.NoError(t, db.Create(&models.Enrollment{StudentID: user.ID, CourseID: course.ID}).Error)
	err := db.Create(&models.Enrollment{StudentID: user.ID, CourseID: course.ID}).Error
	assert.Error(t, err)
}
