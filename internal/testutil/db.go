// Package testutil provides database fixtures shared by package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/empleo-joven-api/internal/database"
	"github.com/yukikurage/empleo-joven-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated in-memory SQLite database with the built-in roles
// seeded. The pool is limited to one connection because every connection to
// ":memory:" sees a separate database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(":memory:")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}

// CreateUser inserts a user with the given role. The password is "secret".
func CreateUser(t testing.TB, db *gorm.DB, name string, role models.RoleID) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: string(hash),
		RoleID:       role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateCategory(t testing.TB, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func CreateOpportunity(t testing.TB, db *gorm.DB, title string, postedBy uint64, categoryID *uint64) *models.Opportunity {
	t.Helper()

	opportunity := &models.Opportunity{
		Title:       title,
		Description: "Descripción de " + title,
		Location:    "Lima",
		CategoryID:  categoryID,
		PostedBy:    postedBy,
	}
	require.NoError(t, db.Create(opportunity).Error)
	return opportunity
}

func CreatePostulation(t testing.TB, db *gorm.DB, userID, opportunityID uint64, status string) *models.Postulation {
	t.Helper()

	postulation := &models.Postulation{
		UserID:        userID,
		OpportunityID: opportunityID,
		Status:        status,
	}
	require.NoError(t, db.Create(postulation).Error)
	return postulation
}
