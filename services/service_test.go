// services/service_test.go - Shared test fixtures
package services

import (
	"testing"

	"pdcaportal/database"
	"pdcaportal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see a different :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// seedTeam registers a user with a fresh team, which also opens cycle 1.
func seedTeam(t *testing.T, db *gorm.DB, code string) (*models.Team, *models.User) {
	t.Helper()

	user, err := NewAuthService(db).Register(RegisterInput{
		Username:   "member-" + code,
		Email:      code + "@example.com",
		Password:   "s3cret-pass",
		TeamCode:   code,
		TeamName:   "Team " + code,
		CreateTeam: true,
	})
	require.NoError(t, err)

	var team models.Team
	require.NoError(t, db.First(&team, user.TeamID).Error)
	return &team, user
}

func activeCycles(t *testing.T, db *gorm.DB, teamID uint) []models.PDCACycle {
	t.Helper()

	var cycles []models.PDCACycle
	require.NoError(t, db.
		Where("team_id = ? AND status = ?", teamID, models.CycleStatusActive).
		Find(&cycles).Error)
	return cycles
}
