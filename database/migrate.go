// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"pdcaportal/models"

	"gorm.io/gorm"
)

// Migrate runs all schema migrations against the given database.
// Taking the db as a parameter keeps migrations callable from tests.
func Migrate(db *gorm.DB) error {
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.Team{},
		&models.User{},
		&models.PDCACycle{},
		&models.Evaluation{},
		&models.NextAction{},
	); err != nil {
		return err
	}

	createIndexes(db)

	log.Println("✅ All migrations completed successfully")
	return nil
}

// createIndexes creates indexes beyond what AutoMigrate derives from tags.
func createIndexes(db *gorm.DB) {
	// A team has exactly one active cycle; the partial unique index makes
	// the invariant hold even against writers outside this codebase.
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_pdca_cycles_one_active ON pdca_cycles(team_id) WHERE status = 'active'")
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_pdca_cycles_team_number ON pdca_cycles(team_id, cycle_number)")

	db.Exec("CREATE INDEX IF NOT EXISTS idx_evaluations_cycle ON evaluations(cycle_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_evaluations_team_created ON evaluations(team_id, created_at DESC)")

	db.Exec("CREATE INDEX IF NOT EXISTS idx_next_actions_cycle ON next_actions(cycle_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_next_actions_target ON next_actions(target_date ASC)")
}
