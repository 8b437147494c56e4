package postgres

import (
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/domain"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates/updates the schema. Split out so the test harness can run
// it against a container database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Team{},
		&domain.MatchRecord{},
		&domain.HumanPlayerRecord{},
		&domain.PickListEntry{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Team:        NewTeamRepository(db),
		MatchRecord: NewMatchRecordRepository(db),
		HumanPlayer: NewHumanPlayerRepository(db),
		PickList:    NewPickListRepository(db),
	}
}
