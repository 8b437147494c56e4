package postgres

import (
	"context"
	"errors"

	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type pickListRepository struct {
	db *gorm.DB
}

func NewPickListRepository(db *gorm.DB) *pickListRepository {
	return &pickListRepository{db: db}
}

// Upsert keeps at most one row per competition, unconditionally overwriting
// the tier columns on conflict.
func (r *pickListRepository) Upsert(ctx context.Context, entry *domain.PickListEntry) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "comp_code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"no_pick", "first_pick", "second_pick", "third_pick", "dn_pick", "updated_at",
		}),
	}).Create(entry).Error
}

func (r *pickListRepository) GetByEvent(ctx context.Context, compCode string) (*domain.PickListEntry, error) {
	var entry domain.PickListEntry
	err := r.db.WithContext(ctx).First(&entry, "comp_code = ?", compCode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrPickListNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
