package postgres

import (
	"context"

	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/domain"
	"gorm.io/gorm"
)

type humanPlayerRepository struct {
	db *gorm.DB
}

func NewHumanPlayerRepository(db *gorm.DB) *humanPlayerRepository {
	return &humanPlayerRepository{db: db}
}

func (r *humanPlayerRepository) Create(ctx context.Context, record *domain.HumanPlayerRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *humanPlayerRepository) GetByTeam(ctx context.Context, teamNumber int, compCode string) ([]*domain.HumanPlayerRecord, error) {
	var records []*domain.HumanPlayerRecord
	err := r.db.WithContext(ctx).
		Where("team_number = ? AND comp_code = ?", teamNumber, compCode).
		Order("match_number ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
