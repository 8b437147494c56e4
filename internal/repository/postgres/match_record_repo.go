package postgres

import (
	"context"
	"errors"

	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type matchRecordRepository struct {
	db *gorm.DB
}

func NewMatchRecordRepository(db *gorm.DB) *matchRecordRepository {
	return &matchRecordRepository{db: db}
}

// matchRecordColumns are the non-key fields overwritten on conflict.
// Last write wins; there is no merging of sibling submissions.
var matchRecordColumns = []string{
	"quantifier", "scout_name", "start_pos", "missed_auto",
	"auto_leave", "auto_net", "auto_processor", "auto_removed",
	"auto_l1", "auto_l2", "auto_l3", "auto_l4", "auto_path",
	"tele_net", "tele_processor", "tele_removed",
	"tele_l1", "tele_l2", "tele_l3", "tele_l4",
	"end_climb", "driver_ranking", "defense_ranking", "comment",
	"is_broken", "is_disabled", "is_tipped", "updated_at",
}

// IngestBatch writes a batch inside a single transaction: ensure the team
// row exists (never touching pit data on an existing team), then upsert the
// match record on its (team_number, comp_code, match_number) key. Any
// failure rolls the whole batch back.
func (r *matchRecordRepository) IngestBatch(ctx context.Context, records []*domain.MatchRecord) (int, error) {
	processed := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rec := range records {
			team := domain.Team{TeamNumber: rec.TeamNumber, CompCode: rec.CompCode}
			if err := tx.
				Where("team_number = ? AND comp_code = ?", rec.TeamNumber, rec.CompCode).
				FirstOrCreate(&team).Error; err != nil {
				return err
			}

			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "team_number"}, {Name: "comp_code"}, {Name: "match_number"},
				},
				DoUpdates: clause.AssignmentColumns(matchRecordColumns),
			}).Create(rec).Error; err != nil {
				return err
			}
			processed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return processed, nil
}

func (r *matchRecordRepository) GetByTeam(ctx context.Context, teamNumber int, compCode string) ([]*domain.MatchRecord, error) {
	var records []*domain.MatchRecord
	err := r.db.WithContext(ctx).
		Where("team_number = ? AND comp_code = ?", teamNumber, compCode).
		Order("quantifier DESC").
		Order("match_number DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *matchRecordRepository) GetByMatch(ctx context.Context, teamNumber int, compCode string, matchNumber int) (*domain.MatchRecord, error) {
	var record domain.MatchRecord
	err := r.db.WithContext(ctx).
		First(&record, "team_number = ? AND comp_code = ? AND match_number = ?",
			teamNumber, compCode, matchNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrMatchNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetOfficial returns the rows that count toward statistics: matching
// quantifier and a match number under the official-match ceiling.
func (r *matchRecordRepository) GetOfficial(ctx context.Context, teamNumber int, compCode string, quantifier domain.Quantifier) ([]*domain.MatchRecord, error) {
	var records []*domain.MatchRecord
	err := r.db.WithContext(ctx).
		Where("team_number = ? AND comp_code = ? AND quantifier = ? AND match_number < ?",
			teamNumber, compCode, quantifier, domain.OfficialMatchCeiling).
		Order("match_number ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
