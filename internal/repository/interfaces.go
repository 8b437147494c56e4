package repository

import (
	"context"

	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/domain"
)

type TeamRepository interface {
	GetOrCreate(ctx context.Context, teamNumber int, compCode string) (*domain.Team, error)
	GetByNumber(ctx context.Context, teamNumber int, compCode string) (*domain.Team, error)
	GetByEvent(ctx context.Context, compCode string) ([]*domain.Team, error)
	UpdatePitData(ctx context.Context, team *domain.Team) error
}

type MatchRecordRepository interface {
	// IngestBatch persists a batch atomically: each record gets its team row
	// ensured and its match record upserted inside one transaction.
	IngestBatch(ctx context.Context, records []*domain.MatchRecord) (int, error)
	GetByTeam(ctx context.Context, teamNumber int, compCode string) ([]*domain.MatchRecord, error)
	GetByMatch(ctx context.Context, teamNumber int, compCode string, matchNumber int) (*domain.MatchRecord, error)
	GetOfficial(ctx context.Context, teamNumber int, compCode string, quantifier domain.Quantifier) ([]*domain.MatchRecord, error)
}

type HumanPlayerRepository interface {
	Create(ctx context.Context, record *domain.HumanPlayerRecord) error
	GetByTeam(ctx context.Context, teamNumber int, compCode string) ([]*domain.HumanPlayerRecord, error)
}

type PickListRepository interface {
	Upsert(ctx context.Context, entry *domain.PickListEntry) error
	GetByEvent(ctx context.Context, compCode string) (*domain.PickListEntry, error)
}

type Repositories struct {
	Team        TeamRepository
	MatchRecord MatchRecordRepository
	HumanPlayer HumanPlayerRepository
	PickList    PickListRepository
}
