package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/domain"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/picklist"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/repository"
	"gorm.io/datatypes"
)

type PollStatus string

const (
	PollNoData   PollStatus = "no_data"
	PollNoChange PollStatus = "no_change"
	PollUpdated  PollStatus = "updated"
)

// PollResult is the polling protocol's answer: no_data when no snapshot
// exists, no_change when the client is current, updated with the payload
// when the stored snapshot is newer.
type PollResult struct {
	Status    PollStatus       `json:"status"`
	Timestamp int64            `json:"timestamp,omitempty"`
	Data      domain.TierLists `json:"data,omitempty"`
}

type PickListService struct {
	files    *picklist.FileStore
	pickRepo repository.PickListRepository
}

func NewPickListService(files *picklist.FileStore, pickRepo repository.PickListRepository) *PickListService {
	return &PickListService{files: files, pickRepo: pickRepo}
}

// Save always writes the durable file and returns its fresh timestamp; the
// database row is updated only when the caller opts in. The file is written
// first so polling clients see the change even if the row write fails.
func (s *PickListService) Save(ctx context.Context, compCode string, tiers domain.TierLists, saveToDB bool) (int64, error) {
	if len(tiers) != domain.TierCount {
		return 0, domain.ErrInvalidTierLists
	}

	timestamp, err := s.files.Write(compCode, tiers)
	if err != nil {
		return 0, fmt.Errorf("save pick list file: %w", err)
	}

	if saveToDB {
		entry, err := tiersToEntry(compCode, tiers)
		if err != nil {
			return 0, err
		}
		if err := s.pickRepo.Upsert(ctx, entry); err != nil {
			return 0, fmt.Errorf("save pick list row: %w", err)
		}
	}

	log.Info().
		Str("compCode", compCode).
		Int64("timestamp", timestamp).
		Bool("savedToDB", saveToDB).
		Msg("pick list saved")

	return timestamp, nil
}

// Poll compares the client's last-known timestamp against the stored
// snapshot so unchanged pick lists are not re-sent on every poll.
func (s *PickListService) Poll(ctx context.Context, compCode string, clientTimestamp int64) (*PollResult, error) {
	snap, err := s.files.Read(compCode)
	if errors.Is(err, picklist.ErrNoSnapshot) {
		return &PollResult{Status: PollNoData}, nil
	}
	if err != nil {
		return nil, err
	}

	if clientTimestamp >= snap.Timestamp {
		return &PollResult{Status: PollNoChange, Timestamp: snap.Timestamp}, nil
	}

	return &PollResult{Status: PollUpdated, Timestamp: snap.Timestamp, Data: snap.Data}, nil
}

func tiersToEntry(compCode string, tiers domain.TierLists) (*domain.PickListEntry, error) {
	encoded := make([]datatypes.JSON, domain.TierCount)
	for i, tier := range tiers {
		if tier == nil {
			tier = []int{}
		}
		raw, err := json.Marshal(tier)
		if err != nil {
			return nil, fmt.Errorf("encode tier %d: %w", i, err)
		}
		encoded[i] = datatypes.JSON(raw)
	}

	return &domain.PickListEntry{
		CompCode:   compCode,
		NoPick:     encoded[0],
		FirstPick:  encoded[1],
		SecondPick: encoded[2],
		ThirdPick:  encoded[3],
		DNPick:     encoded[4],
	}, nil
}
