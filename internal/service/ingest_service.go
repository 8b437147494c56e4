package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/domain"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/repository"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/scan"
)

type IngestService struct {
	matchRepo repository.MatchRecordRepository
}

func NewIngestService(matchRepo repository.MatchRecordRepository) *IngestService {
	return &IngestService{matchRepo: matchRepo}
}

// ScanErrors reports every validation failure for one scan in a batch.
type ScanErrors struct {
	Index    int      `json:"index"`
	Messages []string `json:"messages"`
}

// ValidateBatch runs the full validator over every submission and collects
// failures by batch index. An empty result means the batch may be ingested.
func (s *IngestService) ValidateBatch(raws []map[string]any) []ScanErrors {
	var failures []ScanErrors
	for i, raw := range raws {
		if ok, errs := scan.Validate(raw); !ok {
			failures = append(failures, ScanErrors{Index: i, Messages: errs})
		}
	}
	return failures
}

// Ingest normalizes each submission and writes the batch in one
// transaction. Records left without their identity fields after
// normalization are skipped and logged rather than aborting their siblings;
// the rest still commit atomically. Returns the processed count.
func (s *IngestService) Ingest(ctx context.Context, raws []map[string]any) (int, error) {
	batchID := uuid.New()

	records := make([]*domain.MatchRecord, 0, len(raws))
	for i, raw := range raws {
		rec := scan.Normalize(raw)
		if !rec.Usable() {
			log.Warn().
				Str("batch", batchID.String()).
				Int("index", i).
				Int("teamNumber", rec.TeamNumber).
				Int("matchNumber", rec.MatchNumber).
				Msg("skipping scan record missing required fields")
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return 0, nil
	}

	processed, err := s.matchRepo.IngestBatch(ctx, records)
	if err != nil {
		return 0, fmt.Errorf("ingest batch %s: %w", batchID, err)
	}

	log.Info().
		Str("batch", batchID.String()).
		Int("received", len(raws)).
		Int("processed", processed).
		Msg("scan batch ingested")

	return processed, nil
}
