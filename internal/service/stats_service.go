package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/domain"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/repository"
)

var ErrScheduleUnavailable = errors.New("competition schedule provider not configured")

type StatsService struct {
	matchRepo repository.MatchRecordRepository
	teamRepo  repository.TeamRepository
	schedule  ScheduleProvider
}

func NewStatsService(matchRepo repository.MatchRecordRepository, teamRepo repository.TeamRepository, schedule ScheduleProvider) *StatsService {
	return &StatsService{matchRepo: matchRepo, teamRepo: teamRepo, schedule: schedule}
}

// TeamStats is the per-team summary consumed by rankings and the dashboard.
// Every mean is rounded to 3 decimal places and defaults to 0 when the team
// has no qualifying rows.
type TeamStats struct {
	TeamNumber int `json:"teamNumber"`
	MatchCount int `json:"matchCount"`

	AutoNet       float64 `json:"autoNet"`
	AutoProcessor float64 `json:"autoProcessor"`
	AutoL1        float64 `json:"autoL1"`
	AutoL2        float64 `json:"autoL2"`
	AutoL3        float64 `json:"autoL3"`
	AutoL4        float64 `json:"autoL4"`

	TeleNet       float64 `json:"teleNet"`
	TeleProcessor float64 `json:"teleProcessor"`
	TeleL1        float64 `json:"teleL1"`
	TeleL2        float64 `json:"teleL2"`
	TeleL3        float64 `json:"teleL3"`
	TeleL4        float64 `json:"teleL4"`

	// Combined per-level means, autonomous plus driver-controlled.
	L1 float64 `json:"l1"`
	L2 float64 `json:"l2"`
	L3 float64 `json:"l3"`
	L4 float64 `json:"l4"`

	AutoTotal   float64 `json:"autoTotal"`
	TeleopTotal float64 `json:"teleopTotal"`
	Climb       float64 `json:"climb"`
	Defense     float64 `json:"defense"`
	Total       float64 `json:"total"`

	// Taken from the first qualifying row, not averaged. Scouts record these
	// per match but in practice they are constant per team and event.
	StartPos   int `json:"startPos"`
	MissedAuto int `json:"missedAuto"`
}

// Summarize computes the rolling averages for one team at one competition,
// restricted to the given match type and to official match numbers. It is
// read-only and safe to call concurrently. A team with no qualifying rows
// gets all-zero stats, never an error; absent data is an expected state.
func (s *StatsService) Summarize(ctx context.Context, teamNumber int, compCode string, quantifier domain.Quantifier) (*TeamStats, error) {
	records, err := s.matchRepo.GetOfficial(ctx, teamNumber, compCode, quantifier)
	if err != nil {
		return nil, fmt.Errorf("load match records: %w", err)
	}

	stats := &TeamStats{TeamNumber: teamNumber, MatchCount: len(records)}
	if len(records) == 0 {
		return stats, nil
	}

	var autoNet, autoProc, autoL1, autoL2, autoL3, autoL4 int
	var teleNet, teleProc, teleL1, teleL2, teleL3, teleL4 int
	var climb, defense int
	for _, rec := range records {
		autoNet += rec.AutoNet
		autoProc += rec.AutoProcessor
		autoL1 += rec.AutoL1
		autoL2 += rec.AutoL2
		autoL3 += rec.AutoL3
		autoL4 += rec.AutoL4
		teleNet += rec.TeleNet
		teleProc += rec.TeleProcessor
		teleL1 += rec.TeleL1
		teleL2 += rec.TeleL2
		teleL3 += rec.TeleL3
		teleL4 += rec.TeleL4
		climb += rec.EndClimb
		defense += rec.DefenseRanking
	}

	n := float64(len(records))
	stats.AutoNet = round3(float64(autoNet) / n)
	stats.AutoProcessor = round3(float64(autoProc) / n)
	stats.AutoL1 = round3(float64(autoL1) / n)
	stats.AutoL2 = round3(float64(autoL2) / n)
	stats.AutoL3 = round3(float64(autoL3) / n)
	stats.AutoL4 = round3(float64(autoL4) / n)
	stats.TeleNet = round3(float64(teleNet) / n)
	stats.TeleProcessor = round3(float64(teleProc) / n)
	stats.TeleL1 = round3(float64(teleL1) / n)
	stats.TeleL2 = round3(float64(teleL2) / n)
	stats.TeleL3 = round3(float64(teleL3) / n)
	stats.TeleL4 = round3(float64(teleL4) / n)
	stats.Climb = round3(float64(climb) / n)
	stats.Defense = round3(float64(defense) / n)

	stats.L1 = round3(stats.AutoL1 + stats.TeleL1)
	stats.L2 = round3(stats.AutoL2 + stats.TeleL2)
	stats.L3 = round3(stats.AutoL3 + stats.TeleL3)
	stats.L4 = round3(stats.AutoL4 + stats.TeleL4)

	stats.AutoTotal = round3(stats.AutoL1 + stats.AutoL2 + stats.AutoL3 + stats.AutoL4 +
		stats.AutoNet + stats.AutoProcessor)
	stats.TeleopTotal = round3(stats.TeleL1 + stats.TeleL2 + stats.TeleL3 + stats.TeleL4 +
		stats.TeleNet + stats.TeleProcessor)
	stats.Total = round3(stats.AutoTotal + stats.TeleopTotal + stats.Climb)

	stats.StartPos = records[0].StartPos
	stats.MissedAuto = records[0].MissedAuto

	return stats, nil
}

// SummarizeEvent returns qualification-match summaries for every team known
// at a competition, ordered by team number.
func (s *StatsService) SummarizeEvent(ctx context.Context, compCode string) ([]*TeamStats, error) {
	teams, err := s.teamRepo.GetByEvent(ctx, compCode)
	if err != nil {
		return nil, fmt.Errorf("load event teams: %w", err)
	}

	summaries := make([]*TeamStats, 0, len(teams))
	for _, team := range teams {
		stats, err := s.Summarize(ctx, team.TeamNumber, compCode, domain.QuantifierQualification)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, stats)
	}
	return summaries, nil
}

// AllianceStats summarizes both alliances of one upcoming qualification
// match for the pre-match dashboard.
type AllianceStats struct {
	Red  []*TeamStats `json:"red"`
	Blue []*TeamStats `json:"blue"`
}

func (s *StatsService) SummarizeMatch(ctx context.Context, compCode string, matchNumber int) (*AllianceStats, error) {
	if s.schedule == nil {
		return nil, ErrScheduleUnavailable
	}

	match, err := s.schedule.GetMatch(ctx, compCode, fmt.Sprintf("qm%d", matchNumber))
	if err != nil {
		return nil, fmt.Errorf("load match schedule: %w", err)
	}

	alliances := &AllianceStats{}
	for _, team := range match.Red {
		stats, err := s.Summarize(ctx, team, compCode, domain.QuantifierQualification)
		if err != nil {
			return nil, err
		}
		alliances.Red = append(alliances.Red, stats)
	}
	for _, team := range match.Blue {
		stats, err := s.Summarize(ctx, team, compCode, domain.QuantifierQualification)
		if err != nil {
			return nil, err
		}
		alliances.Blue = append(alliances.Blue, stats)
	}
	return alliances, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
