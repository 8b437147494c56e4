package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/domain"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/repository"
)

// TestingEvent is the sentinel competition code for training data. It has
// no TBA schedule, so team lists for it come from the database alone.
const TestingEvent = "testing"

type TeamService struct {
	teamRepo  repository.TeamRepository
	matchRepo repository.MatchRecordRepository
	humanRepo repository.HumanPlayerRepository
	schedule  ScheduleProvider
}

func NewTeamService(teamRepo repository.TeamRepository, matchRepo repository.MatchRecordRepository, humanRepo repository.HumanPlayerRepository, schedule ScheduleProvider) *TeamService {
	return &TeamService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		humanRepo: humanRepo,
		schedule:  schedule,
	}
}

// EventTeams lists every team at an event plus which of them have been pit
// scouted.
type EventTeams struct {
	Teams      []int `json:"teams"`
	PitScouted []int `json:"pitScouted"`
}

// ListEvent resolves the event's team list from TBA for real events and
// from scouted rows for the training event, and overlays pit-scout status
// from the database.
func (s *TeamService) ListEvent(ctx context.Context, compCode string) (*EventTeams, error) {
	scouted, err := s.teamRepo.GetByEvent(ctx, compCode)
	if err != nil {
		return nil, fmt.Errorf("load scouted teams: %w", err)
	}

	result := &EventTeams{Teams: []int{}, PitScouted: []int{}}
	for _, team := range scouted {
		if team.PitScoutStatus {
			result.PitScouted = append(result.PitScouted, team.TeamNumber)
		}
	}

	if strings.EqualFold(compCode, TestingEvent) || s.schedule == nil {
		for _, team := range scouted {
			result.Teams = append(result.Teams, team.TeamNumber)
		}
	} else {
		eventTeams, err := s.schedule.GetEventTeams(ctx, compCode)
		if err != nil {
			return nil, fmt.Errorf("load event team list: %w", err)
		}
		for _, team := range eventTeams {
			result.Teams = append(result.Teams, team.TeamNumber)
		}
	}

	sort.Ints(result.Teams)
	return result, nil
}

// TeamPage bundles everything the team detail view needs.
type TeamPage struct {
	Team         *domain.Team                `json:"team"`
	MatchRecords []*domain.MatchRecord       `json:"matchRecords"`
	HumanPlayer  []*domain.HumanPlayerRecord `json:"humanPlayer"`
}

// GetPage get-or-creates the team row, then loads its match and human
// player records, newest first within each match type.
func (s *TeamService) GetPage(ctx context.Context, teamNumber int, compCode string) (*TeamPage, error) {
	team, err := s.teamRepo.GetOrCreate(ctx, teamNumber, compCode)
	if err != nil {
		return nil, fmt.Errorf("ensure team row: %w", err)
	}

	records, err := s.matchRepo.GetByTeam(ctx, teamNumber, compCode)
	if err != nil {
		return nil, fmt.Errorf("load match records: %w", err)
	}

	human, err := s.humanRepo.GetByTeam(ctx, teamNumber, compCode)
	if err != nil {
		return nil, fmt.Errorf("load human player records: %w", err)
	}

	return &TeamPage{Team: team, MatchRecords: records, HumanPlayer: human}, nil
}

// UpdatePitData ensures the team exists and then overwrites its descriptive
// fields from the pit-scouting form.
func (s *TeamService) UpdatePitData(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	if _, err := s.teamRepo.GetOrCreate(ctx, team.TeamNumber, team.CompCode); err != nil {
		return nil, fmt.Errorf("ensure team row: %w", err)
	}
	if err := s.teamRepo.UpdatePitData(ctx, team); err != nil {
		return nil, fmt.Errorf("update pit data: %w", err)
	}
	return s.teamRepo.GetByNumber(ctx, team.TeamNumber, team.CompCode)
}

// AddHumanPlayerRecord appends one human-player observation. The log is
// append-only; there is no uniqueness constraint to collide with.
func (s *TeamService) AddHumanPlayerRecord(ctx context.Context, record *domain.HumanPlayerRecord) error {
	if record.Comment == "" {
		record.Comment = "None"
	}
	return s.humanRepo.Create(ctx, record)
}

// GetPath returns the raw path trace recorded for one match.
func (s *TeamService) GetPath(ctx context.Context, teamNumber int, compCode string, matchNumber int) ([]byte, error) {
	record, err := s.matchRepo.GetByMatch(ctx, teamNumber, compCode, matchNumber)
	if err != nil {
		return nil, err
	}
	return []byte(record.AutoPath), nil
}
