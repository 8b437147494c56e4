package service

import (
	"context"

	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/picklist"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/repository"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/tba"
)

// ScheduleProvider is the slice of the TBA client the services use, kept as
// an interface so tests can stub the external API.
type ScheduleProvider interface {
	GetEventTeams(ctx context.Context, eventKey string) ([]tba.Team, error)
	GetMatch(ctx context.Context, eventKey, matchID string) (*tba.MatchAlliances, error)
}

type Services struct {
	Ingest   *IngestService
	Stats    *StatsService
	PickList *PickListService
	Team     *TeamService
}

func NewServices(repos *repository.Repositories, files *picklist.FileStore, schedule ScheduleProvider) *Services {
	return &Services{
		Ingest:   NewIngestService(repos.MatchRecord),
		Stats:    NewStatsService(repos.MatchRecord, repos.Team, schedule),
		PickList: NewPickListService(files, repos.PickList),
		Team:     NewTeamService(repos.Team, repos.MatchRecord, repos.HumanPlayer, schedule),
	}
}
