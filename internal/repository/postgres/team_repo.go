package postgres

import (
	"context"
	"errors"

	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/domain"
	"gorm.io/gorm"
)

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *teamRepository {
	return &teamRepository{db: db}
}

// GetOrCreate ensures a row exists for (teamNumber, compCode). An existing
// team is returned untouched; pit-scouting data is never overwritten here.
func (r *teamRepository) GetOrCreate(ctx context.Context, teamNumber int, compCode string) (*domain.Team, error) {
	team := domain.Team{TeamNumber: teamNumber, CompCode: compCode}
	err := r.db.WithContext(ctx).
		Where("team_number = ? AND comp_code = ?", teamNumber, compCode).
		FirstOrCreate(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetByNumber(ctx context.Context, teamNumber int, compCode string) (*domain.Team, error) {
	var team domain.Team
	err := r.db.WithContext(ctx).
		First(&team, "team_number = ? AND comp_code = ?", teamNumber, compCode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrTeamNotFound
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetByEvent(ctx context.Context, compCode string) ([]*domain.Team, error) {
	var teams []*domain.Team
	err := r.db.WithContext(ctx).
		Where("comp_code = ?", compCode).
		Order("team_number ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// UpdatePitData overwrites the descriptive fields from the pit-scouting form
// and marks the team pit scouted. Zero values are written too; the form
// always submits the full field set.
func (r *teamRepository) UpdatePitData(ctx context.Context, team *domain.Team) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Team{}).
		Where("team_number = ? AND comp_code = ?", team.TeamNumber, team.CompCode).
		Select("robot_picture", "drivetrain", "weight", "length", "width",
			"intake_design", "intake_locations", "scoring_locations", "cage_positions",
			"under_shallow", "algae_picker", "auto_positions", "auto_leave",
			"auto_algae_max", "auto_coral_max", "additional_info", "pit_scout_status").
		Updates(map[string]any{
			"robot_picture":     team.RobotPicture,
			"drivetrain":        team.Drivetrain,
			"weight":            team.Weight,
			"length":            team.Length,
			"width":             team.Width,
			"intake_design":     team.IntakeDesign,
			"intake_locations":  team.IntakeLocations,
			"scoring_locations": team.ScoringLocations,
			"cage_positions":    team.CagePositions,
			"under_shallow":     team.UnderShallow,
			"algae_picker":      team.AlgaePicker,
			"auto_positions":    team.AutoPositions,
			"auto_leave":        team.AutoLeave,
			"auto_algae_max":    team.AutoAlgaeMax,
			"auto_coral_max":    team.AutoCoralMax,
			"additional_info":   team.AdditionalInfo,
			"pit_scout_status":  true,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTeamNotFound
	}
	return nil
}
