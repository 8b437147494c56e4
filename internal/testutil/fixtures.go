package testutil

import (
	"testing"

	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/domain"
	"gorm.io/gorm"
)

// ScanBuilder creates raw scanner submissions with a builder pattern. The
// defaults form a fully valid scan so tests only spell out what they care
// about.
type ScanBuilder struct {
	fields map[string]any
}

// NewScanBuilder creates a new ScanBuilder with valid defaults
func NewScanBuilder() *ScanBuilder {
	return &ScanBuilder{
		fields: map[string]any{
			"teamNumber":     2073,
			"matchNumber":    1,
			"name":           "Test Scout",
			"comp_code":      "2025test",
			"quantifier":     "Qual",
			"startPos":       2,
			"missed_auto":    0,
			"autoLeave":      1,
			"autoNet":        0,
			"autoProcessor":  0,
			"autoRemoved":    0,
			"autoL1":         1,
			"autoL2":         0,
			"autoL3":         0,
			"autoL4":         0,
			"autoPath":       []any{},
			"telenet":        0,
			"teleProcessor":  0,
			"teleRemoved":    0,
			"teleL1":         2,
			"teleL2":         1,
			"teleL3":         0,
			"teleL4":         0,
			"endClimb":       2,
			"driverRanking":  3,
			"defenseRanking": 3,
			"comment":        "solid cycles",
			"isBroken":       0,
			"isDisabled":     0,
			"isTipped":       0,
		},
	}
}

// WithTeam sets the team number
func (b *ScanBuilder) WithTeam(teamNumber int) *ScanBuilder {
	b.fields["teamNumber"] = teamNumber
	return b
}

// WithMatch sets the match number
func (b *ScanBuilder) WithMatch(matchNumber int) *ScanBuilder {
	b.fields["matchNumber"] = matchNumber
	return b
}

// WithCompCode sets the competition code
func (b *ScanBuilder) WithCompCode(compCode string) *ScanBuilder {
	b.fields["comp_code"] = compCode
	return b
}

// WithQuantifier sets the match type
func (b *ScanBuilder) WithQuantifier(quantifier string) *ScanBuilder {
	b.fields["quantifier"] = quantifier
	return b
}

// With sets an arbitrary field
func (b *ScanBuilder) With(key string, value any) *ScanBuilder {
	b.fields[key] = value
	return b
}

// Without removes a field entirely
func (b *ScanBuilder) Without(key string) *ScanBuilder {
	delete(b.fields, key)
	return b
}

// Build returns the raw submission map
func (b *ScanBuilder) Build() map[string]any {
	raw := make(map[string]any, len(b.fields))
	for k, v := range b.fields {
		raw[k] = v
	}
	return raw
}

// SeedTeam inserts a team row directly
func SeedTeam(t *testing.T, db *gorm.DB, teamNumber int, compCode string, pitScouted bool) *domain.Team {
	t.Helper()

	team := &domain.Team{
		TeamNumber:     teamNumber,
		CompCode:       compCode,
		PitScoutStatus: pitScouted,
	}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("failed to create team: %v", err)
	}
	return team
}
