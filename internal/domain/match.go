package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Quantifier string

const (
	QuantifierQualification Quantifier = "Qual"
	QuantifierPlayoff       Quantifier = "Playoff"
	QuantifierPractice      Quantifier = "Prac"
)

// OfficialMatchCeiling excludes synthetic/test match numbers from real
// statistics. Scouts use match numbers >= 100 for scrimmages and radio
// checks; those rows are stored but never aggregated.
const OfficialMatchCeiling = 100

// MatchRecord is one scout's observation of one team in one match. At most
// one row exists per (team_number, comp_code, match_number); resubmitting
// the same key overwrites every non-key field.
type MatchRecord struct {
	ID          uint       `json:"-" gorm:"primaryKey"`
	TeamNumber  int        `json:"teamNumber" gorm:"not null;uniqueIndex:idx_team_event_match"`
	CompCode    string     `json:"compCode" gorm:"size:16;not null;default:'testing';uniqueIndex:idx_team_event_match"`
	MatchNumber int        `json:"matchNumber" gorm:"not null;uniqueIndex:idx_team_event_match"`
	Quantifier  Quantifier `json:"quantifier" gorm:"size:10;not null;default:'Prac'"`
	ScoutName   string     `json:"scoutName" gorm:"size:32"`

	StartPos   int `json:"startPos"`
	MissedAuto int `json:"missedAuto"`

	AutoLeave     int            `json:"autoLeave"`
	AutoNet       int            `json:"autoNet"`
	AutoProcessor int            `json:"autoProcessor"`
	AutoRemoved   int            `json:"autoRemoved"`
	AutoL1        int            `json:"autoL1"`
	AutoL2        int            `json:"autoL2"`
	AutoL3        int            `json:"autoL3"`
	AutoL4        int            `json:"autoL4"`
	AutoPath      datatypes.JSON `json:"autoPath" gorm:"type:jsonb;default:'[]'"`

	TeleNet       int `json:"teleNet"`
	TeleProcessor int `json:"teleProcessor"`
	TeleRemoved   int `json:"teleRemoved"`
	TeleL1        int `json:"teleL1"`
	TeleL2        int `json:"teleL2"`
	TeleL3        int `json:"teleL3"`
	TeleL4        int `json:"teleL4"`

	EndClimb       int    `json:"endClimb"`
	DriverRanking  int    `json:"driverRanking"`
	DefenseRanking int    `json:"defenseRanking"`
	Comment        string `json:"comment" gorm:"size:256"`
	IsBroken       int    `json:"isBroken"`
	IsDisabled     int    `json:"isDisabled"`
	IsTipped       int    `json:"isTipped"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Usable reports whether the record carries the identity fields the ingest
// engine needs. Unusable records are skipped, not rejected, so one bad scan
// in a batch cannot sink its siblings.
func (m *MatchRecord) Usable() bool {
	return m.TeamNumber > 0 && m.MatchNumber > 0 && m.CompCode != "" && m.ScoutName != ""
}
