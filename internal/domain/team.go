package domain

import "time"

// Team is one robot at one competition. Rows are created lazily the first
// time a scan or pit submission mentions the team; the descriptive fields
// are only ever filled in by the pit-scouting form.
type Team struct {
	ID         uint   `json:"-" gorm:"primaryKey"`
	TeamNumber int    `json:"teamNumber" gorm:"not null;uniqueIndex:idx_team_event"`
	CompCode   string `json:"compCode" gorm:"size:16;not null;default:'testing';uniqueIndex:idx_team_event"`

	RobotPicture     string `json:"robotPicture"`
	Drivetrain       string `json:"drivetrain" gorm:"size:32"`
	Weight           int    `json:"weight"`
	Length           int    `json:"length"`
	Width            int    `json:"width"`
	IntakeDesign     string `json:"intakeDesign" gorm:"size:50"`
	IntakeLocations  string `json:"intakeLocations" gorm:"size:50"`
	ScoringLocations string `json:"scoringLocations" gorm:"size:50"`
	CagePositions    string `json:"cagePositions" gorm:"size:50"`
	UnderShallow     bool   `json:"underShallow"`
	AlgaePicker      bool   `json:"algaePicker"`
	AutoPositions    string `json:"autoPositions" gorm:"size:50"`
	AutoLeave        string `json:"autoLeave" gorm:"size:3"`
	AutoAlgaeMax     int    `json:"autoAlgaeMax"`
	AutoCoralMax     int    `json:"autoCoralMax"`
	AdditionalInfo   string `json:"additionalInfo" gorm:"size:256"`
	PitScoutStatus   bool   `json:"pitScoutStatus" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
