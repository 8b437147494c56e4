package domain

import "time"

// HumanPlayerRecord is an append-only note about a team's human player in
// one match. No uniqueness constraint; every submission is a new row.
type HumanPlayerRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TeamNumber  int       `json:"teamNumber" gorm:"not null"`
	CompCode    string    `json:"compCode" gorm:"size:16;not null;default:'testing'"`
	MatchNumber int       `json:"matchNumber" gorm:"default:0"`
	Comment     string    `json:"comment" gorm:"size:1000"`
	CreatedAt   time.Time `json:"createdAt"`
}
