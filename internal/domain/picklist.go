package domain

import (
	"time"

	"gorm.io/datatypes"
)

// TierCount is the number of ordered draft tiers: no-pick, first, second,
// third, do-not-pick.
const TierCount = 5

// TierLists holds the pick-list tiers in draft order.
type TierLists [][]int

// PickListEntry is the database half of the dual-persisted pick list, one
// logical row per competition. The file half is written by
// picklist.FileStore and is the source of truth for polling clients.
type PickListEntry struct {
	ID       uint   `json:"-" gorm:"primaryKey"`
	CompCode string `json:"compCode" gorm:"size:16;not null;uniqueIndex"`

	NoPick     datatypes.JSON `json:"noPick" gorm:"type:jsonb;default:'[]'"`
	FirstPick  datatypes.JSON `json:"firstPick" gorm:"type:jsonb;default:'[]'"`
	SecondPick datatypes.JSON `json:"secondPick" gorm:"type:jsonb;default:'[]'"`
	ThirdPick  datatypes.JSON `json:"thirdPick" gorm:"type:jsonb;default:'[]'"`
	DNPick     datatypes.JSON `json:"dnPick" gorm:"type:jsonb;default:'[]'"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
