package postgres

import (
	"time"

	"gorm.io/datatypes"
)

/*
 * 'Snapshot' stores the whole application document as one jsonb row.
 * Version backs the optimistic check done on every save.
 */
type Snapshot struct {
	Key       string         `gorm:"primaryKey;size:100;not null"`
	Data      datatypes.JSON `gorm:"type:jsonb;not null"`
	Version   int64          `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName pins the table name regardless of naming strategy
func (Snapshot) TableName() string {
	return "snapshots"
}
