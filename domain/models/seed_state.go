package models

import "time"

// SeedState marks which master-data seed versions have been applied. The
// marker row is written in the same transaction as the seed rows, so a
// partial seed can never be mistaken for a completed one.
type SeedState struct {
	Version  int `gorm:"primaryKey"`
	SeededAt time.Time
}

func (SeedState) TableName() string {
	return "seed_states"
}
