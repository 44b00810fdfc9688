package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// DbRaceWeekend is the persisted form of a simulated race weekend.
type DbRaceWeekend struct {
	ID       uuid.UUID     `json:"id"`
	Season   int           `json:"season"`
	TrackKey string        `json:"trackKey"`
	Created  time.Time     `json:"created"`
	Data     WeekendResult `json:"data"`
}
