package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Incident classifies what ended (or compromised) a driver's race.
type Incident int

const (
	IncidentNone Incident = iota
	IncidentMechanical
	IncidentDriverError
	IncidentCollision
	IncidentPuncture
	IncidentWeather
	IncidentPenalty
	IncidentPitError
)

var incidentNames = map[Incident]string{
	IncidentNone:        "none",
	IncidentMechanical:  "mechanical failure",
	IncidentDriverError: "driver error",
	IncidentCollision:   "collision",
	IncidentPuncture:    "puncture",
	IncidentWeather:     "weather related",
	IncidentPenalty:     "penalty",
	IncidentPitError:    "pit error",
}

func (i Incident) String() string {
	if name, ok := incidentNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Incident(%d)", int(i))
}

type Status string

const (
	StatusFinished Status = "Finished"
	StatusDNF      Status = "DNF"
	StatusDSQ      Status = "DSQ"
)

// RaceResult is the final classification of one driver.
type RaceResult struct {
	Driver       *Driver         `json:"driver"`
	Team         *Team           `json:"team"`
	StartPos     int             `json:"startPos"`
	FinishPos    int             `json:"finishPos"`
	Time         float64         `json:"time"` // cumulative race time in seconds
	Laps         int             `json:"laps"` // laps completed
	Status       Status          `json:"status"`
	FastestLap   bool            `json:"fastestLap"`
	Incident     Incident        `json:"incident"`
	IncidentText string          `json:"incidentText,omitempty"`
	Points       decimal.Decimal `json:"points"`
}

func (r *RaceResult) String() string {
	if r.Status == StatusFinished {
		return fmt.Sprintf("%d. %s (%s) - %s",
			r.FinishPos, r.Driver.Name, r.Team.Name, FormatRaceTime(r.Time))
	}
	return fmt.Sprintf("%d. %s (%s) - %s",
		r.FinishPos, r.Driver.Name, r.Team.Name, r.Status)
}

// FormatRaceTime renders seconds as m:ss.mmm (or h:mm:ss.mmm).
func FormatRaceTime(seconds float64) string {
	total := int(seconds)
	millis := int((seconds - float64(total)) * 1000)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d.%03d", hours, minutes, secs, millis)
	}
	return fmt.Sprintf("%d:%02d.%03d", minutes, secs, millis)
}

// WeekendResult bundles everything a simulated race weekend produced.
type WeekendResult struct {
	Track      *Track        `json:"track"`
	Weather    *Weather      `json:"weather"`
	Grid       []string      `json:"grid"` // driver names in qualifying order
	Results    []*RaceResult `json:"results"`
	RedFlagged bool          `json:"redFlagged"`
	LapsRun    int           `json:"lapsRun"` // laps completed before a stoppage
}
