package model

import "fmt"

// Track describes a circuit of the calendar. The 1-10 scaled attributes
// feed the strategy and race models.
type Track struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	City      string  `json:"city"`
	LengthKm  float64 `json:"lengthKm"`
	Laps      int     `json:"laps"`
	Corners   int     `json:"corners"`
	Straights int     `json:"straights"`
	TopSpeed  int     `json:"topSpeed"` // km/h

	Downforce            int `json:"downforce"`
	TireWear             int `json:"tireWear"`
	BrakingSeverity      int `json:"brakingSeverity"`
	OvertakingDifficulty int `json:"overtakingDifficulty"`

	Date string `json:"date"` // e.g. "March 2, 2025"
}

func (t *Track) String() string {
	return fmt.Sprintf("%s (%s)", t.Name, t.Country)
}

// RaceDistance is the total race distance in km.
func (t *Track) RaceDistance() float64 {
	return t.LengthKm * float64(t.Laps)
}

func (t *Track) Type() string {
	switch {
	case t.Downforce >= 8:
		return "High Downforce"
	case t.Downforce <= 4:
		return "Low Downforce"
	default:
		return "Medium Downforce"
	}
}
