package model

import "fmt"

// Team describes a constructor with heuristic car ratings (1-100).
type Team struct {
	Name        string `json:"name"`
	Constructor string `json:"constructor"`
	Engine      string `json:"engine"`

	Performance     int `json:"performance"`
	Reliability     int `json:"reliability"`
	PitEfficiency   int `json:"pitEfficiency"`
	DevelopmentRate int `json:"developmentRate"`
	Aerodynamics    int `json:"aerodynamics"`
	Power           int `json:"power"`
}

func (t *Team) String() string {
	return fmt.Sprintf("%s (%s)", t.Name, t.Engine)
}

// CarRating combines the individual car attributes into a single rating.
func (t *Team) CarRating() float64 {
	return float64(t.Performance)*0.3 +
		float64(t.Reliability)*0.2 +
		float64(t.Aerodynamics)*0.25 +
		float64(t.Power)*0.25
}
