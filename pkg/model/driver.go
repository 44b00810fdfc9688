package model

import "fmt"

// Driver describes a race driver with heuristic skill ratings (1-100).
type Driver struct {
	Name        string `json:"name"`
	Team        string `json:"team"`
	Number      int    `json:"number"`
	Nationality string `json:"nationality"`
	Age         int    `json:"age"`
	Experience  int    `json:"experience"` // years in the championship

	SkillWet        int `json:"skillWet"`
	SkillDry        int `json:"skillDry"`
	SkillOvertaking int `json:"skillOvertaking"`
	Consistency     int `json:"consistency"`
	Aggression      int `json:"aggression"`
}

func (d *Driver) String() string {
	return fmt.Sprintf("%s (%s)", d.Name, d.Team)
}

// OverallRating combines the individual skills into a single rating.
func (d *Driver) OverallRating() float64 {
	return float64(d.SkillDry)*0.35 +
		float64(d.SkillWet)*0.15 +
		float64(d.SkillOvertaking)*0.20 +
		float64(d.Consistency)*0.20 +
		float64(d.Experience)*0.10
}
