// Package data holds the fictional 2025 season baseline: drivers, teams
// and the race calendar. Ratings are heuristic inputs for the simulation
// models, not real-world statistics.
package data

import (
	"cmp"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/mehmetkahya0/f1-race-prediction/pkg/model"
)

//nolint:lll // tabular data reads better on one line
var drivers = map[string]*model.Driver{
	"verstappen": {Name: "Max Verstappen", Team: "Red Bull Racing", Number: 1, Nationality: "Dutch", Age: 28, Experience: 11, SkillWet: 95, SkillDry: 98, SkillOvertaking: 95, Consistency: 92, Aggression: 85},
	"tsunoda":    {Name: "Yuki Tsunoda", Team: "Red Bull Racing", Number: 22, Nationality: "Japanese", Age: 25, Experience: 5, SkillWet: 84, SkillDry: 85, SkillOvertaking: 83, Consistency: 80, Aggression: 86},
	"leclerc":    {Name: "Charles Leclerc", Team: "Ferrari", Number: 16, Nationality: "Monegasque", Age: 28, Experience: 8, SkillWet: 92, SkillDry: 95, SkillOvertaking: 90, Consistency: 88, Aggression: 82},
	"hamilton":   {Name: "Lewis Hamilton", Team: "Ferrari", Number: 44, Nationality: "British", Age: 40, Experience: 19, SkillWet: 95, SkillDry: 96, SkillOvertaking: 92, Consistency: 94, Aggression: 75},
	"russell":    {Name: "George Russell", Team: "Mercedes", Number: 63, Nationality: "British", Age: 27, Experience: 6, SkillWet: 90, SkillDry: 93, SkillOvertaking: 88, Consistency: 89, Aggression: 83},
	"antonelli":  {Name: "Kimi Antonelli", Team: "Mercedes", Number: 87, Nationality: "Italian", Age: 19, Experience: 0, SkillWet: 82, SkillDry: 85, SkillOvertaking: 83, Consistency: 80, Aggression: 88},
	"norris":     {Name: "Lando Norris", Team: "McLaren", Number: 4, Nationality: "British", Age: 26, Experience: 7, SkillWet: 91, SkillDry: 94, SkillOvertaking: 90, Consistency: 91, Aggression: 80},
	"piastri":    {Name: "Oscar Piastri", Team: "McLaren", Number: 81, Nationality: "Australian", Age: 24, Experience: 3, SkillWet: 88, SkillDry: 90, SkillOvertaking: 87, Consistency: 86, Aggression: 82},
	"alonso":     {Name: "Fernando Alonso", Team: "Aston Martin", Number: 14, Nationality: "Spanish", Age: 44, Experience: 24, SkillWet: 93, SkillDry: 94, SkillOvertaking: 92, Consistency: 90, Aggression: 88},
	"stroll":     {Name: "Lance Stroll", Team: "Aston Martin", Number: 18, Nationality: "Canadian", Age: 26, Experience: 9, SkillWet: 82, SkillDry: 85, SkillOvertaking: 80, Consistency: 79, Aggression: 75},
	"gasly":      {Name: "Pierre Gasly", Team: "Alpine", Number: 10, Nationality: "French", Age: 29, Experience: 9, SkillWet: 87, SkillDry: 88, SkillOvertaking: 86, Consistency: 85, Aggression: 80},
	"doohan":     {Name: "Jack Doohan", Team: "Alpine", Number: 5, Nationality: "Australian", Age: 21, Experience: 0, SkillWet: 81, SkillDry: 83, SkillOvertaking: 82, Consistency: 78, Aggression: 84},
	"hulkenberg": {Name: "Nico Hulkenberg", Team: "Kick Sauber", Number: 27, Nationality: "German", Age: 38, Experience: 12, SkillWet: 87, SkillDry: 88, SkillOvertaking: 85, Consistency: 86, Aggression: 78},
	"bortoleto":  {Name: "Gabriel Bortoleto", Team: "Kick Sauber", Number: 20, Nationality: "Brazilian", Age: 20, Experience: 0, SkillWet: 80, SkillDry: 83, SkillOvertaking: 82, Consistency: 77, Aggression: 84},
	"lawson":     {Name: "Liam Lawson", Team: "Racing Bulls", Number: 15, Nationality: "New Zealander", Age: 23, Experience: 2, SkillWet: 82, SkillDry: 85, SkillOvertaking: 84, Consistency: 80, Aggression: 84},
	"hadjar":     {Name: "Isack Hadjar", Team: "Racing Bulls", Number: 38, Nationality: "French", Age: 19, Experience: 0, SkillWet: 79, SkillDry: 82, SkillOvertaking: 81, Consistency: 78, Aggression: 85},
	"albon":      {Name: "Alexander Albon", Team: "Williams", Number: 23, Nationality: "Thai", Age: 29, Experience: 7, SkillWet: 86, SkillDry: 88, SkillOvertaking: 85, Consistency: 84, Aggression: 79},
	"sainz":      {Name: "Carlos Sainz", Team: "Williams", Number: 55, Nationality: "Spanish", Age: 31, Experience: 11, SkillWet: 90, SkillDry: 92, SkillOvertaking: 89, Consistency: 90, Aggression: 78},
	"ocon":       {Name: "Esteban Ocon", Team: "Haas", Number: 31, Nationality: "French", Age: 29, Experience: 9, SkillWet: 86, SkillDry: 87, SkillOvertaking: 85, Consistency: 84, Aggression: 82},
	"bearman":    {Name: "Oliver Bearman", Team: "Haas", Number: 50, Nationality: "British", Age: 20, Experience: 1, SkillWet: 83, SkillDry: 86, SkillOvertaking: 84, Consistency: 80, Aggression: 85},
}

// Drivers returns all drivers ordered by descending overall rating.
func Drivers() []*model.Driver {
	all := lo.Values(drivers)
	slices.SortFunc(all, func(a, b *model.Driver) int {
		return cmp.Compare(b.OverallRating(), a.OverallRating())
	})
	return all
}

// DriverByName finds a driver by full or partial name (case insensitive).
func DriverByName(name string) (*model.Driver, bool) {
	name = strings.ToLower(name)
	return lo.Find(lo.Values(drivers), func(d *model.Driver) bool {
		return strings.Contains(strings.ToLower(d.Name), name)
	})
}

// DriversByTeam returns all drivers of the given team.
func DriversByTeam(teamName string) []*model.Driver {
	teamName = strings.ToLower(teamName)
	return lo.Filter(lo.Values(drivers), func(d *model.Driver, _ int) bool {
		return strings.Contains(strings.ToLower(d.Team), teamName)
	})
}
