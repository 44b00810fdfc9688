// Package stats aggregates simulated race results into season standings
// and per-race performance metrics.
package stats

import (
	"slices"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/mehmetkahya0/f1-race-prediction/pkg/model"
)

// SeasonStats accumulates driver and team statistics across races.
// Points are decimals because shortened races award half points.
type SeasonStats struct {
	driverPoints map[string]decimal.Decimal
	teamPoints   map[string]decimal.Decimal
	wins         map[string]int
	podiums      map[string]int
	fastestLaps  map[string]int
	poles        map[string]int
	races        int
}

func NewSeasonStats() *SeasonStats {
	return &SeasonStats{
		driverPoints: make(map[string]decimal.Decimal),
		teamPoints:   make(map[string]decimal.Decimal),
		wins:         make(map[string]int),
		podiums:      make(map[string]int),
		fastestLaps:  make(map[string]int),
		poles:        make(map[string]int),
	}
}

// Update folds one weekend result into the season totals.
func (s *SeasonStats) Update(weekend *model.WeekendResult) {
	s.races++
	if len(weekend.Grid) > 0 {
		s.poles[weekend.Grid[0]]++
	}
	for _, result := range weekend.Results {
		driver := result.Driver.Name
		team := result.Team.Name

		s.driverPoints[driver] = s.driverPoints[driver].Add(result.Points)
		s.teamPoints[team] = s.teamPoints[team].Add(result.Points)

		if result.FinishPos == 1 && result.Status == model.StatusFinished {
			s.wins[driver]++
		}
		if result.FinishPos <= 3 && result.Status == model.StatusFinished {
			s.podiums[driver]++
		}
		if result.FastestLap {
			s.fastestLaps[driver]++
		}
	}
}

func (s *SeasonStats) Races() int { return s.races }

type DriverStanding struct {
	Driver      string
	Points      decimal.Decimal
	Wins        int
	Podiums     int
	FastestLaps int
	Poles       int
}

// DriverStandings returns the championship order, points then wins.
func (s *SeasonStats) DriverStandings() []DriverStanding {
	standings := lo.MapToSlice(s.driverPoints,
		func(driver string, points decimal.Decimal) DriverStanding {
			return DriverStanding{
				Driver:      driver,
				Points:      points,
				Wins:        s.wins[driver],
				Podiums:     s.podiums[driver],
				FastestLaps: s.fastestLaps[driver],
				Poles:       s.poles[driver],
			}
		})
	slices.SortFunc(standings, func(a, b DriverStanding) int {
		if c := b.Points.Cmp(a.Points); c != 0 {
			return c
		}
		return b.Wins - a.Wins
	})
	return standings
}

type TeamStanding struct {
	Team   string
	Points decimal.Decimal
}

// TeamStandings returns the constructor championship order.
func (s *SeasonStats) TeamStandings() []TeamStanding {
	standings := lo.MapToSlice(s.teamPoints,
		func(team string, points decimal.Decimal) TeamStanding {
			return TeamStanding{Team: team, Points: points}
		})
	slices.SortFunc(standings, func(a, b TeamStanding) int {
		return b.Points.Cmp(a.Points)
	})
	return standings
}

// RaceMetrics summarizes a single race classification.
type RaceMetrics struct {
	Finished int
	DNF      int
	DSQ      int
	DNFRate  float64
	// mean gap to the winner among finishers, percent of winner time
	AvgGapPct float64
}

func Metrics(results []*model.RaceResult) RaceMetrics {
	metrics := RaceMetrics{
		Finished: lo.CountBy(results, func(r *model.RaceResult) bool {
			return r.Status == model.StatusFinished
		}),
		DNF: lo.CountBy(results, func(r *model.RaceResult) bool {
			return r.Status == model.StatusDNF
		}),
		DSQ: lo.CountBy(results, func(r *model.RaceResult) bool {
			return r.Status == model.StatusDSQ
		}),
	}
	if len(results) > 0 {
		metrics.DNFRate = float64(metrics.DNF) / float64(len(results))
	}

	times := lo.FilterMap(results, func(r *model.RaceResult, _ int) (float64, bool) {
		return r.Time, r.Status == model.StatusFinished
	})
	if len(times) > 1 {
		winner := times[0]
		gaps := lo.Map(times[1:], func(t float64, _ int) float64 {
			return (t - winner) / winner * 100
		})
		metrics.AvgGapPct = lo.Sum(gaps) / float64(len(gaps))
	}
	return metrics
}

// QualiRaceDelta compares one driver's grid slot with the race outcome.
type QualiRaceDelta struct {
	Driver   string
	QualiPos int
	RacePos  int
	Change   int // positive means places gained
	Status   model.Status
}

// QualifyingAnalysis pairs grid positions with finishing positions.
func QualifyingAnalysis(weekend *model.WeekendResult) []QualiRaceDelta {
	byDriver := lo.KeyBy(weekend.Results, func(r *model.RaceResult) string {
		return r.Driver.Name
	})
	analysis := make([]QualiRaceDelta, 0, len(weekend.Grid))
	for i, name := range weekend.Grid {
		result, ok := byDriver[name]
		if !ok {
			continue
		}
		analysis = append(analysis, QualiRaceDelta{
			Driver:   name,
			QualiPos: i + 1,
			RacePos:  result.FinishPos,
			Change:   (i + 1) - result.FinishPos,
			Status:   result.Status,
		})
	}
	return analysis
}
