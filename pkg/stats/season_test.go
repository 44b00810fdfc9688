//nolint:funlen // table driven
package stats

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mehmetkahya0/f1-race-prediction/pkg/model"
)

//nolint:whitespace // can't make both the linter and editor happy
func result(
	driver, team string, finishPos int, points int64, status model.Status,
) *model.RaceResult {
	return &model.RaceResult{
		Driver:    &model.Driver{Name: driver, Team: team},
		Team:      &model.Team{Name: team},
		FinishPos: finishPos,
		Status:    status,
		Points:    decimal.NewFromInt(points),
	}
}

func sampleWeekend() *model.WeekendResult {
	winner := result("Max Verstappen", "Red Bull Racing", 1, 25, model.StatusFinished)
	winner.FastestLap = true
	winner.Points = winner.Points.Add(decimal.NewFromInt(1))
	return &model.WeekendResult{
		Grid: []string{"Charles Leclerc", "Max Verstappen", "Lando Norris"},
		Results: []*model.RaceResult{
			winner,
			result("Charles Leclerc", "Ferrari", 2, 18, model.StatusFinished),
			result("Lando Norris", "McLaren", 3, 15, model.StatusFinished),
			result("Lewis Hamilton", "Ferrari", 4, 0, model.StatusDNF),
		},
	}
}

func TestSeasonStatsUpdate(t *testing.T) {
	s := NewSeasonStats()
	s.Update(sampleWeekend())
	s.Update(sampleWeekend())

	assert.Equal(t, 2, s.Races())

	standings := s.DriverStandings()
	assert.Equal(t, "Max Verstappen", standings[0].Driver)
	assert.True(t, decimal.NewFromInt(52).Equal(standings[0].Points),
		"points = %s", standings[0].Points)
	assert.Equal(t, 2, standings[0].Wins)
	assert.Equal(t, 2, standings[0].Podiums)
	assert.Equal(t, 2, standings[0].FastestLaps)
	assert.Equal(t, 0, standings[0].Poles)

	assert.Equal(t, "Charles Leclerc", standings[1].Driver)
	assert.Equal(t, 2, standings[1].Poles)
	assert.Equal(t, 0, standings[1].Wins)
	assert.Equal(t, 2, standings[1].Podiums)
}

func TestTeamStandings(t *testing.T) {
	s := NewSeasonStats()
	s.Update(sampleWeekend())

	standings := s.TeamStandings()
	assert.Equal(t, "Red Bull Racing", standings[0].Team)
	// both Ferrari results count for the team
	assert.Equal(t, "Ferrari", standings[1].Team)
	assert.True(t, decimal.NewFromInt(18).Equal(standings[1].Points))
	assert.Equal(t, "McLaren", standings[2].Team)
}

func TestStandingsTieBreakOnWins(t *testing.T) {
	s := NewSeasonStats()
	s.Update(&model.WeekendResult{
		Results: []*model.RaceResult{
			result("A", "T1", 1, 18, model.StatusFinished),
			result("B", "T2", 2, 18, model.StatusFinished),
		},
	})

	standings := s.DriverStandings()
	assert.Equal(t, "A", standings[0].Driver)
	assert.Equal(t, "B", standings[1].Driver)
}

func TestMetrics(t *testing.T) {
	winner := result("A", "T1", 1, 25, model.StatusFinished)
	winner.Time = 5000
	second := result("B", "T2", 2, 18, model.StatusFinished)
	second.Time = 5100
	results := []*model.RaceResult{
		winner,
		second,
		result("C", "T3", 3, 0, model.StatusDNF),
		result("D", "T4", 4, 0, model.StatusDSQ),
	}

	metrics := Metrics(results)
	assert.Equal(t, 2, metrics.Finished)
	assert.Equal(t, 1, metrics.DNF)
	assert.Equal(t, 1, metrics.DSQ)
	assert.InDelta(t, 0.25, metrics.DNFRate, 1e-9)
	assert.InDelta(t, 2.0, metrics.AvgGapPct, 1e-9)
}

func TestMetricsEmpty(t *testing.T) {
	metrics := Metrics(nil)
	assert.Zero(t, metrics.Finished)
	assert.Zero(t, metrics.DNFRate)
	assert.Zero(t, metrics.AvgGapPct)
}

func TestQualifyingAnalysis(t *testing.T) {
	analysis := QualifyingAnalysis(sampleWeekend())

	assert.Len(t, analysis, 3)
	assert.Equal(t, "Charles Leclerc", analysis[0].Driver)
	assert.Equal(t, 1, analysis[0].QualiPos)
	assert.Equal(t, 2, analysis[0].RacePos)
	assert.Equal(t, -1, analysis[0].Change)

	assert.Equal(t, "Max Verstappen", analysis[1].Driver)
	assert.Equal(t, 1, analysis[1].Change)
}
