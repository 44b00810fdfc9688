//nolint:funlen // table driven
package race

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mehmetkahya0/f1-race-prediction/pkg/data"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/model"
)

func testTrack() *model.Track {
	track, _ := data.TrackByName("bahrain")
	return track
}

func dryWeather() *model.Weather {
	return &model.Weather{
		Category: model.Dry, Temperature: 25, Humidity: 35,
		WindSpeed: 15, TrackTemp: 40,
	}
}

func testSimulator(seed int64, w *model.Weather) *Simulator {
	return NewSimulator(testTrack(), data.Drivers(), data.Teams(), w,
		WithRand(rand.New(rand.NewSource(seed))))
}

func TestSimulateQualifying(t *testing.T) {
	sim := testSimulator(42, dryWeather())
	grid := sim.SimulateQualifying()

	assert.Len(t, grid, len(data.Drivers()))
	seen := make(map[string]bool)
	for _, d := range grid {
		assert.False(t, seen[d.Name], "driver %s appears twice", d.Name)
		seen[d.Name] = true
	}
}

func TestSimulateRace(t *testing.T) {
	sim := testSimulator(42, dryWeather())
	result := sim.SimulateRace()

	drivers := data.Drivers()
	assert.Len(t, result.Results, len(drivers))
	assert.Len(t, result.Grid, len(drivers))
	assert.False(t, result.RedFlagged)
	assert.Equal(t, testTrack().Laps, result.LapsRun)

	fastestLaps := 0
	finisherSeen := false
	retiredSeen := false
	for i, r := range result.Results {
		assert.Equal(t, i+1, r.FinishPos)
		assert.GreaterOrEqual(t, r.StartPos, 1)
		assert.LessOrEqual(t, r.StartPos, len(drivers))
		if r.FastestLap {
			fastestLaps++
		}
		switch r.Status {
		case model.StatusFinished:
			finisherSeen = true
			// retirements are always classified behind finishers
			assert.False(t, retiredSeen, "finisher %s behind a retirement", r.Driver.Name)
			assert.Equal(t, testTrack().Laps, r.Laps)
		case model.StatusDNF, model.StatusDSQ:
			retiredSeen = true
			assert.True(t, r.Points.IsZero())
			assert.NotEqual(t, model.IncidentNone, r.Incident)
			assert.NotEmpty(t, r.IncidentText)
		}
	}
	assert.True(t, finisherSeen)
	assert.Equal(t, 1, fastestLaps)

	// finishers ordered by race time
	prev := 0.0
	for _, r := range result.Results {
		if r.Status != model.StatusFinished {
			break
		}
		assert.GreaterOrEqual(t, r.Time, prev)
		prev = r.Time
	}
}

func TestSimulateRaceReproducible(t *testing.T) {
	a := testSimulator(4711, dryWeather()).SimulateRace()
	b := testSimulator(4711, dryWeather()).SimulateRace()

	if diff := cmp.Diff(a.Grid, b.Grid); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
	for i := range a.Results {
		assert.Equal(t, a.Results[i].Driver.Name, b.Results[i].Driver.Name)
		assert.InDelta(t, a.Results[i].Time, b.Results[i].Time, 1e-9)
	}
}

func TestWithGridSkipsQualifying(t *testing.T) {
	drivers := data.Drivers()
	sim := NewSimulator(testTrack(), drivers, data.Teams(), dryWeather(),
		WithRand(rand.New(rand.NewSource(1))),
		WithGrid(drivers))
	result := sim.SimulateRace()

	for i, d := range drivers {
		assert.Equal(t, d.Name, result.Grid[i])
	}
	for _, r := range result.Results {
		// start position must reflect the injected grid
		assert.Equal(t, r.Driver.Name, drivers[r.StartPos-1].Name)
	}
}

func TestPoints(t *testing.T) {
	tests := []struct {
		name       string
		position   int
		fastestLap bool
		half       bool
		want       string
	}{
		{name: "winner", position: 1, want: "25"},
		{name: "winner with fastest lap", position: 1, fastestLap: true, want: "26"},
		{name: "tenth", position: 10, want: "1"},
		{name: "tenth with fastest lap", position: 10, fastestLap: true, want: "2"},
		{name: "eleventh", position: 11, want: "0"},
		{name: "eleventh with fastest lap", position: 11, fastestLap: true, want: "0"},
		{name: "winner half points", position: 1, half: true, want: "12.5"},
		{name: "third half points", position: 3, half: true, want: "7.5"},
		{name: "tenth half points", position: 10, half: true, want: "0.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := decimal.NewFromString(tt.want)
			assert.NoError(t, err)
			got := points(tt.position, tt.fastestLap, tt.half)
			assert.True(t, want.Equal(got), "points = %s, want %s", got, want)
		})
	}
}

func TestStatus(t *testing.T) {
	assert.Equal(t, model.StatusFinished, status(&carState{active: true}))
	assert.Equal(t, model.StatusDNF,
		status(&carState{incident: model.IncidentCollision}))
	assert.Equal(t, model.StatusDSQ,
		status(&carState{incident: model.IncidentPenalty}))
}

func TestClassifyHalfPoints(t *testing.T) {
	drivers := data.Drivers()[:3]
	sim := NewSimulator(testTrack(), drivers, data.Teams(), dryWeather(),
		WithRand(rand.New(rand.NewSource(1))),
		WithGrid(drivers))

	totalLaps := testTrack().Laps
	stopped := totalLaps / 2 // well below the full points distance
	states := []*carState{
		{driver: drivers[0], team: sim.team(drivers[0]), active: true, time: 3000, laps: stopped},
		{driver: drivers[1], team: sim.team(drivers[1]), active: true, time: 3010, laps: stopped},
		{driver: drivers[2], team: sim.team(drivers[2]), active: false, laps: 5,
			incident: model.IncidentMechanical, text: "engine failure"},
	}

	result := sim.classify(states, states[0], true, stopped)

	assert.True(t, result.RedFlagged)
	assert.Equal(t, stopped, result.LapsRun)
	// 25 + 1 for fastest lap, halved
	assert.True(t, decimal.NewFromInt(13).Equal(result.Results[0].Points),
		"winner points = %s", result.Results[0].Points)
	assert.True(t, decimal.NewFromInt(9).Equal(result.Results[1].Points),
		"runner up points = %s", result.Results[1].Points)
	assert.True(t, result.Results[2].Points.IsZero())
	assert.Equal(t, model.StatusDNF, result.Results[2].Status)
}
