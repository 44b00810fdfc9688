//nolint:funlen // table driven
package strategy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mehmetkahya0/f1-race-prediction/pkg/model"
)

func dryWeather() *model.Weather {
	return &model.Weather{Category: model.Dry, Temperature: 25, TrackTemp: 35}
}

func wetWeather(intensity float64) *model.Weather {
	// wet sampling puts the track just above ambient, never at zero
	return &model.Weather{
		Category: model.Wet, RainIntensity: intensity,
		Temperature: 18, TrackTemp: 20,
	}
}

func TestStartingCompound(t *testing.T) {
	tests := []struct {
		name      string
		weather   *model.Weather
		totalLaps int
		want      Compound
	}{
		{name: "short dry race", weather: dryWeather(), totalLaps: 39, want: Soft},
		{name: "medium dry race", weather: dryWeather(), totalLaps: 60, want: Medium},
		{name: "long dry race", weather: dryWeather(), totalLaps: 70, want: Hard},
		{name: "light rain", weather: wetWeather(30), totalLaps: 50, want: Intermediate},
		{name: "heavy rain", weather: wetWeather(70), totalLaps: 50, want: FullWet},
		{
			name:      "damp mixed",
			weather:   &model.Weather{Category: model.Mixed, RainIntensity: 40},
			totalLaps: 50,
			want:      Intermediate,
		},
		{
			name:      "drying mixed",
			weather:   &model.Weather{Category: model.Mixed, RainIntensity: 20},
			totalLaps: 50,
			want:      Medium,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartingCompound(tt.weather, tt.totalLaps))
		})
	}
}

func TestTireSetUpdate(t *testing.T) {
	track := &model.Track{TireWear: 5} // trackFactor 1.0
	t.Run("slick in the dry", func(t *testing.T) {
		tires := NewTireSet(Soft, track)
		got := tires.Update(dryWeather())
		assert.InDelta(t, 0.03, got, 1e-9)
		assert.Equal(t, 1, tires.Age)
	})
	t.Run("slick in the rain", func(t *testing.T) {
		tires := NewTireSet(Soft, track)
		got := tires.Update(wetWeather(60))
		assert.InDelta(t, 0.15, got, 1e-9)
	})
	t.Run("rain tire on dry track", func(t *testing.T) {
		tires := NewTireSet(Intermediate, track)
		got := tires.Update(dryWeather())
		assert.InDelta(t, 0.15, got, 1e-9)
	})
	t.Run("cold track slows wear", func(t *testing.T) {
		tires := NewTireSet(Soft, track)
		cold := wetWeather(60)
		cold.TrackTemp = 10
		got := tires.Update(cold)
		assert.InDelta(t, 0.12, got, 1e-9)
	})
	t.Run("hot track accelerates wear", func(t *testing.T) {
		tires := NewTireSet(Soft, track)
		hot := dryWeather()
		hot.TrackTemp = 50
		got := tires.Update(hot)
		assert.InDelta(t, 0.039, got, 1e-9)
	})
	t.Run("degradation accumulates", func(t *testing.T) {
		tires := NewTireSet(Hard, track)
		for i := 0; i < 10; i++ {
			tires.Update(dryWeather())
		}
		assert.Equal(t, 10, tires.Age)
		assert.InDelta(t, 0.15, tires.Degradation, 1e-9)
	})
}

func TestPaceEffect(t *testing.T) {
	track := &model.Track{TireWear: 5}
	t.Run("fresh soft is the baseline", func(t *testing.T) {
		tires := NewTireSet(Soft, track)
		assert.InDelta(t, 0.0, tires.PaceEffect(dryWeather()), 1e-9)
	})
	t.Run("worn tires fall off", func(t *testing.T) {
		tires := NewTireSet(Soft, track)
		tires.Degradation = 1.0
		assert.InDelta(t, 3.0, tires.PaceEffect(dryWeather()), 1e-9)
	})
	t.Run("slicks in heavy rain are undrivable", func(t *testing.T) {
		tires := NewTireSet(Soft, track)
		effect := tires.PaceEffect(wetWeather(80))
		assert.InDelta(t, 26.0, effect, 1e-9)
	})
	t.Run("inters on a dry track overheat", func(t *testing.T) {
		tires := NewTireSet(Intermediate, track)
		assert.InDelta(t, 7.0, tires.PaceEffect(dryWeather()), 1e-9)
	})
}

func TestPlanStops(t *testing.T) {
	track := &model.Track{TireWear: 7}

	t.Run("dry race covers the distance", func(t *testing.T) {
		totalLaps := 70
		stops := PlanStops(track, dryWeather(), totalLaps)
		assert.NotEmpty(t, stops)
		last := 0
		for _, stop := range stops {
			assert.Greater(t, stop.Lap, last)
			assert.Less(t, stop.Lap, totalLaps)
			assert.True(t, stop.Compound.IsSlick())
			last = stop.Lap
		}
	})

	t.Run("long wet race refreshes the wets", func(t *testing.T) {
		stops := PlanStops(track, wetWeather(90), 70)
		assert.Equal(t, []Stop{{Lap: 60, Compound: FullWet}}, stops)
	})

	t.Run("short wet race runs through", func(t *testing.T) {
		stops := PlanStops(track, wetWeather(90), 50)
		assert.Empty(t, stops)
	})

	t.Run("heavy mixed switches to inters", func(t *testing.T) {
		w := &model.Weather{Category: model.Mixed, RainIntensity: 60}
		stops := PlanStops(track, w, 50)
		assert.Equal(t, []Stop{{Lap: 20, Compound: Intermediate}}, stops)
	})

	t.Run("drying mixed switches to slicks", func(t *testing.T) {
		w := &model.Weather{Category: model.Mixed, RainIntensity: 40}
		stops := PlanStops(track, w, 50)
		assert.Equal(t, []Stop{{Lap: 25, Compound: Soft}}, stops)
	})

	t.Run("light mixed is planned like a dry race", func(t *testing.T) {
		w := &model.Weather{Category: model.Mixed, RainIntensity: 20}
		stops := PlanStops(track, w, 60)
		for _, stop := range stops {
			assert.True(t, stop.Compound.IsSlick())
		}
	})
}

func TestExecuteStop(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	team := &model.Team{Name: "Test", PitEfficiency: 90}
	for i := 0; i < 500; i++ {
		stop := ExecuteStop(rnd, team, 20)
		assert.Equal(t, 20, stop.Lap)
		// clean stop is around basePitTime, errors add up to 20s
		assert.Greater(t, stop.TimeLost, 19.0)
		assert.Less(t, stop.TimeLost, 45.0)
		if stop.Error != "" {
			assert.Greater(t, stop.ErrorTime, 0.0)
		} else {
			assert.Zero(t, stop.ErrorTime)
		}
	}
}

func TestExecuteStopErrorRate(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	const runs = 20000
	count := func(eff int) float64 {
		team := &model.Team{PitEfficiency: eff}
		errors := 0
		for i := 0; i < runs; i++ {
			if stop := ExecuteStop(rnd, team, 1); stop.Error != "" {
				errors++
			}
		}
		return float64(errors) / runs
	}
	// 0.02 + 0.08 * (1 - eff/100)
	assert.InDelta(t, 0.028, count(90), 0.01)
	assert.InDelta(t, 0.06, count(50), 0.01)
}
