// Package strategy models tire compounds, degradation and pit stop
// planning for a simulated race.
package strategy

import (
	"fmt"
	"math/rand"

	"github.com/mehmetkahya0/f1-race-prediction/pkg/model"
)

type Compound int

const (
	Soft Compound = iota
	Medium
	Hard
	Intermediate
	FullWet
)

var compoundNames = map[Compound]string{
	Soft:         "soft",
	Medium:       "medium",
	Hard:         "hard",
	Intermediate: "intermediate",
	FullWet:      "wet",
}

func (c Compound) String() string {
	if name, ok := compoundNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Compound(%d)", int(c))
}

// IsSlick reports whether the compound is a dry-weather tire.
func (c Compound) IsSlick() bool {
	return c == Soft || c == Medium || c == Hard
}

// pace offset over the soft baseline, seconds per lap
var basePace = map[Compound]float64{
	Soft:         0.0,
	Medium:       0.4,
	Hard:         0.8,
	Intermediate: 2.0,
	FullWet:      3.0,
}

// degradation per lap under neutral conditions
var baseDegradation = map[Compound]float64{
	Soft:         0.03,
	Medium:       0.022,
	Hard:         0.015,
	Intermediate: 0.025,
	FullWet:      0.02,
}

// TireSet tracks the state of one set of tires over a stint.
type TireSet struct {
	Compound    Compound
	Age         int     // laps run on this set
	Degradation float64 // 0..1+, 1 is fully worn

	track *model.Track
}

func NewTireSet(compound Compound, track *model.Track) *TireSet {
	return &TireSet{Compound: compound, track: track}
}

// Update advances the tire state by one lap and returns the degradation
// added on that lap.
func (t *TireSet) Update(w *model.Weather) float64 {
	rate := baseDegradation[t.Compound]

	trackFactor := float64(t.track.TireWear) / 5

	weatherFactor := 1.0
	if w.IsWet() {
		if t.Compound.IsSlick() {
			// slicks in the rain wear out almost immediately
			weatherFactor = 5.0
		}
	} else if !t.Compound.IsSlick() {
		// rain tires overheat on a dry track
		weatherFactor = 6.0
	}

	tempFactor := 1.0
	switch {
	case w.TrackTemp > 45:
		tempFactor = 1.3
	case w.TrackTemp < 15:
		tempFactor = 0.8
	}

	lapDegradation := rate * trackFactor * weatherFactor * tempFactor
	t.Degradation += lapDegradation
	t.Age++
	return lapDegradation
}

// PaceEffect returns the lap time penalty in seconds for the current
// tire state under the given conditions.
func (t *TireSet) PaceEffect(w *model.Weather) float64 {
	effect := basePace[t.Compound]

	// worn tires fall off a cliff rather than degrade linearly
	effect += 3.0 * t.Degradation * t.Degradation

	if w.IsWet() {
		if t.Compound.IsSlick() {
			effect += 10.0 + w.RainIntensity/10*2
		}
	} else if !t.Compound.IsSlick() {
		effect += 5.0
	}
	return effect
}

// Life is the expected useful life in laps of a compound at the given
// track and conditions.
func Life(c Compound, track *model.Track, w *model.Weather) int {
	switch c {
	case Soft:
		return max(15, 30-track.TireWear)
	case Medium:
		return max(25, 45-track.TireWear)
	case Hard:
		return max(35, 60-track.TireWear)
	case Intermediate:
		if w.Category == model.Mixed {
			return 40
		}
		return 20
	default:
		if w.Category == model.Wet {
			return 60
		}
		return 10
	}
}

// StartingCompound picks the tire a car starts the race on.
func StartingCompound(w *model.Weather, totalLaps int) Compound {
	if w.IsWet() {
		if w.RainIntensity > 50 {
			return FullWet
		}
		return Intermediate
	}
	switch {
	case totalLaps < 40:
		return Soft
	case totalLaps <= 60:
		return Medium
	default:
		return Hard
	}
}

// Stop is one planned pit stop.
type Stop struct {
	Lap      int
	Compound Compound
}

// PlanStops produces a pit stop plan from the compound lives and race
// length. Wet and mixed conditions are special cased.
func PlanStops(track *model.Track, w *model.Weather, totalLaps int) []Stop {
	stops := make([]Stop, 0, 3)

	if w.IsWet() {
		if w.Category == model.Mixed {
			if w.RainIntensity > 50 {
				// start on full wets, switch to inters as the rain eases
				stops = append(stops, Stop{Lap: totalLaps * 4 / 10, Compound: Intermediate})
			} else {
				// start on inters, switch to slicks on a drying track
				stops = append(stops, Stop{Lap: totalLaps / 2, Compound: Soft})
			}
			return stops
		}
		if wetLife := Life(FullWet, track, w); totalLaps > wetLife {
			stops = append(stops, Stop{Lap: wetLife, Compound: FullWet})
		}
		return stops
	}

	covered := 0
	current := StartingCompound(w, totalLaps)
	for covered < totalLaps {
		covered += Life(current, track, w)
		if covered >= totalLaps {
			break
		}
		remaining := totalLaps - covered
		var next Compound
		switch {
		case remaining < Life(Soft, track, w):
			next = Soft
		case remaining < Life(Medium, track, w):
			next = Medium
		default:
			next = Hard
		}
		stops = append(stops, Stop{Lap: covered, Compound: next})
		current = next
	}
	return stops
}

// PitStop is the outcome of one executed pit stop.
type PitStop struct {
	Lap       int
	TimeLost  float64 // total time lost incl. pit lane transit, seconds
	ErrorTime float64
	Error     string
}

// pit lane transit plus a clean stationary stop
const basePitTime = 22.0

// ExecuteStop simulates one pit stop for a crew with the given
// efficiency rating. Error probability and stop time scale with the
// crew rating.
func ExecuteStop(rnd *rand.Rand, team *model.Team, lap int) PitStop {
	crewFactor := 1 - float64(team.PitEfficiency)/100*0.5
	stop := PitStop{
		Lap:      lap,
		TimeLost: basePitTime*(1+crewFactor*0.1) + uniform(rnd, -1, 1),
	}

	errorChance := 0.02 + 0.08*(1-float64(team.PitEfficiency)/100)
	if rnd.Float64() >= errorChance {
		return stop
	}

	severity := rnd.Float64()
	switch {
	case severity < 0.6:
		stop.ErrorTime = uniform(rnd, 1, 3)
		stop.Error = pick(rnd,
			"slow front tire change",
			"brief delay connecting wheel gun",
			"hesitation releasing the car")
	case severity < 0.9:
		stop.ErrorTime = uniform(rnd, 3, 8)
		stop.Error = pick(rnd,
			"problem with wheel gun",
			"tires not ready immediately",
			"traffic in the pit lane")
	default:
		stop.ErrorTime = uniform(rnd, 8, 20)
		stop.Error = pick(rnd,
			"cross-threaded wheel nut",
			"car dropped before tire fitted",
			"unsafe release investigated")
	}
	stop.TimeLost += stop.ErrorTime
	return stop
}

func uniform(rnd *rand.Rand, lower, upper float64) float64 {
	return lower + rnd.Float64()*(upper-lower)
}

func pick(rnd *rand.Rand, choices ...string) string {
	return choices[rnd.Intn(len(choices))]
}
