// Package race simulates qualifying and the race itself for one
// weekend. Driver skill, car rating, tire state and the generated
// weather all feed the lap time and incident models.
package race

import (
	"cmp"
	"math/rand"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mehmetkahya0/f1-race-prediction/log"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/model"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/simulation/strategy"
)

var pointsTable = []int64{25, 18, 15, 12, 10, 8, 6, 4, 2, 1}

// races stopped before this fraction of the distance pay half points
const fullPointsDistance = 0.75

// per-lap chance of a stoppage once rain intensity exceeds 80
const redFlagChance = 0.008

type Simulator struct {
	track   *model.Track
	weather *model.Weather
	drivers []*model.Driver
	teams   map[string]*model.Team // keyed by team name

	rnd    *rand.Rand
	logger *log.Logger

	grid []*model.Driver
}

type Option func(*Simulator)

// WithRand sets the random source, enabling seeded reproducible runs.
func WithRand(rnd *rand.Rand) Option {
	return func(s *Simulator) { s.rnd = rnd }
}

func WithGrid(grid []*model.Driver) Option {
	return func(s *Simulator) { s.grid = grid }
}

//nolint:whitespace // can't make both editor and linter happy
func NewSimulator(
	track *model.Track,
	drivers []*model.Driver,
	teams []*model.Team,
	weather *model.Weather,
	opts ...Option,
) *Simulator {
	ret := &Simulator{
		track:   track,
		weather: weather,
		drivers: drivers,
		teams:   make(map[string]*model.Team, len(teams)),
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:  log.Default().Named("simulation.race"),
	}
	for _, t := range teams {
		ret.teams[t.Name] = t
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (s *Simulator) team(d *model.Driver) *model.Team {
	return s.teams[d.Team]
}

// baseLapTime approximates the average lap time from the track length.
func (s *Simulator) baseLapTime() float64 {
	return 90 + (s.track.LengthKm-5)*5
}

// SimulateQualifying runs a three-lap qualifying session per driver and
// returns the grid in starting order.
func (s *Simulator) SimulateQualifying() []*model.Driver {
	type performance struct {
		driver *model.Driver
		best   float64
	}
	performances := make([]performance, 0, len(s.drivers))

	for _, driver := range s.drivers {
		team := s.team(driver)

		lapTime := s.baseLapTime() +
			5*(1-driver.OverallRating()/100) +
			3*(1-team.CarRating()/100) +
			s.uniform(-0.5, 0.5) + // track specialization
			s.qualiWeatherImpact(driver) +
			s.uniform(-0.2, 0.3)

		// three runs, best counts
		best := lapTime * s.uniform(1.001, 1.01)
		best = min(best, lapTime*s.uniform(0.995, 1.005))
		best = min(best, lapTime*s.uniform(0.99, 1.005))

		performances = append(performances, performance{driver: driver, best: best})
	}

	slices.SortFunc(performances, func(a, b performance) int {
		return cmp.Compare(a.best, b.best)
	})
	s.grid = make([]*model.Driver, len(performances))
	for i, p := range performances {
		s.grid[i] = p.driver
	}
	s.logger.Debug("qualifying complete",
		log.String("track", s.track.Name),
		log.String("pole", s.grid[0].Name))
	return s.grid
}

func (s *Simulator) qualiWeatherImpact(driver *model.Driver) float64 {
	if s.weather.IsWet() {
		return 2 * (1 - float64(driver.SkillWet)/100)
	}
	return 0.5 * (1 - float64(driver.SkillDry)/100)
}

// racePace is the representative clean-air lap time of a driver.
func (s *Simulator) racePace(driver *model.Driver, team *model.Team) float64 {
	pace := s.baseLapTime() +
		3*(1-driver.OverallRating()/100) +
		2.5*(1-team.CarRating()/100) +
		s.uniform(-0.2, 0.2)
	if s.weather.IsWet() {
		pace += 1.5 * (1 - float64(driver.SkillWet)/100)
	} else {
		pace += 0.5 * (1 - float64(driver.SkillDry)/100)
	}
	return pace
}

type carState struct {
	driver   *model.Driver
	team     *model.Team
	active   bool
	time     float64
	laps     int
	position int
	incident model.Incident
	text     string
	tires    *strategy.TireSet
	plan     []strategy.Stop
}

// SimulateRace runs the race lap by lap and returns the weekend result.
// Qualifying is simulated first if no grid exists yet.
func (s *Simulator) SimulateRace() *model.WeekendResult {
	if len(s.grid) == 0 {
		s.SimulateQualifying()
	}

	totalLaps := s.track.Laps
	states := make([]*carState, len(s.grid))
	for i, driver := range s.grid {
		states[i] = &carState{
			driver:   driver,
			team:     s.team(driver),
			active:   true,
			position: i + 1,
			tires:    strategy.NewTireSet(strategy.StartingCompound(s.weather, totalLaps), s.track),
			plan:     strategy.PlanStops(s.track, s.weather, totalLaps),
		}
	}

	fastestBy := (*carState)(nil)
	fastestTime := 0.0
	redFlagged := false
	lapsRun := totalLaps

	for lap := 1; lap <= totalLaps; lap++ {
		for _, st := range states {
			if !st.active {
				continue
			}
			lapTime := s.lapTime(st, lap)

			if fastestBy == nil || lapTime < fastestTime {
				fastestBy = st
				fastestTime = lapTime
			}
			st.time += lapTime
			st.laps = lap

			if incident, text := s.rollIncident(st, lap, totalLaps); incident != model.IncidentNone {
				st.active = false
				st.incident = incident
				st.text = text
				s.logger.Debug("retirement",
					log.Int("lap", lap),
					log.String("driver", st.driver.Name),
					log.Stringer("incident", incident))
			}
		}

		s.updatePositions(states)

		if s.weather.Category == model.Wet && s.weather.RainIntensity > 80 &&
			s.rnd.Float64() < redFlagChance {
			redFlagged = true
			lapsRun = lap
			s.logger.Info("race red flagged",
				log.Int("lap", lap),
				log.Float64("rainIntensity", s.weather.RainIntensity))
			break
		}
	}

	return s.classify(states, fastestBy, redFlagged, lapsRun)
}

func (s *Simulator) lapTime(st *carState, lap int) float64 {
	pace := s.racePace(st.driver, st.team)

	fuelFactor := -0.002 * float64(lap)
	trafficFactor := 0.01 * max(0, float64(st.position-5)) / 10
	jitter := s.uniform(-0.003, 0.003)

	lapTime := pace*(1+fuelFactor+trafficFactor+jitter) + st.tires.PaceEffect(s.weather)
	st.tires.Update(s.weather)

	if len(st.plan) > 0 && st.plan[0].Lap == lap {
		stop := strategy.ExecuteStop(s.rnd, st.team, lap)
		lapTime += stop.TimeLost
		st.tires = strategy.NewTireSet(st.plan[0].Compound, s.track)
		st.plan = st.plan[1:]
		if stop.Error != "" {
			s.logger.Debug("pit stop problem",
				log.Int("lap", lap),
				log.String("driver", st.driver.Name),
				log.String("error", stop.Error),
				log.Float64("lost", stop.ErrorTime))
		}
	}
	return lapTime
}

func (s *Simulator) updatePositions(states []*carState) {
	active := activeStates(states)
	slices.SortFunc(active, func(a, b *carState) int {
		return cmp.Compare(a.time, b.time)
	})
	for i, st := range active {
		st.position = i + 1
	}
}

//nolint:whitespace // can't make both editor and linter happy
func (s *Simulator) classify(
	states []*carState, fastestBy *carState, redFlagged bool, lapsRun int,
) *model.WeekendResult {
	active := activeStates(states)
	slices.SortFunc(active, func(a, b *carState) int {
		return cmp.Compare(a.time, b.time)
	})
	retired := make([]*carState, 0, len(states))
	for _, st := range states {
		if !st.active {
			retired = append(retired, st)
		}
	}
	// retirements rank by distance covered, latest retirement first
	slices.SortFunc(retired, func(a, b *carState) int {
		if a.laps != b.laps {
			return cmp.Compare(b.laps, a.laps)
		}
		return cmp.Compare(b.time, a.time)
	})

	halfPoints := redFlagged && float64(lapsRun) < fullPointsDistance*float64(s.track.Laps)

	results := make([]*model.RaceResult, 0, len(states))
	for i, st := range append(active, retired...) {
		startPos := slices.Index(s.grid, st.driver) + 1
		result := &model.RaceResult{
			Driver:       st.driver,
			Team:         st.team,
			StartPos:     startPos,
			FinishPos:    i + 1,
			Time:         st.time,
			Laps:         st.laps,
			Status:       status(st),
			FastestLap:   st == fastestBy,
			Incident:     st.incident,
			IncidentText: st.text,
			Points:       decimal.Zero,
		}
		if result.Status == model.StatusFinished {
			result.Points = points(result.FinishPos, result.FastestLap, halfPoints)
		}
		results = append(results, result)
	}

	grid := make([]string, len(s.grid))
	for i, d := range s.grid {
		grid[i] = d.Name
	}
	return &model.WeekendResult{
		Track:      s.track,
		Weather:    s.weather,
		Grid:       grid,
		Results:    results,
		RedFlagged: redFlagged,
		LapsRun:    lapsRun,
	}
}

func status(st *carState) model.Status {
	switch {
	case st.active:
		return model.StatusFinished
	case st.incident == model.IncidentPenalty:
		return model.StatusDSQ
	default:
		return model.StatusDNF
	}
}

func points(position int, fastestLap, half bool) decimal.Decimal {
	pts := decimal.Zero
	if position <= len(pointsTable) {
		pts = decimal.NewFromInt(pointsTable[position-1])
		if fastestLap {
			pts = pts.Add(decimal.NewFromInt(1))
		}
	}
	if half {
		pts = pts.Div(decimal.NewFromInt(2))
	}
	return pts
}

func activeStates(states []*carState) []*carState {
	active := make([]*carState, 0, len(states))
	for _, st := range states {
		if st.active {
			active = append(active, st)
		}
	}
	return active
}

func (s *Simulator) uniform(lower, upper float64) float64 {
	return lower + s.rnd.Float64()*(upper-lower)
}
