// Package weather generates session weather for a race weekend.
//
// Generation is a two stage stochastic process: a weighted categorical
// draw selects the weather regime (dry/wet/mixed), then the remaining
// parameters are sampled conditioned on that regime and the track
// location/season. The resulting record is immutable; the race engine
// reads its derived Factor() and IsWet() accessors.
package weather

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mehmetkahya0/f1-race-prediction/pkg/model"
)

// country sets used to bias category and temperature sampling
var (
	rainProneCountries = toSet(
		"malaysia", "japan", "brazil", "belgium", "great britain", "singapore")
	hotCountries = toSet(
		"bahrain", "saudi arabia", "qatar", "uae", "singapore")
	coldCountries = toSet(
		"canada", "japan", "great britain", "belgium")
)

func toSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// seasonal offset on the 20°C base temperature, January first
var monthTempOffset = [12]float64{-3, -2, 0, 2, 4, 6, 8, 8, 5, 2, -1, -3}

func isWinterMonth(m time.Month) bool {
	return m == time.December || m <= time.March
}

// Generator produces weather records. It is stateless apart from its
// random source; the source is owned by the generator, so a single
// generator must not be shared across goroutines.
type Generator struct {
	rnd   *rand.Rand
	clock clockwork.Clock
}

type Option func(*Generator)

// WithRand sets the random source, enabling seeded reproducible runs.
func WithRand(rnd *rand.Rand) Option {
	return func(g *Generator) { g.rnd = rnd }
}

// WithClock sets the clock used for the current-month fallback.
func WithClock(c clockwork.Clock) Option {
	return func(g *Generator) { g.clock = c }
}

func New(opts ...Option) *Generator {
	ret := &Generator{
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
		clock: clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

type genParams struct {
	month  time.Month
	forced *model.Category
}

type GenerateOption func(*genParams)

// WithMonth overrides the month derived from the track date.
// Values outside January..December are ignored.
func WithMonth(m time.Month) GenerateOption {
	return func(p *genParams) { p.month = m }
}

// WithForcedCategory skips the categorical draw and uses the given
// regime directly.
func WithForcedCategory(c model.Category) GenerateOption {
	return func(p *genParams) { p.forced = &c }
}

// Generate samples a complete weather record for the given track.
// Inputs are defensively defaulted: an unparsable track date falls back
// to the current month, an unknown country gets neutral adjustments.
func (g *Generator) Generate(track *model.Track, opts ...GenerateOption) *model.Weather {
	var params genParams
	for _, opt := range opts {
		opt(&params)
	}
	month := params.month
	if month < time.January || month > time.December {
		month = g.resolveMonth(track.Date)
	}
	country := strings.ToLower(track.Country)

	var category model.Category
	if params.forced != nil {
		category = *params.forced
	} else {
		category = g.drawCategory(country, month)
	}

	temperature := round1(g.baseTemperature(country, month) + g.uniform(-2, 2))

	w := &model.Weather{
		Category:    category,
		Temperature: temperature,
	}
	switch category {
	case model.Wet:
		w.Humidity = round1(g.uniform(70, 95))
		w.WindSpeed = round1(g.uniform(15, 40))
		w.RainChance = round1(g.uniform(70, 100))
		w.RainIntensity = round1(g.uniform(50, 100))
		w.TrackTemp = round1(temperature + g.uniform(0, 5))
	case model.Mixed:
		w.Humidity = round1(g.uniform(50, 80))
		w.WindSpeed = round1(g.uniform(10, 35))
		w.RainChance = round1(g.uniform(30, 70))
		w.RainIntensity = round1(g.uniform(10, 60))
		w.TrackTemp = round1(temperature + g.uniform(5, 15))
	default:
		w.Humidity = round1(g.uniform(30, 70))
		w.WindSpeed = round1(g.uniform(5, 25))
		w.TrackTemp = round1(temperature + g.uniform(10, 20))
	}
	return w
}

// drawCategory performs the weighted draw over the three regimes.
// The adjusted weights are treated as relative weights and need not sum
// to exactly 1.
func (g *Generator) drawCategory(country string, month time.Month) model.Category {
	dry, wet, mixed := 0.65, 0.15, 0.20
	if _, ok := rainProneCountries[country]; ok {
		dry -= 0.2
		wet += 0.1
		mixed += 0.1
	}
	if isWinterMonth(month) {
		dry -= 0.1
		wet += 0.05
		mixed += 0.05
	}
	r := g.rnd.Float64() * (dry + wet + mixed)
	switch {
	case r < dry:
		return model.Dry
	case r < dry+wet:
		return model.Wet
	default:
		return model.Mixed
	}
}

func (g *Generator) baseTemperature(country string, month time.Month) float64 {
	base := 20 + monthTempOffset[month-1]
	if _, ok := hotCountries[country]; ok {
		base += 5
	} else if _, ok := coldCountries[country]; ok {
		base -= 5
	}
	return base
}

// resolveMonth parses the leading month name of a track date such as
// "April 6, 2025", falling back to the current month.
func (g *Generator) resolveMonth(date string) time.Month {
	token, _, _ := strings.Cut(strings.TrimSpace(date), " ")
	if parsed, err := time.Parse("January", token); err == nil {
		return parsed.Month()
	}
	return g.clock.Now().Month()
}

func (g *Generator) uniform(lower, upper float64) float64 {
	return lower + g.rnd.Float64()*(upper-lower)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
