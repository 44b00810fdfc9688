package model

import (
	"fmt"
)

// Category is the overall weather regime of a session.
type Category int

const (
	Dry Category = iota
	Wet
	Mixed
)

var categoryNames = map[Category]string{
	Dry:   "dry",
	Wet:   "wet",
	Mixed: "mixed",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory converts user input to a Category.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}
	return Dry, fmt.Errorf("invalid weather category %q (want dry, wet or mixed)", s)
}

func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// rain intensity above which mixed conditions count as wet
const mixedWetThreshold = 30.0

// Weather holds the sampled conditions for a session. Records are
// constructed once by the weather generator and never mutated; all
// numeric fields carry one decimal place.
type Weather struct {
	Category      Category `json:"category"`
	Temperature   float64  `json:"temperature"`   // ambient, °C
	Humidity      float64  `json:"humidity"`      // percent
	WindSpeed     float64  `json:"windSpeed"`     // km/h
	RainChance    float64  `json:"rainChance"`    // percent
	RainIntensity float64  `json:"rainIntensity"` // 0-100, 0 when dry
	TrackTemp     float64  `json:"trackTemp"`     // surface, °C
}

func (w *Weather) String() string {
	return fmt.Sprintf("%s - %.1f°C, Rain: %d%%",
		w.Category, w.Temperature, int(w.RainChance))
}

// IsWet reports whether the session requires rain tires.
func (w *Weather) IsWet() bool {
	return w.Category == Wet ||
		(w.Category == Mixed && w.RainIntensity > mixedWetThreshold)
}

// Factor is the net favorability of the conditions for normal racing.
// Lower values signal harsher conditions. Consumers scale grip, incident
// and degradation models with it, so the thresholds and constants here
// are load-bearing.
func (w *Weather) Factor() float64 {
	switch w.Category {
	case Wet:
		switch {
		case w.RainIntensity > 80:
			return 0.3
		case w.RainIntensity >= 40:
			return 0.5
		default:
			// wind and humidity are deliberately not consulted here
			return 0.7
		}
	case Mixed:
		return 0.7 - w.RainIntensity*0.3/100
	default:
		switch {
		case w.Temperature >= 20 && w.Temperature <= 30 && w.Humidity < 40:
			return 1.0
		case w.WindSpeed > 35 || w.Humidity > 40:
			return 0.85
		case w.WindSpeed <= 10:
			return 0.9
		default:
			return 0.95
		}
	}
}
