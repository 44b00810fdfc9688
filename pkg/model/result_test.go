package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatRaceTime(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{name: "minutes", seconds: 95.5, want: "1:35.500"},
		{name: "sub minute", seconds: 9.25, want: "0:09.250"},
		{name: "hours", seconds: 5432.75, want: "1:30:32.750"},
		{name: "zero", seconds: 0, want: "0:00.000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRaceTime(tt.seconds))
		})
	}
}

func TestRaceResultString(t *testing.T) {
	r := &RaceResult{
		Driver:    &Driver{Name: "Max Verstappen"},
		Team:      &Team{Name: "Red Bull Racing"},
		FinishPos: 1,
		Time:      5432.75,
		Status:    StatusFinished,
		Points:    decimal.NewFromInt(25),
	}
	assert.Equal(t,
		"1. Max Verstappen (Red Bull Racing) - 1:30:32.750", r.String())

	r.Status = StatusDNF
	r.FinishPos = 18
	assert.Equal(t,
		"18. Max Verstappen (Red Bull Racing) - DNF", r.String())
}

func TestIncidentString(t *testing.T) {
	assert.Equal(t, "mechanical failure", IncidentMechanical.String())
	assert.Equal(t, "none", IncidentNone.String())
	assert.Equal(t, "Incident(99)", Incident(99).String())
}
