package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackByName(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
		found bool
	}{
		{name: "calendar key", query: "monaco", want: "Circuit de Monaco", found: true},
		{name: "partial circuit name", query: "silverstone", want: "Silverstone Circuit", found: true},
		{name: "country", query: "belgium", want: "Circuit de Spa-Francorchamps", found: true},
		{name: "case insensitive", query: "SUZUKA", want: "Suzuka Circuit", found: true},
		{name: "unknown", query: "nordschleife", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track, ok := TrackByName(tt.query)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, track.Name)
			}
		})
	}
}

func TestTrackKeyRoundTrip(t *testing.T) {
	track, ok := TrackByName("francorchamps")
	assert.True(t, ok)
	assert.Equal(t, "belgium", TrackKey(track))
}

func TestCalendarOrder(t *testing.T) {
	calendar := Calendar()
	assert.Len(t, calendar, 24)
	assert.Equal(t, "Bahrain International Circuit", calendar[0].Name)
	assert.Equal(t, "Yas Marina Circuit", calendar[len(calendar)-1].Name)

	prev := time.Time{}
	for _, track := range calendar {
		date, err := time.Parse(trackDateLayout, track.Date)
		assert.NoError(t, err, "track %s has invalid date %q", track.Name, track.Date)
		assert.False(t, date.Before(prev), "track %s out of order", track.Name)
		prev = date
	}
}

func TestDriversAndTeamsConsistent(t *testing.T) {
	assert.Len(t, Drivers(), 20)
	assert.Len(t, Teams(), 10)

	for _, d := range Drivers() {
		team, ok := TeamByName(d.Team)
		assert.True(t, ok, "driver %s has unknown team %q", d.Name, d.Team)
		assert.Len(t, DriversByTeam(team.Name), 2,
			"team %s does not have two drivers", team.Name)
	}
}

func TestDriverByName(t *testing.T) {
	d, ok := DriverByName("Max Verstappen")
	assert.True(t, ok)
	assert.Equal(t, "Red Bull Racing", d.Team)

	_, ok = DriverByName("Michael Schumacher")
	assert.False(t, ok)
}

func TestTeamForDriver(t *testing.T) {
	d, ok := DriverByName("Charles Leclerc")
	assert.True(t, ok)
	team, ok := TeamForDriver(d)
	assert.True(t, ok)
	assert.Equal(t, "Ferrari", team.Name)
}
