package data

import (
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/mehmetkahya0/f1-race-prediction/pkg/model"
)

//nolint:lll // tabular data reads better on one line
var tracks = map[string]*model.Track{
	"bahrain":     {Name: "Bahrain International Circuit", Country: "Bahrain", City: "Sakhir", LengthKm: 5.412, Laps: 57, Corners: 15, Straights: 4, TopSpeed: 330, Downforce: 6, TireWear: 7, BrakingSeverity: 7, OvertakingDifficulty: 5, Date: "March 2, 2025"},
	"jeddah":      {Name: "Jeddah Corniche Circuit", Country: "Saudi Arabia", City: "Jeddah", LengthKm: 6.174, Laps: 50, Corners: 27, Straights: 3, TopSpeed: 350, Downforce: 4, TireWear: 5, BrakingSeverity: 8, OvertakingDifficulty: 6, Date: "March 9, 2025"},
	"australia":   {Name: "Albert Park Circuit", Country: "Australia", City: "Melbourne", LengthKm: 5.278, Laps: 58, Corners: 14, Straights: 4, TopSpeed: 325, Downforce: 5, TireWear: 6, BrakingSeverity: 7, OvertakingDifficulty: 5, Date: "March 23, 2025"},
	"japan":       {Name: "Suzuka Circuit", Country: "Japan", City: "Suzuka", LengthKm: 5.807, Laps: 53, Corners: 18, Straights: 2, TopSpeed: 315, Downforce: 9, TireWear: 6, BrakingSeverity: 7, OvertakingDifficulty: 7, Date: "April 6, 2025"},
	"china":       {Name: "Shanghai International Circuit", Country: "China", City: "Shanghai", LengthKm: 5.451, Laps: 56, Corners: 16, Straights: 3, TopSpeed: 327, Downforce: 6, TireWear: 7, BrakingSeverity: 8, OvertakingDifficulty: 5, Date: "April 13, 2025"},
	"miami":       {Name: "Miami International Autodrome", Country: "USA", City: "Miami", LengthKm: 5.412, Laps: 57, Corners: 19, Straights: 3, TopSpeed: 340, Downforce: 5, TireWear: 6, BrakingSeverity: 7, OvertakingDifficulty: 4, Date: "May 4, 2025"},
	"imola":       {Name: "Autodromo Enzo e Dino Ferrari", Country: "Italy", City: "Imola", LengthKm: 4.909, Laps: 63, Corners: 19, Straights: 2, TopSpeed: 320, Downforce: 7, TireWear: 5, BrakingSeverity: 9, OvertakingDifficulty: 8, Date: "May 18, 2025"},
	"monaco":      {Name: "Circuit de Monaco", Country: "Monaco", City: "Monte Carlo", LengthKm: 3.337, Laps: 78, Corners: 19, Straights: 1, TopSpeed: 290, Downforce: 10, TireWear: 3, BrakingSeverity: 10, OvertakingDifficulty: 10, Date: "May 25, 2025"},
	"canada":      {Name: "Circuit Gilles Villeneuve", Country: "Canada", City: "Montreal", LengthKm: 4.361, Laps: 70, Corners: 14, Straights: 3, TopSpeed: 330, Downforce: 6, TireWear: 8, BrakingSeverity: 8, OvertakingDifficulty: 4, Date: "June 8, 2025"},
	"spain":       {Name: "Circuit de Barcelona-Catalunya", Country: "Spain", City: "Barcelona", LengthKm: 4.675, Laps: 66, Corners: 16, Straights: 2, TopSpeed: 325, Downforce: 8, TireWear: 7, BrakingSeverity: 6, OvertakingDifficulty: 7, Date: "June 22, 2025"},
	"austria":     {Name: "Red Bull Ring", Country: "Austria", City: "Spielberg", LengthKm: 4.318, Laps: 71, Corners: 10, Straights: 3, TopSpeed: 340, Downforce: 5, TireWear: 6, BrakingSeverity: 7, OvertakingDifficulty: 3, Date: "June 29, 2025"},
	"britain":     {Name: "Silverstone Circuit", Country: "Great Britain", City: "Silverstone", LengthKm: 5.891, Laps: 52, Corners: 18, Straights: 2, TopSpeed: 330, Downforce: 8, TireWear: 7, BrakingSeverity: 7, OvertakingDifficulty: 5, Date: "July 6, 2025"},
	"hungary":     {Name: "Hungaroring", Country: "Hungary", City: "Budapest", LengthKm: 4.381, Laps: 70, Corners: 14, Straights: 1, TopSpeed: 315, Downforce: 9, TireWear: 5, BrakingSeverity: 7, OvertakingDifficulty: 9, Date: "July 20, 2025"},
	"belgium":     {Name: "Circuit de Spa-Francorchamps", Country: "Belgium", City: "Spa", LengthKm: 7.004, Laps: 44, Corners: 19, Straights: 2, TopSpeed: 350, Downforce: 6, TireWear: 5, BrakingSeverity: 9, OvertakingDifficulty: 4, Date: "July 27, 2025"},
	"netherlands": {Name: "Circuit Zandvoort", Country: "Netherlands", City: "Zandvoort", LengthKm: 4.259, Laps: 72, Corners: 14, Straights: 2, TopSpeed: 315, Downforce: 8, TireWear: 7, BrakingSeverity: 7, OvertakingDifficulty: 7, Date: "August 24, 2025"},
	"monza":       {Name: "Autodromo Nazionale Monza", Country: "Italy", City: "Monza", LengthKm: 5.793, Laps: 53, Corners: 11, Straights: 4, TopSpeed: 360, Downforce: 1, TireWear: 8, BrakingSeverity: 9, OvertakingDifficulty: 4, Date: "September 7, 2025"},
	"azerbaijan":  {Name: "Baku City Circuit", Country: "Azerbaijan", City: "Baku", LengthKm: 6.003, Laps: 51, Corners: 20, Straights: 2, TopSpeed: 350, Downforce: 4, TireWear: 5, BrakingSeverity: 8, OvertakingDifficulty: 6, Date: "September 14, 2025"},
	"singapore":   {Name: "Marina Bay Street Circuit", Country: "Singapore", City: "Singapore", LengthKm: 4.94, Laps: 62, Corners: 23, Straights: 2, TopSpeed: 325, Downforce: 8, TireWear: 9, BrakingSeverity: 9, OvertakingDifficulty: 7, Date: "September 21, 2025"},
	"usa":         {Name: "Circuit of the Americas", Country: "USA", City: "Austin", LengthKm: 5.513, Laps: 56, Corners: 20, Straights: 3, TopSpeed: 330, Downforce: 7, TireWear: 6, BrakingSeverity: 7, OvertakingDifficulty: 5, Date: "October 19, 2025"},
	"mexico":      {Name: "Autódromo Hermanos Rodríguez", Country: "Mexico", City: "Mexico City", LengthKm: 4.304, Laps: 71, Corners: 17, Straights: 3, TopSpeed: 350, Downforce: 6, TireWear: 7, BrakingSeverity: 8, OvertakingDifficulty: 6, Date: "October 26, 2025"},
	"brazil":      {Name: "Autódromo José Carlos Pace", Country: "Brazil", City: "São Paulo", LengthKm: 4.309, Laps: 71, Corners: 15, Straights: 2, TopSpeed: 335, Downforce: 7, TireWear: 8, BrakingSeverity: 7, OvertakingDifficulty: 4, Date: "November 9, 2025"},
	"las_vegas":   {Name: "Las Vegas Strip Circuit", Country: "USA", City: "Las Vegas", LengthKm: 6.12, Laps: 50, Corners: 17, Straights: 3, TopSpeed: 345, Downforce: 3, TireWear: 6, BrakingSeverity: 7, OvertakingDifficulty: 5, Date: "November 16, 2025"},
	"qatar":       {Name: "Losail International Circuit", Country: "Qatar", City: "Lusail", LengthKm: 5.38, Laps: 57, Corners: 16, Straights: 1, TopSpeed: 330, Downforce: 8, TireWear: 9, BrakingSeverity: 7, OvertakingDifficulty: 6, Date: "November 30, 2025"},
	"abu_dhabi":   {Name: "Yas Marina Circuit", Country: "UAE", City: "Abu Dhabi", LengthKm: 5.281, Laps: 58, Corners: 16, Straights: 2, TopSpeed: 335, Downforce: 7, TireWear: 6, BrakingSeverity: 7, OvertakingDifficulty: 7, Date: "December 7, 2025"},
}

const trackDateLayout = "January 2, 2006"

// TrackByName finds a track by partial circuit or country name.
func TrackByName(name string) (*model.Track, bool) {
	name = strings.ToLower(name)
	if t, ok := tracks[name]; ok {
		return t, true
	}
	return lo.Find(lo.Values(tracks), func(t *model.Track) bool {
		return strings.Contains(strings.ToLower(t.Name), name) ||
			strings.Contains(strings.ToLower(t.Country), name)
	})
}

// TrackKey returns the calendar key of a track (used for persistence).
func TrackKey(track *model.Track) string {
	key, _ := lo.FindKeyBy(tracks, func(_ string, t *model.Track) bool {
		return t == track
	})
	return key
}

// Calendar returns all tracks in race date order.
func Calendar() []*model.Track {
	all := lo.Values(tracks)
	slices.SortFunc(all, func(a, b *model.Track) int {
		ta, _ := time.Parse(trackDateLayout, a.Date)
		tb, _ := time.Parse(trackDateLayout, b.Date)
		return ta.Compare(tb)
	})
	return all
}
