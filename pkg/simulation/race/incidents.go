package race

import (
	"fmt"

	"github.com/mehmetkahya0/f1-race-prediction/pkg/model"
)

// base chance of an incident per driver per lap
const baseIncidentChance = 0.0005

// rollIncident decides whether the driver's race ends on this lap and
// with what kind of incident. The per-lap probability scales with
// driver consistency, car reliability, weather harshness and the race
// phase.
func (s *Simulator) rollIncident(st *carState, lap, totalLaps int) (model.Incident, string) {
	driverFactor := 1 - float64(st.driver.Consistency)/100
	carFactor := 1 - float64(st.team.Reliability)/100

	// harsher weather (lower factor) raises the incident probability
	weatherFactor := 1 + 4*(1-s.weather.Factor())

	firstLapFactor := 1.0
	if lap < 3 {
		firstLapFactor = 5.0
	}
	lastLapFactor := 1.0
	if float64(lap) > float64(totalLaps)*0.9 {
		lastLapFactor = 1.5
	}

	chance := baseIncidentChance * driverFactor * carFactor *
		weatherFactor * firstLapFactor * lastLapFactor
	if s.rnd.Float64() >= chance {
		return model.IncidentNone, ""
	}
	return s.pickIncident(st)
}

//nolint:funlen // one branch per incident kind
func (s *Simulator) pickIncident(st *carState) (model.Incident, string) {
	name := st.driver.Name
	roll := s.rnd.Float64()

	switch {
	case roll < 0.3*(1-float64(st.team.Reliability)/100)*2:
		return model.IncidentMechanical, s.pick(
			fmt.Sprintf("Engine failure for %s", name),
			fmt.Sprintf("Gearbox issue forces %s to retire", name),
			fmt.Sprintf("Hydraulic system failure for %s", name),
			fmt.Sprintf("Power unit problem for %s", name),
			fmt.Sprintf("Brake failure for %s", name))
	case roll < 0.5:
		return model.IncidentDriverError, s.pick(
			fmt.Sprintf("%s spins off track", name),
			fmt.Sprintf("%s locks up and goes into the gravel", name),
			fmt.Sprintf("Racing incident involving %s", name),
			fmt.Sprintf("%s exceeds track limits and damages the car", name),
			fmt.Sprintf("Driving error forces %s to retire", name))
	case roll < 0.7:
		return model.IncidentCollision, s.pick(
			fmt.Sprintf("Collision damage forces %s to retire", name),
			fmt.Sprintf("%s involved in racing incident", name),
			fmt.Sprintf("Contact with another car damages %s's suspension", name),
			fmt.Sprintf("Multi-car collision involves %s", name),
			fmt.Sprintf("Wing damage from contact forces %s to retire", name))
	case roll < 0.8:
		return model.IncidentPuncture, s.pick(
			fmt.Sprintf("Puncture for %s", name),
			fmt.Sprintf("%s suffers tire failure", name),
			fmt.Sprintf("Debris causes puncture for %s", name),
			fmt.Sprintf("Tire delamination for %s", name),
			fmt.Sprintf("Slow puncture affects %s's race", name))
	case roll < 0.9 && s.weather.IsWet():
		return model.IncidentWeather, s.pick(
			fmt.Sprintf("%s aquaplanes off track", name),
			fmt.Sprintf("Poor visibility causes %s to crash", name),
			fmt.Sprintf("%s slides off in wet conditions", name),
			fmt.Sprintf("Standing water causes %s to lose control", name),
			fmt.Sprintf("Wet track catches %s out", name))
	default:
		if s.rnd.Float64() < 0.5 {
			return model.IncidentPitError, s.pick(
				fmt.Sprintf("Pit stop error costs %s the race", name),
				fmt.Sprintf("Wheel not attached properly for %s", name),
				fmt.Sprintf("Fire during pit stop forces %s to retire", name),
				fmt.Sprintf("Major delay in the pits for %s", name),
				fmt.Sprintf("Unsafe release leads to retirement for %s", name))
		}
		return model.IncidentPenalty, s.pick(
			fmt.Sprintf("%s black flagged for rule infringement", name),
			fmt.Sprintf("Technical infringement disqualifies %s", name),
			fmt.Sprintf("Safety violation forces %s to retire", name),
			fmt.Sprintf("Stewards give %s black flag", name),
			fmt.Sprintf("Disqualification for %s", name))
	}
}

func (s *Simulator) pick(choices ...string) string {
	return choices[s.rnd.Intn(len(choices))]
}
