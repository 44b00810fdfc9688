package season

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mehmetkahya0/f1-race-prediction/log"
	simulateCmd "github.com/mehmetkahya0/f1-race-prediction/pkg/cmd/simulate"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/config"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/data"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/service"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/simulation/race"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/simulation/weather"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/stats"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/utils"
)

var quiet bool

func NewSeasonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "season",
		Short: "simulates the complete season and shows the standings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return simulateSeason()
		},
	}
	cmd.Flags().BoolVarP(&quiet,
		"quiet",
		"q",
		false,
		"only print the final standings")
	cmd.Flags().BoolVar(&config.SaveResults,
		"save",
		false,
		"write each race result to the database")
	return cmd
}

//nolint:funlen // sequential season loop
func simulateSeason() error {
	var resultService *service.ResultService
	if config.SaveResults {
		pool, err := simulateCmd.OpenDatabase()
		if err != nil {
			return err
		}
		defer pool.Close()
		resultService = service.InitResultService(pool)
	}

	rnd := utils.NewSeededRand(config.Seed)
	gen := weather.New(weather.WithRand(rnd))
	seasonStats := stats.NewSeasonStats()

	for i, track := range data.Calendar() {
		conditions := gen.Generate(track)
		sim := race.NewSimulator(track, data.Drivers(), data.Teams(), conditions,
			race.WithRand(rnd))
		result := sim.SimulateRace()
		seasonStats.Update(result)

		if !quiet {
			winner := result.Results[0]
			fmt.Printf("Round %2d: %-40s %-30s %s\n",
				i+1, track.Name, conditions, winner.Driver.Name)
		}
		if resultService != nil {
			entry, err := resultService.SaveWeekend(
				context.Background(), config.Season, result)
			if err != nil {
				return err
			}
			log.Debug("result saved",
				log.String("track", track.Name),
				log.String("id", entry.ID.String()))
		}
	}

	printStandings(seasonStats)
	return nil
}

//nolint:errcheck // console output
func printStandings(seasonStats *stats.SeasonStats) {
	fmt.Printf("\nDrivers' championship after %d races\n", seasonStats.Races())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Pos\tDriver\tPoints\tWins\tPodiums\tPoles\tFastest laps")
	for i, s := range seasonStats.DriverStandings() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%d\n",
			i+1, s.Driver, s.Points, s.Wins, s.Podiums, s.Poles, s.FastestLaps)
	}
	w.Flush()

	fmt.Println("\nConstructors' championship")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Pos\tTeam\tPoints")
	for i, s := range seasonStats.TeamStandings() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, s.Team, s.Points)
	}
	w.Flush()
}
