package simulate

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/mehmetkahya0/f1-race-prediction/log"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/config"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/data"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/db/postgres"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/model"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/service"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/simulation/race"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/simulation/weather"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/stats"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/utils"
)

var (
	weatherMode string
	month       string
	analysis    bool
)

func NewSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate <track>",
		Short: "simulates a complete race weekend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return simulateWeekend(args[0])
		},
	}
	cmd.Flags().StringVar(&weatherMode,
		"weather",
		"realistic",
		"weather mode (realistic, dry, wet, mixed)")
	cmd.Flags().StringVar(&month,
		"month",
		"",
		"override the race month (e.g. April)")
	cmd.Flags().BoolVar(&analysis,
		"analysis",
		false,
		"show the qualifying vs race analysis")
	cmd.Flags().BoolVar(&config.SaveResults,
		"save",
		false,
		"write the result to the database")
	return cmd
}

func simulateWeekend(trackName string) error {
	track, ok := data.TrackByName(trackName)
	if !ok {
		return fmt.Errorf("unknown track %q", trackName)
	}

	genOpts := []weather.GenerateOption{}
	if weatherMode != "realistic" {
		cat, err := model.ParseCategory(weatherMode)
		if err != nil {
			return err
		}
		genOpts = append(genOpts, weather.WithForcedCategory(cat))
	}
	if month != "" {
		m, err := time.Parse("January", month)
		if err != nil {
			return fmt.Errorf("invalid month %q", month)
		}
		genOpts = append(genOpts, weather.WithMonth(m.Month()))
	}

	rnd := utils.NewSeededRand(config.Seed)
	gen := weather.New(weather.WithRand(rnd))
	conditions := gen.Generate(track, genOpts...)

	sim := race.NewSimulator(track, data.Drivers(), data.Teams(), conditions,
		race.WithRand(rnd))
	result := sim.SimulateRace()

	printWeekend(result)
	if analysis {
		printAnalysis(result)
	}

	if config.SaveResults {
		pool, err := OpenDatabase()
		if err != nil {
			return err
		}
		defer pool.Close()
		resultService := service.InitResultService(pool)
		entry, err := resultService.SaveWeekend(
			context.Background(), config.Season, result)
		if err != nil {
			return err
		}
		log.Info("result saved", log.String("id", entry.ID.String()))
	}
	return nil
}

//nolint:errcheck // console output
func printWeekend(result *model.WeekendResult) {
	fmt.Printf("%s - %s\n\n", result.Track, result.Weather)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Pos\tDriver\tTeam\tStart\tTime/Status\tPoints")
	for _, r := range result.Results {
		timeOrStatus := string(r.Status)
		if r.Status == model.StatusFinished {
			timeOrStatus = model.FormatRaceTime(r.Time)
		} else if r.IncidentText != "" {
			timeOrStatus = fmt.Sprintf("%s (%s)", r.Status, r.IncidentText)
		}
		marker := ""
		if r.FastestLap {
			marker = " *"
		}
		fmt.Fprintf(w, "%d\t%s%s\t%s\t%d\t%s\t%s\n",
			r.FinishPos, r.Driver.Name, marker, r.Team.Name,
			r.StartPos, timeOrStatus, r.Points)
	}
	w.Flush()

	if result.RedFlagged {
		fmt.Printf("\nRace red flagged after %d of %d laps\n",
			result.LapsRun, result.Track.Laps)
	}
	metrics := stats.Metrics(result.Results)
	fmt.Printf("\nFinished: %d  DNF: %d  DSQ: %d  Avg gap: %.2f%%\n",
		metrics.Finished, metrics.DNF, metrics.DSQ, metrics.AvgGapPct)
}

//nolint:errcheck // console output
func printAnalysis(result *model.WeekendResult) {
	fmt.Println("\nQualifying vs race")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Driver\tQuali\tRace\tChange\tStatus")
	for _, d := range stats.QualifyingAnalysis(result) {
		change := fmt.Sprintf("%+d", d.Change)
		if d.Change == 0 {
			change = "="
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n",
			d.Driver, d.QualiPos, d.RacePos, change, d.Status)
	}
	w.Flush()
}

// OpenDatabase waits for the configured database and opens a pool.
func OpenDatabase() (*pgxpool.Pool, error) {
	timeout, err := time.ParseDuration(config.WaitForServices)
	if err != nil {
		log.Warn("Invalid duration value. Setting default 60s", log.ErrorField(err))
		timeout = 60 * time.Second
	}
	postgresAddr := utils.ExtractFromDBURL(config.DB)
	if err := utils.WaitForTCP(postgresAddr, timeout); err != nil {
		return nil, err
	}
	return postgres.InitWithURL(config.DB,
		postgres.WithTracer(log.Default().Named("sql")))
}
