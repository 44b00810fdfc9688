package grid

import (
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mehmetkahya0/f1-race-prediction/pkg/data"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/model"
)

var byTeam bool

func NewGridCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "shows the driver and team field with ratings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if byTeam {
				return printTeams()
			}
			return printDrivers()
		},
	}
	cmd.Flags().BoolVar(&byTeam,
		"teams",
		false,
		"show the constructors instead of the drivers")
	return cmd
}

func printDrivers() error {
	drivers := data.Drivers()
	slices.SortFunc(drivers, func(a, b *model.Driver) int {
		// best rating first
		switch {
		case a.OverallRating() > b.OverallRating():
			return -1
		case a.OverallRating() < b.OverallRating():
			return 1
		}
		return 0
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "No\tDriver\tTeam\tNat\tAge\tDry\tWet\tOvertaking\tConsistency\tRating")
	for _, d := range drivers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%.1f\n",
			d.Number, d.Name, d.Team, d.Nationality, d.Age,
			d.SkillDry, d.SkillWet, d.SkillOvertaking, d.Consistency,
			d.OverallRating())
	}
	return w.Flush()
}

func printTeams() error {
	teams := data.Teams()
	slices.SortFunc(teams, func(a, b *model.Team) int {
		switch {
		case a.CarRating() > b.CarRating():
			return -1
		case a.CarRating() < b.CarRating():
			return 1
		}
		return 0
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Team\tEngine\tPerformance\tReliability\tAero\tPower\tPit\tRating")
	for _, t := range teams {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%.1f\n",
			t.Name, t.Engine, t.Performance, t.Reliability,
			t.Aerodynamics, t.Power, t.PitEfficiency, t.CarRating())
	}
	return w.Flush()
}
