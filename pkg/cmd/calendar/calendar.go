package calendar

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mehmetkahya0/f1-race-prediction/pkg/data"
)

func NewCalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "shows the race calendar in date order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCalendar()
		},
	}
	return cmd
}

func printCalendar() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Rd\tDate\tCircuit\tCountry\tLaps\tDistance\tType")
	for i, track := range data.Calendar() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%.1f km\t%s\n",
			i+1, track.Date, track.Name, track.Country,
			track.Laps, track.RaceDistance(), track.Type())
	}
	return w.Flush()
}
