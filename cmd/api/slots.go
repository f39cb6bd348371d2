package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Eyobiel-12/savannaeetcafe/internal/reservation"
)

var (
	slotsDate string
	slotsTZ   string

	slotsNow = time.Now
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Print the bookable time slots for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := time.LoadLocation(slotsTZ)
		if err != nil {
			return fmt.Errorf("invalid --tz %q: %w", slotsTZ, err)
		}

		date := reservation.TodayIn(slotsNow(), loc)
		if slotsDate != "" {
			d, err := reservation.ParseDate(slotsDate)
			if err != nil {
				return reservation.ErrInvalidDate
			}
			date = d
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", date.Format(reservation.DateLayout), date.Weekday())
		for _, s := range reservation.Sittings(date.Weekday()) {
			fmt.Fprintf(out, "  %-6s %s\n", s.Name, strings.Join(s.Slots(), " "))
		}
		return nil
	},
}

func init() {
	slotsCmd.Flags().StringVar(&slotsDate, "date", "", "date as YYYY-MM-DD (default today)")
	slotsCmd.Flags().StringVar(&slotsTZ, "tz", "Europe/Amsterdam", "zone that decides today")
}
