// ABOUTME: archive and calendar commands
// ABOUTME: Browse the feed by publication date

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"newsboard-api/core/listengine"
)

func newArchiveCmd(a *app) *cobra.Command {
	var flagDays int

	cmd := &cobra.Command{
		Use:   "archive [DATE]",
		Short: "Show the date archive, or the items of one day",
		Long: `Without a date, show how many items were published on each of the most
recent days and which dates have items. With a YYYY-MM-DD date, list that
day's items newest first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if _, err := time.Parse(listengine.DateLayout, args[0]); err != nil {
					return fmt.Errorf("invalid date %q, want YYYY-MM-DD", args[0])
				}
			}

			return a.withSession(cmd, true, func(ctx context.Context, s *session) error {
				out := cmd.OutOrStdout()
				e := s.engine

				if len(args) == 1 {
					items := e.ArchiveForDate(args[0])
					if len(items) == 0 {
						fmt.Fprintf(out, "No news on %s.\n", args[0])
						return nil
					}
					for _, item := range items {
						printItem(out, e, item, e.IsFavorite(item.Link))
					}
					return nil
				}

				for _, day := range e.RecentDays(a.now(), flagDays) {
					marker := ""
					if day.Today {
						marker = " (today)"
					}
					fmt.Fprintf(out, "%s  %3d%s\n", day.Date, day.Count, marker)
				}
				fmt.Fprintf(out, "\n%d dates with news\n", len(e.ArchiveDates()))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&flagDays, "days", 7, "number of recent days to show")
	return cmd
}

func newCalendarCmd(a *app) *cobra.Command {
	var flagMonth string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show per-day item counts for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var month time.Time
			if flagMonth != "" {
				var err error
				month, err = time.Parse("2006-01", flagMonth)
				if err != nil {
					return fmt.Errorf("invalid month %q, want YYYY-MM", flagMonth)
				}
			}

			return a.withSession(cmd, true, func(ctx context.Context, s *session) error {
				e := s.engine
				if month.IsZero() {
					month = a.now().In(e.Config().Location)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s %d\n", month.Month(), month.Year())
				for _, day := range e.MonthCalendar(month.Year(), month.Month()) {
					if day.Count == 0 {
						continue
					}
					fmt.Fprintf(out, "%s  %3d\n", day.Date, day.Count)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&flagMonth, "month", "", "month to show as YYYY-MM (default current month)")
	return cmd
}
