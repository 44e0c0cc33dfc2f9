package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gymkeeper/internal/analytics"
	"gymkeeper/internal/cli"
)

func trendsCmd() *cobra.Command {
	var asOfFlag string

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Show the six-month trend series and all-time metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			asOf, err := parseAsOf(asOfFlag)
			if err != nil {
				return err
			}

			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			points := analytics.TrendSeries(s.Members, s.Fees, s.Finance, asOf)

			fmt.Println(cli.TitleStyle.Render("Last 6 months"))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "Month\tIncome\tExpense\tNet\tNew Members")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 14), strings.Repeat("-", 10), strings.Repeat("-", 10),
				strings.Repeat("-", 10), strings.Repeat("-", 11))
			for _, p := range points {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
					p.Month.String(), money(s, p.Income), money(s, p.Expense),
					money(s, p.Net), p.NewMembers)
			}
			w.Flush()
			fmt.Println()

			metrics := analytics.ComputeMetrics(s.Members, s.Fees, s.Finance)

			mw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer mw.Flush()
			fmt.Fprintf(mw, "Avg revenue per active member:\t%s\n", money(s, metrics.AverageRevenuePerActiveMember))

			if metrics.MostProfitableMonth != nil {
				fmt.Fprintf(mw, "Most profitable month:\t%s (%s)\n",
					metrics.MostProfitableMonth.Month.String(), money(s, metrics.MostProfitableMonth.Net))
			} else {
				fmt.Fprintf(mw, "Most profitable month:\tNo profit yet\n")
			}

			if metrics.TopPayer != nil {
				fmt.Fprintf(mw, "Top paying member:\t%s (%s)\n",
					metrics.TopPayer.FullName, money(s, metrics.TopPayer.TotalPaid))
			} else {
				fmt.Fprintf(mw, "Top paying member:\tN/A\n")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&asOfFlag, "as-of", "", "reference date (YYYY-MM-DD, default today)")
	return cmd
}
