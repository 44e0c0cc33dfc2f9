package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gymkeeper/internal/analytics"
	"gymkeeper/internal/cli"
)

func dashboardCmd() *cobra.Command {
	var asOfFlag string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard snapshot",
		Long: `Summarize the gym's position: member counts, this month's dues collected
and pending, today's and this month's cash collection, other income and
expenses, the net result, and how many members are overdue.`,
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

			snap := analytics.BuildSnapshot(s.Members, s.Fees, s.Finance, asOf)
			month := snap.AsOf.Time().Format("Jan")

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s | %s", s.Settings.GymName, snap.AsOf.String())))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Total members:\t%d\n", snap.TotalMembers)
			fmt.Fprintf(w, "Active members:\t%d\n", snap.ActiveMembers)
			fmt.Fprintf(w, "Inactive members:\t%d\n", snap.InactiveMembers)
			fmt.Fprintf(w, "Fees collected (%s):\t%s\n", month, money(s, snap.CollectedThisMonthDues))
			fmt.Fprintf(w, "Pending fees (%s):\t%s\n", month, money(s, snap.PendingThisMonthDues))
			fmt.Fprintf(w, "Today's collection:\t%s\n", money(s, snap.TodayCollection))
			fmt.Fprintf(w, "Collection (%s):\t%s\n", month, money(s, snap.MonthCollection))
			fmt.Fprintf(w, "Other income (%s):\t%s\n", month, money(s, snap.OtherIncomeThisMonth))
			fmt.Fprintf(w, "Expenses (%s):\t%s\n", month, money(s, snap.ExpensesThisMonth))
			fmt.Fprintf(w, "Overdue members:\t%d\n", snap.OverdueMembersCount)
			w.Flush()

			net := fmt.Sprintf("Net result (%s): %s", month, money(s, snap.NetResult))
			if snap.Profit() {
				fmt.Println(cli.ProfitStyle.Render("PROFIT | " + net))
			} else {
				fmt.Println(cli.LossStyle.Render("LOSS | " + net))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&asOfFlag, "as-of", "", "reference date (YYYY-MM-DD, default today)")
	return cmd
}
