package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gymkeeper/internal/cli"
	"gymkeeper/internal/model"
	"gymkeeper/internal/report"
	"gymkeeper/internal/store"
)

func reportCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the monthly financial report",
		Long: `Partition the month's money into member fees collected (by payment
date), other income, and expenses, with grand totals and the net result.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			month, err := parseMonthFlag(monthFlag)
			if err != nil {
				return err
			}

			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			r := report.BuildMonthly(s.Members, s.Fees, s.Finance, month)

			fmt.Println(cli.TitleStyle.Render("Financial Report for " + r.Month.String()))

			result := fmt.Sprintf("NET RESULT: %s", money(s, r.NetResult))
			if r.Profit() {
				fmt.Println(cli.ProfitStyle.Render("PROFIT | " + result))
			} else {
				fmt.Println(cli.LossStyle.Render("LOSS | " + result))
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Grand total income:\t%s\n", money(s, r.GrandTotalIncome))
			fmt.Fprintf(tw, "Total expenses:\t%s\n", money(s, r.TotalExpenses))
			tw.Flush()
			fmt.Println()

			fmt.Println(cli.InfoStyle.Render("1. Member Fees Collected"))
			if len(r.FeesCollected) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No member fees collected this month."))
			} else {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "Member\tFee Month Due\tAmount\tDate Paid")
				for _, cf := range r.FeesCollected {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
						cf.MemberName, cf.Fee.Month().String(), money(s, cf.Fee.Amount), cf.Fee.DatePaid.String())
				}
				fmt.Fprintf(w, "TOTAL\t\t%s\t\n", money(s, r.TotalFeesCollected))
				w.Flush()
			}
			fmt.Println()

			printRecordSection(s, "2. Other Income", r.OtherIncome, r.TotalOtherIncome)
			fmt.Println()
			printRecordSection(s, "3. Expenses", r.Expenses, r.TotalExpenses)
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "report month (YYYY-MM, default current)")
	return cmd
}

func printRecordSection(s *store.Store, title string, records []model.FinanceRecord, total float64) {
	fmt.Println(cli.InfoStyle.Render(title))
	if len(records) == 0 {
		fmt.Println(cli.SubtleStyle.Render("Nothing recorded this month."))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "Date\tCategory\tDescription\tAmount")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Date.String(), r.Category, r.Description, money(s, r.Amount))
	}
	fmt.Fprintf(w, "TOTAL\t\t\t%s\n", money(s, total))
}
