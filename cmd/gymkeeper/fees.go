package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"gymkeeper/internal/cli"
	"gymkeeper/internal/ledger"
	"gymkeeper/internal/model"
)

func feesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fees",
		Short: "Manage monthly fee records",
		Long:  `Generate monthly dues, record ad-hoc fees, mark fees paid, and list or delete fee records.`,
	}

	cmd.AddCommand(generateDuesCmd())
	cmd.AddCommand(addFeeCmd())
	cmd.AddCommand(markPaidCmd())
	cmd.AddCommand(listFeesCmd())
	cmd.AddCommand(deleteFeeCmd())

	return cmd
}

func generateDuesCmd() *cobra.Command {
	var (
		monthFlag string
		assumeYes bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate this month's dues for all active members",
		Long: `Create one Unpaid fee per active member for the chosen billing month,
billing each member their configured monthly fee. Members who already have a
fee for that month are skipped, so re-running is safe.`,
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

			active := 0
			for i := range s.Members {
				if s.Members[i].IsActive() {
					active++
				}
			}

			ok, err := confirm(cmd, assumeYes,
				fmt.Sprintf("Generate dues for %d active member(s) for %s?", active, month.String()))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println(cli.InfoStyle.Render("Aborted."))
				return nil
			}

			bar := progressbar.NewOptions(active,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Generating dues..."),
			)

			created, err := ledger.NewFeeLedger(s).GenerateMonthlyDues(ctx, month, func(model.Member) {
				_ = bar.Add(1)
			})
			if err != nil {
				return err
			}
			_ = bar.Finish()
			fmt.Println()

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d new fee due(s) generated for %s.", created, month.String())))
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "billing month (YYYY-MM, default current)")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation")
	return cmd
}

func addFeeCmd() *cobra.Command {
	var (
		memberID  string
		monthFlag string
		amount    float64
		paid      bool
		datePaid  string
		method    string
		notes     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a manual fee record",
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

			input := ledger.ManualFeeInput{
				MemberID: memberID,
				Month:    month,
				Amount:   amount,
				Paid:     paid,
			}
			if paid {
				date, parseErr := parseAsOf(datePaid)
				if parseErr != nil {
					return parseErr
				}
				input.DatePaid = date
				input.PaymentMethod = method
				input.Notes = notes
			}

			fee, err := ledger.NewFeeLedger(s).AddManualFee(ctx, input)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Manual fee added for %s (id %s).", month.String(), shortID(fee.ID))))
			return nil
		},
	}

	cmd.Flags().StringVar(&memberID, "member", "", "member id")
	cmd.Flags().StringVar(&monthFlag, "month", "", "billing month (YYYY-MM)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "fee amount")
	cmd.Flags().BoolVar(&paid, "paid", false, "record the fee as already paid")
	cmd.Flags().StringVar(&datePaid, "date", "", "payment date (YYYY-MM-DD, default today, only with --paid)")
	cmd.Flags().StringVar(&method, "method", "", "payment method (only with --paid)")
	cmd.Flags().StringVar(&notes, "notes", "", "payment notes (only with --paid)")
	_ = cmd.MarkFlagRequired("member")
	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func markPaidCmd() *cobra.Command {
	var (
		datePaid string
		method   string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "paid <fee-id>",
		Short: "Mark a fee as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			date, err := parseAsOf(datePaid)
			if err != nil {
				return err
			}

			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			fee, err := ledger.NewFeeLedger(s).MarkPaid(ctx, args[0], date, method, notes)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Fee for %s marked as paid.", fee.Month().String())))
			return nil
		},
	}

	cmd.Flags().StringVar(&datePaid, "date", "", "payment date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&method, "method", "", "payment method")
	cmd.Flags().StringVar(&notes, "notes", "", "payment notes")
	return cmd
}

func listFeesCmd() *cobra.Command {
	var (
		monthFlag  string
		statusFlag string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List fee records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			filter := ledger.FeeFilter{}
			if monthFlag != "" {
				month, parseErr := model.ParseMonth(monthFlag)
				if parseErr != nil {
					return parseErr
				}
				filter.Month = &month
			}
			switch statusFlag {
			case "all", "":
			case string(model.FeeStatusPaid), string(model.FeeStatusUnpaid):
				filter.Status = model.FeeStatus(statusFlag)
			default:
				return fmt.Errorf("invalid status %q (want Paid, Unpaid, or all)", statusFlag)
			}

			fees := ledger.NewFeeLedger(s).ListFees(filter)
			if len(fees) == 0 {
				fmt.Println(cli.InfoStyle.Render("No fees found for the selected filter."))
				return nil
			}

			index := s.MemberIndex()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "Fee ID\tMember\tMonth\tAmount\tStatus\tDate Paid")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 8), strings.Repeat("-", 20), strings.Repeat("-", 14),
				strings.Repeat("-", 10), strings.Repeat("-", 6), strings.Repeat("-", 10))
			for _, f := range fees {
				name := "N/A"
				if m, ok := index[f.MemberID]; ok {
					name = m.FullName
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					shortID(f.ID), name, f.Month().String(), money(s, f.Amount),
					f.Status, orDash(f.DatePaid.String()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "filter by billing month (YYYY-MM)")
	cmd.Flags().StringVar(&statusFlag, "status", "all", "filter by status (Paid, Unpaid, all)")
	return cmd
}

func deleteFeeCmd() *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "delete <fee-id>",
		Short: "Permanently delete a fee record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			ok, err := confirm(cmd, assumeYes,
				"Permanently delete this fee record? This action cannot be undone.")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println(cli.InfoStyle.Render("Aborted."))
				return nil
			}

			if err := ledger.NewFeeLedger(s).DeleteFee(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Fee record deleted."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation")
	return cmd
}
