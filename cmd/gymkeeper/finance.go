package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gymkeeper/internal/cli"
	"gymkeeper/internal/ledger"
	"gymkeeper/internal/model"
)

func financeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Manage income and expense records",
	}

	cmd.AddCommand(addFinanceCmd())
	cmd.AddCommand(listFinanceCmd())
	cmd.AddCommand(deleteFinanceCmd())

	return cmd
}

func addFinanceCmd() *cobra.Command {
	var (
		recordType  string
		dateFlag    string
		category    string
		description string
		amount      float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an income or expense record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			date, err := parseAsOf(dateFlag)
			if err != nil {
				return err
			}

			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			record, err := ledger.NewFinanceLedger(s).AddRecord(ctx, ledger.RecordInput{
				Type:        model.RecordType(recordType),
				Date:        date,
				Category:    category,
				Description: description,
				Amount:      amount,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s record added (%s).", record.Type, money(s, record.Amount))))
			return nil
		},
	}

	cmd.Flags().StringVar(&recordType, "type", "", "record type (Income or Expense)")
	cmd.Flags().StringVar(&dateFlag, "date", "", "record date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&category, "category", "", "category")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func listFinanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List finance records, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			records := ledger.NewFinanceLedger(s).ListRecords()
			if len(records) == 0 {
				fmt.Println(cli.InfoStyle.Render("No finance records found."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "ID\tDate\tType\tCategory\tDescription\tAmount")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 8), strings.Repeat("-", 10), strings.Repeat("-", 7),
				strings.Repeat("-", 12), strings.Repeat("-", 20), strings.Repeat("-", 10))
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					shortID(r.ID), r.Date.String(), r.Type, r.Category, r.Description,
					money(s, r.Amount))
			}
			return nil
		},
	}
}

func deleteFinanceCmd() *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "delete <record-id>",
		Short: "Permanently delete a finance record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			ok, err := confirm(cmd, assumeYes, "Permanently delete this finance record?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println(cli.InfoStyle.Render("Aborted."))
				return nil
			}

			if err := ledger.NewFinanceLedger(s).DeleteRecord(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Finance record deleted."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation")
	return cmd
}
