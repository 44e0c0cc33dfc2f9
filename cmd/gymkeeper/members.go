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
	"gymkeeper/internal/report"
	"gymkeeper/internal/store"
)

func membersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage gym members",
		Long:  `Enroll, list, update, and deactivate members, and print their invoices.`,
	}

	cmd.AddCommand(addMemberCmd())
	cmd.AddCommand(listMembersCmd())
	cmd.AddCommand(showMemberCmd())
	cmd.AddCommand(updateMemberCmd())
	cmd.AddCommand(setMemberStatusCmd("activate", "Activate a member", model.MemberStatusActive))
	cmd.AddCommand(setMemberStatusCmd("deactivate", "Deactivate a member", model.MemberStatusInactive))
	cmd.AddCommand(memberInvoiceCmd())

	return cmd
}

func memberInputFlags(cmd *cobra.Command, input *memberFlagValues) {
	cmd.Flags().StringVar(&input.name, "name", "", "full name")
	cmd.Flags().StringVar(&input.phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&input.cnic, "cnic", "", "national id")
	cmd.Flags().StringVar(&input.address, "address", "", "address")
	cmd.Flags().StringVar(&input.joined, "joined", "", "joining date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&input.plan, "plan", "", "membership plan")
	cmd.Flags().Float64Var(&input.fee, "fee", 0, "monthly fee")
	cmd.Flags().StringVar(&input.notes, "notes", "", "notes")
}

type memberFlagValues struct {
	name    string
	phone   string
	cnic    string
	address string
	joined  string
	plan    string
	fee     float64
	notes   string
}

func addMemberCmd() *cobra.Command {
	var flags memberFlagValues

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Enroll a new member",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			joined, err := parseAsOf(flags.joined)
			if err != nil {
				return err
			}

			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			member, err := ledger.NewRoster(s).Add(ctx, ledger.MemberInput{
				FullName:       flags.name,
				PhoneNumber:    flags.phone,
				CNIC:           flags.cnic,
				Address:        flags.address,
				JoiningDate:    joined,
				MembershipPlan: flags.plan,
				MonthlyFee:     flags.fee,
				Notes:          flags.notes,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Member %s enrolled (id %s)", member.FullName, member.ID)))
			return nil
		},
	}

	memberInputFlags(cmd, &flags)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("fee")
	return cmd
}

func listMembersCmd() *cobra.Command {
	var (
		search string
		status string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List members",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			var filter model.MemberStatus
			switch status {
			case "all", "":
			case string(model.MemberStatusActive), string(model.MemberStatusInactive):
				filter = model.MemberStatus(status)
			default:
				return fmt.Errorf("invalid status %q (want Active, Inactive, or all)", status)
			}

			members := ledger.NewRoster(s).Search(search, filter)
			if len(members) == 0 {
				fmt.Println(cli.InfoStyle.Render("No members found."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "ID\tName\tPhone\tJoined\tMonthly Fee\tStatus")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 8), strings.Repeat("-", 20), strings.Repeat("-", 12),
				strings.Repeat("-", 10), strings.Repeat("-", 11), strings.Repeat("-", 8))
			for _, m := range members {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					shortID(m.ID), m.FullName, m.PhoneNumber, m.JoiningDate.String(),
					money(s, m.MonthlyFee), m.Status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "match name or phone number")
	cmd.Flags().StringVar(&status, "status", "all", "filter by status (Active, Inactive, all)")
	return cmd
}

func showMemberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <member-id>",
		Short: "Show a member's profile and fee history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			member := s.MemberByID(args[0])
			if member == nil {
				return fmt.Errorf("member %s not found", args[0])
			}

			stmt, err := ledger.NewFeeLedger(s).MemberStatement(member.ID)
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render(member.FullName))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Phone:\t%s\n", orNA(member.PhoneNumber))
			fmt.Fprintf(w, "CNIC:\t%s\n", orNA(member.CNIC))
			fmt.Fprintf(w, "Address:\t%s\n", orNA(member.Address))
			fmt.Fprintf(w, "Joined:\t%s\n", member.JoiningDate.String())
			fmt.Fprintf(w, "Plan:\t%s\n", orNA(member.MembershipPlan))
			fmt.Fprintf(w, "Monthly fee:\t%s\n", money(s, member.MonthlyFee))
			fmt.Fprintf(w, "Status:\t%s\n", member.Status)
			fmt.Fprintf(w, "Billed:\t%s\n", money(s, stmt.TotalBilled))
			fmt.Fprintf(w, "Received:\t%s\n", money(s, stmt.TotalReceived))
			fmt.Fprintf(w, "Outstanding:\t%s\n", money(s, stmt.Outstanding))
			w.Flush()

			if len(stmt.History) == 0 {
				fmt.Println(cli.InfoStyle.Render("No fee records found."))
				return nil
			}

			fmt.Println()
			hw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer hw.Flush()
			fmt.Fprintln(hw, "Fee ID\tMonth\tAmount\tStatus\tDate Paid\tMethod\tNotes")
			for _, f := range stmt.History {
				fmt.Fprintf(hw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					shortID(f.ID), f.Month().String(), money(s, f.Amount), f.Status,
					orDash(f.DatePaid.String()), orDash(f.PaymentMethod), orDash(f.Notes))
			}
			return nil
		},
	}
}

func updateMemberCmd() *cobra.Command {
	var flags memberFlagValues

	cmd := &cobra.Command{
		Use:   "update <member-id>",
		Short: "Update a member's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			member := s.MemberByID(args[0])
			if member == nil {
				return fmt.Errorf("member %s not found", args[0])
			}

			// Start from the current record; only flags that were set change.
			input := ledger.MemberInput{
				FullName:       member.FullName,
				PhoneNumber:    member.PhoneNumber,
				CNIC:           member.CNIC,
				Address:        member.Address,
				JoiningDate:    member.JoiningDate,
				MembershipPlan: member.MembershipPlan,
				MonthlyFee:     member.MonthlyFee,
				Notes:          member.Notes,
			}
			if cmd.Flags().Changed("name") {
				input.FullName = flags.name
			}
			if cmd.Flags().Changed("phone") {
				input.PhoneNumber = flags.phone
			}
			if cmd.Flags().Changed("cnic") {
				input.CNIC = flags.cnic
			}
			if cmd.Flags().Changed("address") {
				input.Address = flags.address
			}
			if cmd.Flags().Changed("joined") {
				joined, parseErr := model.ParseDate(flags.joined)
				if parseErr != nil {
					return parseErr
				}
				input.JoiningDate = joined
			}
			if cmd.Flags().Changed("plan") {
				input.MembershipPlan = flags.plan
			}
			if cmd.Flags().Changed("fee") {
				input.MonthlyFee = flags.fee
			}
			if cmd.Flags().Changed("notes") {
				input.Notes = flags.notes
			}

			if _, err := ledger.NewRoster(s).Update(ctx, args[0], input); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Member updated."))
			return nil
		},
	}

	memberInputFlags(cmd, &flags)
	return cmd
}

func setMemberStatusCmd(use, short string, status model.MemberStatus) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   use + " <member-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			member := s.MemberByID(args[0])
			if member == nil {
				return fmt.Errorf("member %s not found", args[0])
			}

			if status == model.MemberStatusInactive {
				ok, confirmErr := confirm(cmd, assumeYes,
					fmt.Sprintf("Deactivate %s?", member.FullName))
				if confirmErr != nil {
					return confirmErr
				}
				if !ok {
					fmt.Println(cli.InfoStyle.Render("Aborted."))
					return nil
				}
			}

			if _, err := ledger.NewRoster(s).SetStatus(ctx, args[0], status); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Member status updated to %s.", status)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation")
	return cmd
}

func memberInvoiceCmd() *cobra.Command {
	var feeID string

	cmd := &cobra.Command{
		Use:   "invoice <member-id>",
		Short: "Print an invoice for a member's unpaid dues",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			asOf, err := parseAsOf("")
			if err != nil {
				return err
			}

			inv, err := report.BuildInvoice(s.Members, s.Fees, args[0], feeID, asOf)
			if err != nil {
				return err
			}

			printInvoice(s, inv)
			return nil
		},
	}

	cmd.Flags().StringVar(&feeID, "fee", "", "invoice a single fee record instead of all unpaid dues")
	return cmd
}

func printInvoice(s *store.Store, inv *report.Invoice) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s\n%s | Contact: %s\n\n",
		s.Settings.GymName, s.Settings.GymAddress, s.Settings.GymContact))
	b.WriteString(inv.Title + "\n")
	b.WriteString(fmt.Sprintf("Invoice date: %s\n", inv.Issued.String()))
	b.WriteString(fmt.Sprintf("Member ID: %s\n", shortID(inv.Member.ID)))
	b.WriteString(fmt.Sprintf("Billed to: %s (%s)\n\n", inv.Member.FullName, inv.Member.PhoneNumber))

	if len(inv.Lines) == 0 {
		b.WriteString("Nothing outstanding.\n")
	}
	for i, f := range inv.Lines {
		status := "UNPAID"
		if f.IsPaid() {
			status = "PAID on " + f.DatePaid.String()
		}
		b.WriteString(fmt.Sprintf("%d. %s Membership Fee (%s)  %s\n",
			i+1, f.Month().String(), status, money(s, f.Amount)))
	}
	b.WriteString(fmt.Sprintf("\nTOTAL: %s\n", money(s, inv.Total)))

	fmt.Println(cli.RenderBox("Invoice", b.String()))
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "---"
	}
	return s
}
