package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gymkeeper/internal/cli"
	"gymkeeper/internal/export"
)

func backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and restore the gym database",
	}

	cmd.AddCommand(exportBackupCmd())
	cmd.AddCommand(exportCSVCmd())
	cmd.AddCommand(restoreBackupCmd())

	return cmd
}

func exportBackupCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a full JSON backup of all collections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			data, err := export.MarshalBackup(s.Members, s.Fees, s.Finance, s.Settings)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = fmt.Sprintf("gym_backup_%s.json", time.Now().Format("2006-01-02"))
			}
			if err := os.WriteFile(outPath, data, 0600); err != nil {
				return fmt.Errorf("failed to write backup: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Backup written to " + outPath))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default gym_backup_<date>.json)")
	return cmd
}

func exportCSVCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "csv <members|fees|finance>",
		Short: "Export one collection as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			if outPath == "" {
				outPath = args[0] + "_export.csv"
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outPath, err)
			}
			defer f.Close()

			switch args[0] {
			case "members":
				err = export.MembersCSV(f, s.Members)
			case "fees":
				err = export.FeesCSV(f, s.Fees)
			case "finance":
				err = export.FinanceCSV(f, s.Finance)
			default:
				return fmt.Errorf("unknown collection %q (want members, fees, or finance)", args[0])
			}
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Data exported to " + outPath))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <collection>_export.csv)")
	return cmd
}

func restoreBackupCmd() *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "restore <backup.json>",
		Short: "Replace ALL data from a JSON backup",
		Long: `Validate a backup file and overwrite every collection with its
contents. The backup must contain all four collections; nothing is written
unless the whole file validates.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read backup file: %w", err)
			}

			backup, err := export.ParseBackup(data)
			if err != nil {
				return err
			}

			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			ok, err := confirm(cmd, assumeYes,
				"WARNING: restoring will overwrite ALL current data. Continue?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println(cli.InfoStyle.Render("Aborted."))
				return nil
			}

			if err := s.RestoreAll(ctx, backup.Members, backup.Fees, backup.Finance, backup.Settings); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Data restored: %d member(s), %d fee(s), %d finance record(s).",
				len(backup.Members), len(backup.Fees), len(backup.Finance))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation")
	return cmd
}
