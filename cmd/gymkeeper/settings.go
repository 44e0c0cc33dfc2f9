package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gymkeeper/internal/cli"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change gym settings",
	}

	cmd.AddCommand(showSettingsCmd())
	cmd.AddCommand(setSettingsCmd())

	return cmd
}

func showSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintf(w, "Gym name:\t%s\n", s.Settings.GymName)
			fmt.Fprintf(w, "Address:\t%s\n", s.Settings.GymAddress)
			fmt.Fprintf(w, "Contact:\t%s\n", s.Settings.GymContact)
			fmt.Fprintf(w, "Currency symbol:\t%s\n", s.Settings.CurrencySymbol)
			fmt.Fprintf(w, "Dark mode:\t%t\n", s.Settings.DarkMode)
			return nil
		},
	}
}

func setSettingsCmd() *cobra.Command {
	var (
		gymName    string
		gymAddress string
		gymContact string
		symbol     string
		darkMode   bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			if cmd.Flags().Changed("gym-name") {
				s.Settings.GymName = gymName
			}
			if cmd.Flags().Changed("gym-address") {
				s.Settings.GymAddress = gymAddress
			}
			if cmd.Flags().Changed("gym-contact") {
				s.Settings.GymContact = gymContact
			}
			if cmd.Flags().Changed("currency") {
				s.Settings.CurrencySymbol = symbol
			}
			if cmd.Flags().Changed("dark-mode") {
				s.Settings.DarkMode = darkMode
			}

			if err := s.PersistSettings(ctx); err != nil {
				return fmt.Errorf("failed to persist settings: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Settings saved."))
			return nil
		},
	}

	cmd.Flags().StringVar(&gymName, "gym-name", "", "gym display name")
	cmd.Flags().StringVar(&gymAddress, "gym-address", "", "gym address")
	cmd.Flags().StringVar(&gymContact, "gym-contact", "", "gym contact")
	cmd.Flags().StringVar(&symbol, "currency", "", "currency symbol")
	cmd.Flags().BoolVar(&darkMode, "dark-mode", false, "dark mode preference")
	return cmd
}
