// Package export serializes the record collections: per-collection CSV files
// and the full JSON backup, plus backup parsing for restore.
package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gymkeeper/internal/model"
)

// ErrNoRecords is returned when asked to export an empty collection.
var ErrNoRecords = errors.New("no records to export")

// MembersCSV writes the member collection as CSV.
func MembersCSV(w io.Writer, members []model.Member) error {
	if len(members) == 0 {
		return ErrNoRecords
	}

	header := []string{"id", "fullName", "phoneNumber", "cnic", "address", "joiningDate", "membershipPlan", "monthlyFee", "status", "notes"}
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{
			m.ID, m.FullName, m.PhoneNumber, m.CNIC, m.Address,
			m.JoiningDate.String(), m.MembershipPlan, formatAmount(m.MonthlyFee),
			string(m.Status), m.Notes,
		})
	}
	return writeCSV(w, header, rows)
}

// FeesCSV writes the fee collection as CSV.
func FeesCSV(w io.Writer, fees []model.Fee) error {
	if len(fees) == 0 {
		return ErrNoRecords
	}

	header := []string{"id", "memberId", "monthIndex", "year", "amount", "status", "datePaid", "paymentMethod", "notes", "isManual"}
	rows := make([][]string, 0, len(fees))
	for _, f := range fees {
		rows = append(rows, []string{
			f.ID, f.MemberID, strconv.Itoa(f.MonthIndex), strconv.Itoa(f.Year),
			formatAmount(f.Amount), string(f.Status), f.DatePaid.String(),
			f.PaymentMethod, f.Notes, strconv.FormatBool(f.IsManual),
		})
	}
	return writeCSV(w, header, rows)
}

// FinanceCSV writes the finance record collection as CSV.
func FinanceCSV(w io.Writer, records []model.FinanceRecord) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	header := []string{"id", "type", "date", "category", "description", "amount"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ID, string(r.Type), r.Date.String(), r.Category, r.Description,
			formatAmount(r.Amount),
		})
	}
	return writeCSV(w, header, rows)
}

// writeCSV emits an unquoted header row, then data rows with every value
// double-quoted and embedded quotes doubled. That quoting matches what the
// app has always produced, so existing spreadsheets keep importing cleanly.
func writeCSV(w io.Writer, header []string, rows [][]string) error {
	if _, err := fmt.Fprintln(w, strings.Join(header, ",")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		quoted := make([]string, len(row))
		for i, value := range row {
			quoted[i] = `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
		}
		if _, err := fmt.Fprintln(w, strings.Join(quoted, ",")); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
