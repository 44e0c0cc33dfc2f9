// Package analytics derives dashboard metrics, trend series, and summary
// statistics from the record collections. Everything here is a pure function
// of its inputs; the reference date is always an explicit parameter so the
// results are deterministic under test.
package analytics

import (
	"gymkeeper/internal/model"
)

// Snapshot is the dashboard view for one reference date.
type Snapshot struct {
	AsOf model.Date

	TotalMembers    int
	ActiveMembers   int
	InactiveMembers int

	// Dues raised for the reference month, split by payment status. These
	// follow the billing month, not when money actually moved.
	CollectedThisMonthDues float64
	PendingThisMonthDues   float64

	// Cash actually received, keyed by payment date regardless of which
	// billing month the fee belongs to.
	TodayCollection float64
	MonthCollection float64

	OtherIncomeThisMonth float64
	ExpensesThisMonth    float64

	// NetResult is (collected dues + other income) - expenses for the
	// reference month. Negative means the gym ran at a loss.
	NetResult float64

	// OverdueMembersCount counts distinct members with at least one Unpaid
	// fee from a billing month before the reference month.
	OverdueMembersCount int
}

// Profit reports whether the month closed at or above break-even.
func (s *Snapshot) Profit() bool {
	return s.NetResult >= 0
}

// BuildSnapshot computes the dashboard metrics as of the given date.
func BuildSnapshot(members []model.Member, fees []model.Fee, finance []model.FinanceRecord, asOf model.Date) Snapshot {
	snap := Snapshot{AsOf: asOf}
	month := model.MonthOfDate(asOf)

	snap.TotalMembers = len(members)
	for i := range members {
		if members[i].IsActive() {
			snap.ActiveMembers++
		}
	}
	snap.InactiveMembers = snap.TotalMembers - snap.ActiveMembers

	overdue := make(map[string]bool)
	for i := range fees {
		f := &fees[i]

		if f.Month() == month {
			if f.IsPaid() {
				snap.CollectedThisMonthDues += f.Amount
			} else {
				snap.PendingThisMonthDues += f.Amount
			}
		}

		if f.IsPaid() && !f.DatePaid.IsZero() {
			if f.DatePaid.Equal(asOf) {
				snap.TodayCollection += f.Amount
			}
			if month.Contains(f.DatePaid) {
				snap.MonthCollection += f.Amount
			}
		}

		if !f.IsPaid() && f.Month().Before(month) {
			overdue[f.MemberID] = true
		}
	}
	snap.OverdueMembersCount = len(overdue)

	for i := range finance {
		r := &finance[i]
		if !month.Contains(r.Date) {
			continue
		}
		switch r.Type {
		case model.RecordTypeIncome:
			snap.OtherIncomeThisMonth += r.Amount
		case model.RecordTypeExpense:
			snap.ExpensesThisMonth += r.Amount
		}
	}

	snap.NetResult = snap.CollectedThisMonthDues + snap.OtherIncomeThisMonth - snap.ExpensesThisMonth
	return snap
}
