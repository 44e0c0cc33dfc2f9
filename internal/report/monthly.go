// Package report builds pure projections of the ledgers: the monthly
// financial report and member invoices. Nothing here mutates state.
package report

import (
	"gymkeeper/internal/model"
)

// CollectedFee is a paid fee joined with its member's name for display.
// MemberName is "N/A" when the fee's member no longer exists.
type CollectedFee struct {
	Fee        model.Fee
	MemberName string
}

// Monthly is the financial report for one calendar month. Fees are selected
// by payment date, so a January due paid in February shows up in February's
// report.
type Monthly struct {
	Month         model.MonthKey
	FeesCollected []CollectedFee
	OtherIncome   []model.FinanceRecord
	Expenses      []model.FinanceRecord

	TotalFeesCollected float64
	TotalOtherIncome   float64
	TotalExpenses      float64
	GrandTotalIncome   float64
	NetResult          float64
}

// Profit reports whether the month closed at or above break-even.
func (m *Monthly) Profit() bool {
	return m.NetResult >= 0
}

// BuildMonthly partitions the ledgers into the month's report.
func BuildMonthly(members []model.Member, fees []model.Fee, finance []model.FinanceRecord, month model.MonthKey) *Monthly {
	out := &Monthly{Month: month}

	index := make(map[string]string, len(members))
	for i := range members {
		index[members[i].ID] = members[i].FullName
	}

	for i := range fees {
		f := fees[i]
		if !f.IsPaid() || !month.Contains(f.DatePaid) {
			continue
		}
		name, ok := index[f.MemberID]
		if !ok {
			name = "N/A"
		}
		out.FeesCollected = append(out.FeesCollected, CollectedFee{Fee: f, MemberName: name})
		out.TotalFeesCollected += f.Amount
	}

	for i := range finance {
		r := finance[i]
		if !month.Contains(r.Date) {
			continue
		}
		switch r.Type {
		case model.RecordTypeIncome:
			out.OtherIncome = append(out.OtherIncome, r)
			out.TotalOtherIncome += r.Amount
		case model.RecordTypeExpense:
			out.Expenses = append(out.Expenses, r)
			out.TotalExpenses += r.Amount
		}
	}

	out.GrandTotalIncome = out.TotalFeesCollected + out.TotalOtherIncome
	out.NetResult = out.GrandTotalIncome - out.TotalExpenses
	return out
}
