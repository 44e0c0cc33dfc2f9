package analytics

import (
	"sort"

	"gymkeeper/internal/model"
)

// MonthNet is one calendar month's all-time income minus expenses.
type MonthNet struct {
	Month model.MonthKey
	Net   float64
}

// TopPayer is the member who has paid the most in fees, all-time.
type TopPayer struct {
	MemberID  string
	FullName  string
	TotalPaid float64
}

// Metrics are the all-time derived statistics shown on the reports page.
// MostProfitableMonth is nil when no month has closed with a positive net;
// TopPayer is nil when no known member has paid anything.
type Metrics struct {
	MostProfitableMonth           *MonthNet
	TopPayer                      *TopPayer
	AverageRevenuePerActiveMember float64
}

// ComputeMetrics derives the all-time summary statistics. Income and expense
// follow the same definitions as the trend series but over unbounded
// history. Fees pointing at unknown members still count toward revenue but
// cannot win top payer.
func ComputeMetrics(members []model.Member, fees []model.Fee, finance []model.FinanceRecord) Metrics {
	var metrics Metrics

	activeCount := 0
	for i := range members {
		if members[i].IsActive() {
			activeCount++
		}
	}

	var totalRevenue float64
	monthly := make(map[model.MonthKey]float64)
	paidByMember := make(map[string]float64)

	for i := range fees {
		f := &fees[i]
		if !f.IsPaid() {
			continue
		}
		totalRevenue += f.Amount
		paidByMember[f.MemberID] += f.Amount
		if !f.DatePaid.IsZero() {
			monthly[model.MonthOfDate(f.DatePaid)] += f.Amount
		}
	}

	for i := range finance {
		r := &finance[i]
		switch r.Type {
		case model.RecordTypeIncome:
			totalRevenue += r.Amount
			monthly[model.MonthOfDate(r.Date)] += r.Amount
		case model.RecordTypeExpense:
			monthly[model.MonthOfDate(r.Date)] -= r.Amount
		}
	}

	if activeCount > 0 {
		metrics.AverageRevenuePerActiveMember = totalRevenue / float64(activeCount)
	}

	// Oldest month first, so a tied net keeps the earliest month.
	monthKeys := make([]model.MonthKey, 0, len(monthly))
	for m := range monthly {
		monthKeys = append(monthKeys, m)
	}
	sort.Slice(monthKeys, func(i, j int) bool { return monthKeys[i].Before(monthKeys[j]) })

	for _, m := range monthKeys {
		net := monthly[m]
		if net <= 0 {
			continue
		}
		if metrics.MostProfitableMonth == nil || net > metrics.MostProfitableMonth.Net {
			metrics.MostProfitableMonth = &MonthNet{Month: m, Net: net}
		}
	}

	// Members are scanned in roster order, so ties keep the first enrolled.
	for i := range members {
		m := &members[i]
		paid := paidByMember[m.ID]
		if paid <= 0 {
			continue
		}
		if metrics.TopPayer == nil || paid > metrics.TopPayer.TotalPaid {
			metrics.TopPayer = &TopPayer{
				MemberID:  m.ID,
				FullName:  m.FullName,
				TotalPaid: paid,
			}
		}
	}

	return metrics
}
