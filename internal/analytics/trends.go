package analytics

import (
	"gymkeeper/internal/model"
)

// TrendWindow is how many trailing months the trend series covers, the
// current month included.
const TrendWindow = 6

// TrendPoint is one month's aggregate in the trend series. Income counts
// fees by the date they were actually paid, not their billing month.
type TrendPoint struct {
	Month      model.MonthKey
	Income     float64
	Expense    float64
	Net        float64
	NewMembers int
}

// TrendSeries computes the trailing six-month series ending at the month
// containing asOf, oldest first. The series is dense: months with no
// activity appear with zero values.
func TrendSeries(members []model.Member, fees []model.Fee, finance []model.FinanceRecord, asOf model.Date) []TrendPoint {
	current := model.MonthOfDate(asOf)

	points := make([]TrendPoint, TrendWindow)
	slot := make(map[model.MonthKey]*TrendPoint, TrendWindow)
	for i := 0; i < TrendWindow; i++ {
		month := current.AddMonths(i - TrendWindow + 1)
		points[i] = TrendPoint{Month: month}
		slot[month] = &points[i]
	}

	for i := range fees {
		f := &fees[i]
		if !f.IsPaid() || f.DatePaid.IsZero() {
			continue
		}
		if p, ok := slot[model.MonthOfDate(f.DatePaid)]; ok {
			p.Income += f.Amount
		}
	}

	for i := range finance {
		r := &finance[i]
		p, ok := slot[model.MonthOfDate(r.Date)]
		if !ok {
			continue
		}
		switch r.Type {
		case model.RecordTypeIncome:
			p.Income += r.Amount
		case model.RecordTypeExpense:
			p.Expense += r.Amount
		}
	}

	for i := range members {
		if members[i].JoiningDate.IsZero() {
			continue
		}
		if p, ok := slot[model.MonthOfDate(members[i].JoiningDate)]; ok {
			p.NewMembers++
		}
	}

	for i := range points {
		points[i].Net = points[i].Income - points[i].Expense
	}
	return points
}
