package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymkeeper/internal/model"
)

func TestBuildMonthly(t *testing.T) {
	month := model.MonthKey{Year: 2024, Index: 2} // March

	members := []model.Member{
		{ID: "m1", FullName: "Alice", Status: model.MemberStatusActive},
	}

	fees := []model.Fee{
		// February due paid in March: belongs to March's report.
		{ID: "f1", MemberID: "m1", Year: 2024, MonthIndex: 1, Amount: 50,
			Status: model.FeeStatusPaid, DatePaid: model.NewDate(2024, time.March, 2)},
		// March due paid in April: not in March's report.
		{ID: "f2", MemberID: "m1", Year: 2024, MonthIndex: 2, Amount: 50,
			Status: model.FeeStatusPaid, DatePaid: model.NewDate(2024, time.April, 1)},
		// Unpaid, never in the report.
		{ID: "f3", MemberID: "m1", Year: 2024, MonthIndex: 2, Amount: 50,
			Status: model.FeeStatusUnpaid},
		// Paid fee for a deleted member.
		{ID: "f4", MemberID: "ghost", Year: 2024, MonthIndex: 2, Amount: 30,
			Status: model.FeeStatusPaid, DatePaid: model.NewDate(2024, time.March, 20)},
	}

	finance := []model.FinanceRecord{
		{ID: "r1", Type: model.RecordTypeIncome, Date: model.NewDate(2024, time.March, 5), Category: "Merch", Amount: 40},
		{ID: "r2", Type: model.RecordTypeExpense, Date: model.NewDate(2024, time.March, 10), Category: "Rent", Amount: 100},
		{ID: "r3", Type: model.RecordTypeIncome, Date: model.NewDate(2024, time.April, 5), Category: "Merch", Amount: 99},
	}

	r := BuildMonthly(members, fees, finance, month)

	require.Len(t, r.FeesCollected, 2)
	assert.Equal(t, "Alice", r.FeesCollected[0].MemberName)
	assert.Equal(t, "N/A", r.FeesCollected[1].MemberName)
	assert.Equal(t, 80.0, r.TotalFeesCollected)

	require.Len(t, r.OtherIncome, 1)
	assert.Equal(t, 40.0, r.TotalOtherIncome)
	require.Len(t, r.Expenses, 1)
	assert.Equal(t, 100.0, r.TotalExpenses)

	assert.Equal(t, 120.0, r.GrandTotalIncome)
	assert.Equal(t, 20.0, r.NetResult)
	assert.True(t, r.Profit())
}

func TestBuildMonthlyEmptyMonth(t *testing.T) {
	r := BuildMonthly(nil, nil, nil, model.MonthKey{Year: 2024, Index: 0})

	assert.Empty(t, r.FeesCollected)
	assert.Equal(t, 0.0, r.NetResult)
	assert.True(t, r.Profit())
}
