package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymkeeper/internal/model"
)

func TestComputeMetrics(t *testing.T) {
	members := []model.Member{
		{ID: "m1", FullName: "Alice", Status: model.MemberStatusActive},
		{ID: "m2", FullName: "Bob", Status: model.MemberStatusActive},
		{ID: "m3", FullName: "Carol", Status: model.MemberStatusInactive},
	}

	fees := []model.Fee{
		paidFee("m1", 2024, 0, 100, model.NewDate(2024, time.January, 5)),
		paidFee("m2", 2024, 0, 60, model.NewDate(2024, time.January, 8)),
		paidFee("m3", 2024, 1, 40, model.NewDate(2024, time.February, 2)),
		unpaidFee("m2", 2024, 1, 60),
	}

	finance := []model.FinanceRecord{
		{ID: "r1", Type: model.RecordTypeIncome, Date: model.NewDate(2024, time.February, 10), Category: "Merch", Amount: 50},
		{ID: "r2", Type: model.RecordTypeExpense, Date: model.NewDate(2024, time.January, 15), Category: "Rent", Amount: 30},
	}

	m := ComputeMetrics(members, fees, finance)

	// (100 + 60 + 40 paid fees + 50 other income) / 2 active members
	assert.Equal(t, 125.0, m.AverageRevenuePerActiveMember)

	require.NotNil(t, m.MostProfitableMonth)
	assert.Equal(t, model.MonthKey{Year: 2024, Index: 0}, m.MostProfitableMonth.Month)
	assert.Equal(t, 130.0, m.MostProfitableMonth.Net)

	require.NotNil(t, m.TopPayer)
	assert.Equal(t, "Alice", m.TopPayer.FullName)
	assert.Equal(t, 100.0, m.TopPayer.TotalPaid)
}

func TestComputeMetricsNoProfit(t *testing.T) {
	finance := []model.FinanceRecord{
		{ID: "r1", Type: model.RecordTypeExpense, Date: model.NewDate(2024, time.January, 15), Category: "Rent", Amount: 900},
	}

	m := ComputeMetrics(nil, nil, finance)
	assert.Nil(t, m.MostProfitableMonth)
	assert.Nil(t, m.TopPayer)
	assert.Equal(t, 0.0, m.AverageRevenuePerActiveMember)
}

func TestComputeMetricsTies(t *testing.T) {
	t.Run("tied months keep the earliest", func(t *testing.T) {
		fees := []model.Fee{
			paidFee("m1", 2024, 0, 50, model.NewDate(2024, time.January, 5)),
			paidFee("m1", 2024, 1, 50, model.NewDate(2024, time.February, 5)),
		}

		m := ComputeMetrics(nil, fees, nil)
		require.NotNil(t, m.MostProfitableMonth)
		assert.Equal(t, model.MonthKey{Year: 2024, Index: 0}, m.MostProfitableMonth.Month)
	})

	t.Run("tied payers keep the first enrolled", func(t *testing.T) {
		members := []model.Member{
			{ID: "m1", FullName: "Alice", Status: model.MemberStatusActive},
			{ID: "m2", FullName: "Bob", Status: model.MemberStatusActive},
		}
		fees := []model.Fee{
			paidFee("m1", 2024, 0, 50, model.NewDate(2024, time.January, 5)),
			paidFee("m2", 2024, 0, 50, model.NewDate(2024, time.January, 6)),
		}

		m := ComputeMetrics(members, fees, nil)
		require.NotNil(t, m.TopPayer)
		assert.Equal(t, "Alice", m.TopPayer.FullName)
	})
}

func TestComputeMetricsOrphanFees(t *testing.T) {
	members := []model.Member{
		{ID: "m1", FullName: "Alice", Status: model.MemberStatusActive},
	}
	fees := []model.Fee{
		paidFee("m1", 2024, 0, 50, model.NewDate(2024, time.January, 5)),
		// A fee for a deleted member: revenue counts, top payer ignores it.
		paidFee("ghost", 2024, 0, 500, model.NewDate(2024, time.January, 6)),
	}

	m := ComputeMetrics(members, fees, nil)
	assert.Equal(t, 550.0, m.AverageRevenuePerActiveMember)
	require.NotNil(t, m.TopPayer)
	assert.Equal(t, "Alice", m.TopPayer.FullName)
}
