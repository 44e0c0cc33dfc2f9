package model

// RecordType distinguishes ad-hoc income from expenses.
type RecordType string

// Finance record types.
const (
	RecordTypeIncome  RecordType = "Income"
	RecordTypeExpense RecordType = "Expense"
)

// FinanceRecord is an ad-hoc income or expense entry outside the membership
// fee ledger (supplement sales, equipment purchases, utility bills). Records
// are immutable once created; corrections are delete-and-readd.
type FinanceRecord struct {
	ID          string     `json:"id"`
	Type        RecordType `json:"type" validate:"required"`
	Date        Date       `json:"date" validate:"required"`
	Category    string     `json:"category" validate:"required"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount" validate:"gt=0"`
}
