package model

// FeeStatus is the payment state of a fee record.
type FeeStatus string

// Fee statuses. A Paid fee never reverts to Unpaid.
const (
	FeeStatusUnpaid FeeStatus = "Unpaid"
	FeeStatusPaid   FeeStatus = "Paid"
)

// Fee is a billing record for one member for one calendar month. At most one
// fee exists per (MemberID, Year, MonthIndex). The amount is fixed at
// creation; only the payment fields change afterwards.
type Fee struct {
	ID            string    `json:"id"`
	MemberID      string    `json:"memberId"`
	MonthIndex    int       `json:"monthIndex"`
	Year          int       `json:"year"`
	Amount        float64   `json:"amount"`
	Status        FeeStatus `json:"status"`
	DatePaid      Date      `json:"datePaid"`
	PaymentMethod string    `json:"paymentMethod"`
	Notes         string    `json:"notes"`
	IsManual      bool      `json:"isManual"`
}

// Month returns the billing month this fee was raised for. Note this is
// distinct from DatePaid: a January due settled in February still belongs to
// January's billing month.
func (f *Fee) Month() MonthKey {
	return MonthKey{Year: f.Year, Index: f.MonthIndex}
}

// IsPaid reports whether the fee has been settled.
func (f *Fee) IsPaid() bool {
	return f.Status == FeeStatusPaid
}
