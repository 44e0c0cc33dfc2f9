// Package ledger implements the record lifecycle operations: member
// enrollment, monthly due generation, payment transitions, and ad-hoc
// income/expense entries. Every mutation persists the whole affected
// collection before returning.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"gymkeeper/internal/common"
	"gymkeeper/internal/model"
	"gymkeeper/internal/store"
)

// FeeLedger manages monthly fee records.
type FeeLedger struct {
	store    *store.Store
	validate *validator.Validate
}

// NewFeeLedger creates a fee ledger over the given store.
func NewFeeLedger(s *store.Store) *FeeLedger {
	return &FeeLedger{
		store:    s,
		validate: validator.New(),
	}
}

// GenerateMonthlyDues creates one Unpaid fee for every active member that
// does not already have a fee for the given month, billing each member's
// monthly fee. Re-running for the same month creates nothing, and existing
// fees are never touched. The optional progress callback fires once per
// active member examined.
func (l *FeeLedger) GenerateMonthlyDues(ctx context.Context, month model.MonthKey, progress func(model.Member)) (int, error) {
	existing := make(map[string]bool, len(l.store.Fees))
	for i := range l.store.Fees {
		f := &l.store.Fees[i]
		if f.Year == month.Year && f.MonthIndex == month.Index {
			existing[f.MemberID] = true
		}
	}

	created := 0
	for i := range l.store.Members {
		member := l.store.Members[i]
		if !member.IsActive() {
			continue
		}
		if progress != nil {
			progress(member)
		}
		if existing[member.ID] {
			continue
		}

		l.store.Fees = append(l.store.Fees, model.Fee{
			ID:         uuid.NewString(),
			MemberID:   member.ID,
			MonthIndex: month.Index,
			Year:       month.Year,
			Amount:     member.MonthlyFee,
			Status:     model.FeeStatusUnpaid,
			IsManual:   false,
		})
		created++
	}

	if created > 0 {
		if err := l.store.PersistFees(ctx); err != nil {
			return 0, fmt.Errorf("failed to persist fees: %w", err)
		}
	}

	slog.Info("generated monthly dues", "month", month.String(), "created", created)
	return created, nil
}

// ManualFeeInput describes an ad-hoc fee record. The payment fields only
// apply when Paid is true.
type ManualFeeInput struct {
	MemberID      string  `validate:"required"`
	Month         model.MonthKey
	Amount        float64 `validate:"gt=0"`
	Paid          bool
	DatePaid      model.Date
	PaymentMethod string
	Notes         string
}

// AddManualFee records a fee outside the due-generation run. It fails with
// ErrDuplicateFee when the member already has a fee for that month, whatever
// its amount or status.
func (l *FeeLedger) AddManualFee(ctx context.Context, input ManualFeeInput) (*model.Fee, error) {
	if err := l.validate.Struct(input); err != nil {
		if input.Amount <= 0 {
			return nil, common.ErrInvalidAmount
		}
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	for i := range l.store.Fees {
		f := &l.store.Fees[i]
		if f.MemberID == input.MemberID && f.Year == input.Month.Year && f.MonthIndex == input.Month.Index {
			return nil, fmt.Errorf("%w: %s", common.ErrDuplicateFee, input.Month.String())
		}
	}

	fee := model.Fee{
		ID:         uuid.NewString(),
		MemberID:   input.MemberID,
		MonthIndex: input.Month.Index,
		Year:       input.Month.Year,
		Amount:     input.Amount,
		Status:     model.FeeStatusUnpaid,
		IsManual:   true,
	}
	if input.Paid {
		fee.Status = model.FeeStatusPaid
		fee.DatePaid = input.DatePaid
		fee.PaymentMethod = input.PaymentMethod
		fee.Notes = input.Notes
	}

	l.store.Fees = append(l.store.Fees, fee)
	if err := l.store.PersistFees(ctx); err != nil {
		return nil, fmt.Errorf("failed to persist fees: %w", err)
	}

	slog.Info("added manual fee", "member", input.MemberID, "month", input.Month.String(), "paid", input.Paid)
	return &l.store.Fees[len(l.store.Fees)-1], nil
}

// MarkPaid transitions a fee to Paid and records the payment details.
// Re-marking an already-Paid fee overwrites the payment fields; there is no
// transition back to Unpaid.
func (l *FeeLedger) MarkPaid(ctx context.Context, feeID string, datePaid model.Date, paymentMethod, notes string) (*model.Fee, error) {
	fee := l.store.FeeByID(feeID)
	if fee == nil {
		return nil, fmt.Errorf("fee %s: %w", feeID, common.ErrNotFound)
	}

	fee.Status = model.FeeStatusPaid
	fee.DatePaid = datePaid
	fee.PaymentMethod = paymentMethod
	fee.Notes = notes

	if err := l.store.PersistFees(ctx); err != nil {
		return nil, fmt.Errorf("failed to persist fees: %w", err)
	}

	slog.Info("marked fee paid", "fee", feeID, "date", datePaid.String(), "method", paymentMethod)
	return fee, nil
}

// DeleteFee removes a fee record. The removal has no cascading effects.
func (l *FeeLedger) DeleteFee(ctx context.Context, feeID string) error {
	kept := l.store.Fees[:0]
	found := false
	for _, f := range l.store.Fees {
		if f.ID == feeID {
			found = true
			continue
		}
		kept = append(kept, f)
	}
	if !found {
		return fmt.Errorf("fee %s: %w", feeID, common.ErrNotFound)
	}

	l.store.Fees = kept
	if err := l.store.PersistFees(ctx); err != nil {
		return fmt.Errorf("failed to persist fees: %w", err)
	}

	slog.Info("deleted fee", "fee", feeID)
	return nil
}

// Statement summarizes one member's billing position.
type Statement struct {
	MemberID      string
	TotalBilled   float64
	TotalReceived float64
	Outstanding   float64
	History       []model.Fee
}

// MemberStatement computes a member's billed/received/outstanding totals and
// their fee history, most recent billing month first.
func (l *FeeLedger) MemberStatement(memberID string) (*Statement, error) {
	if l.store.MemberByID(memberID) == nil {
		return nil, fmt.Errorf("member %s: %w", memberID, common.ErrNotFound)
	}

	stmt := &Statement{MemberID: memberID}
	for _, f := range l.store.Fees {
		if f.MemberID != memberID {
			continue
		}
		stmt.TotalBilled += f.Amount
		if f.IsPaid() {
			stmt.TotalReceived += f.Amount
		}
		stmt.History = append(stmt.History, f)
	}
	stmt.Outstanding = stmt.TotalBilled - stmt.TotalReceived

	sort.Slice(stmt.History, func(i, j int) bool {
		return stmt.History[j].Month().Before(stmt.History[i].Month())
	})
	return stmt, nil
}

// FeeFilter selects fees for listing.
type FeeFilter struct {
	Month  *model.MonthKey
	Status model.FeeStatus // empty means all
}

// ListFees returns fees matching the filter, Unpaid before Paid, then by
// member name. Orphan fees sort after named members.
func (l *FeeLedger) ListFees(filter FeeFilter) []model.Fee {
	index := l.store.MemberIndex()

	var out []model.Fee
	for _, f := range l.store.Fees {
		if filter.Status != "" && f.Status != filter.Status {
			continue
		}
		if filter.Month != nil && (f.Year != filter.Month.Year || f.MonthIndex != filter.Month.Index) {
			continue
		}
		out = append(out, f)
	}

	name := func(f *model.Fee) (string, bool) {
		if m, ok := index[f.MemberID]; ok {
			return m.FullName, true
		}
		return "", false
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Status != out[j].Status {
			return out[i].Status == model.FeeStatusUnpaid
		}
		ni, oki := name(&out[i])
		nj, okj := name(&out[j])
		if oki != okj {
			// orphan fees sort last
			return oki
		}
		return ni < nj
	})
	return out
}
