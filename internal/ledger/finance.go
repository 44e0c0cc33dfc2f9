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

// FinanceLedger manages ad-hoc income and expense entries. Unlike fees there
// is no duplicate prevention: two identical expenses on the same day are two
// real expenses.
type FinanceLedger struct {
	store    *store.Store
	validate *validator.Validate
}

// NewFinanceLedger creates a finance ledger over the given store.
func NewFinanceLedger(s *store.Store) *FinanceLedger {
	return &FinanceLedger{
		store:    s,
		validate: validator.New(),
	}
}

// RecordInput describes a new income or expense entry.
type RecordInput struct {
	Type        model.RecordType `validate:"required,oneof=Income Expense"`
	Date        model.Date       `validate:"required"`
	Category    string           `validate:"required"`
	Description string
	Amount      float64 `validate:"gt=0"`
}

// AddRecord appends a finance record. Records are immutable once created.
func (l *FinanceLedger) AddRecord(ctx context.Context, input RecordInput) (*model.FinanceRecord, error) {
	if err := l.validate.Struct(input); err != nil {
		if input.Amount <= 0 {
			return nil, common.ErrInvalidAmount
		}
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	l.store.Finance = append(l.store.Finance, model.FinanceRecord{
		ID:          uuid.NewString(),
		Type:        input.Type,
		Date:        input.Date,
		Category:    input.Category,
		Description: input.Description,
		Amount:      input.Amount,
	})
	if err := l.store.PersistFinance(ctx); err != nil {
		return nil, fmt.Errorf("failed to persist finance records: %w", err)
	}

	slog.Info("added finance record", "type", input.Type, "category", input.Category, "amount", input.Amount)
	return &l.store.Finance[len(l.store.Finance)-1], nil
}

// DeleteRecord removes a finance record.
func (l *FinanceLedger) DeleteRecord(ctx context.Context, recordID string) error {
	kept := l.store.Finance[:0]
	found := false
	for _, r := range l.store.Finance {
		if r.ID == recordID {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return fmt.Errorf("finance record %s: %w", recordID, common.ErrNotFound)
	}

	l.store.Finance = kept
	if err := l.store.PersistFinance(ctx); err != nil {
		return fmt.Errorf("failed to persist finance records: %w", err)
	}

	slog.Info("deleted finance record", "record", recordID)
	return nil
}

// ListRecords returns all finance records, newest first.
func (l *FinanceLedger) ListRecords() []model.FinanceRecord {
	out := make([]model.FinanceRecord, len(l.store.Finance))
	copy(out, l.store.Finance)
	sort.Slice(out, func(i, j int) bool {
		return out[j].Date.Time().Before(out[i].Date.Time())
	})
	return out
}
