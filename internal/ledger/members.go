package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"gymkeeper/internal/common"
	"gymkeeper/internal/model"
	"gymkeeper/internal/store"
)

// Roster manages member enrollment. Members are only ever soft-deactivated;
// their fee history stays attached to their id forever.
type Roster struct {
	store    *store.Store
	validate *validator.Validate
}

// NewRoster creates a roster over the given store.
func NewRoster(s *store.Store) *Roster {
	return &Roster{
		store:    s,
		validate: validator.New(),
	}
}

// MemberInput carries the editable member fields.
type MemberInput struct {
	FullName       string `validate:"required"`
	PhoneNumber    string
	CNIC           string
	Address        string
	JoiningDate    model.Date `validate:"required"`
	MembershipPlan string
	MonthlyFee     float64 `validate:"gte=0"`
	Notes          string
}

// Add enrolls a new member with Active status.
func (r *Roster) Add(ctx context.Context, input MemberInput) (*model.Member, error) {
	if err := r.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	r.store.Members = append(r.store.Members, model.Member{
		ID:             uuid.NewString(),
		FullName:       input.FullName,
		PhoneNumber:    input.PhoneNumber,
		CNIC:           input.CNIC,
		Address:        input.Address,
		JoiningDate:    input.JoiningDate,
		MembershipPlan: input.MembershipPlan,
		MonthlyFee:     input.MonthlyFee,
		Status:         model.MemberStatusActive,
		Notes:          input.Notes,
	})
	if err := r.store.PersistMembers(ctx); err != nil {
		return nil, fmt.Errorf("failed to persist members: %w", err)
	}

	member := &r.store.Members[len(r.store.Members)-1]
	slog.Info("added member", "member", member.ID, "name", member.FullName)
	return member, nil
}

// Update replaces a member's editable fields in place. Status is not
// touched; use SetStatus for that.
func (r *Roster) Update(ctx context.Context, memberID string, input MemberInput) (*model.Member, error) {
	if err := r.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	member := r.store.MemberByID(memberID)
	if member == nil {
		return nil, fmt.Errorf("member %s: %w", memberID, common.ErrNotFound)
	}

	member.FullName = input.FullName
	member.PhoneNumber = input.PhoneNumber
	member.CNIC = input.CNIC
	member.Address = input.Address
	member.JoiningDate = input.JoiningDate
	member.MembershipPlan = input.MembershipPlan
	member.MonthlyFee = input.MonthlyFee
	member.Notes = input.Notes

	if err := r.store.PersistMembers(ctx); err != nil {
		return nil, fmt.Errorf("failed to persist members: %w", err)
	}

	slog.Info("updated member", "member", memberID)
	return member, nil
}

// SetStatus activates or deactivates a member. Deactivation is the only way
// a member leaves the roster; records are never physically deleted.
func (r *Roster) SetStatus(ctx context.Context, memberID string, status model.MemberStatus) (*model.Member, error) {
	member := r.store.MemberByID(memberID)
	if member == nil {
		return nil, fmt.Errorf("member %s: %w", memberID, common.ErrNotFound)
	}

	member.Status = status
	if err := r.store.PersistMembers(ctx); err != nil {
		return nil, fmt.Errorf("failed to persist members: %w", err)
	}

	slog.Info("updated member status", "member", memberID, "status", status)
	return member, nil
}

// Search returns members whose name or phone number contains the query,
// optionally narrowed to one status. An empty status matches all.
func (r *Roster) Search(query string, status model.MemberStatus) []model.Member {
	query = strings.ToLower(query)

	var out []model.Member
	for _, m := range r.store.Members {
		if status != "" && m.Status != status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(m.FullName), query) &&
			!strings.Contains(m.PhoneNumber, query) {
			continue
		}
		out = append(out, m)
	}
	return out
}
