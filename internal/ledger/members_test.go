package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymkeeper/internal/common"
	"gymkeeper/internal/model"
)

func TestRosterAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("enrolls active member", func(t *testing.T) {
		s := newTestStore(t)
		roster := NewRoster(s)

		member, err := roster.Add(ctx, MemberInput{
			FullName:       "Jane Doe",
			PhoneNumber:    "555-0001",
			JoiningDate:    model.NewDate(2024, time.February, 10),
			MembershipPlan: "Monthly",
			MonthlyFee:     55,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, member.ID)
		assert.Equal(t, model.MemberStatusActive, member.Status)
		assert.True(t, member.IsActive())
	})

	t.Run("requires a name", func(t *testing.T) {
		s := newTestStore(t)
		roster := NewRoster(s)

		_, err := roster.Add(ctx, MemberInput{
			JoiningDate: model.NewDate(2024, time.February, 10),
		})
		assert.ErrorIs(t, err, common.ErrValidation)
		assert.Empty(t, s.Members)
	})
}

func TestRosterUpdate(t *testing.T) {
	ctx := context.Background()

	s := newTestStore(t)
	roster := NewRoster(s)
	member := addTestMember(t, roster, "Jane Doe", 55)

	t.Run("replaces editable fields, keeps status", func(t *testing.T) {
		updated, err := roster.Update(ctx, member.ID, MemberInput{
			FullName:    "Jane Smith",
			PhoneNumber: "555-0002",
			JoiningDate: member.JoiningDate,
			MonthlyFee:  60,
		})
		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", updated.FullName)
		assert.Equal(t, 60.0, updated.MonthlyFee)
		assert.Equal(t, model.MemberStatusActive, updated.Status)
		assert.Equal(t, member.ID, updated.ID)
	})

	t.Run("unknown member", func(t *testing.T) {
		_, err := roster.Update(ctx, "nope", MemberInput{
			FullName:    "Anyone",
			JoiningDate: model.NewDate(2024, time.January, 1),
		})
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestRosterSetStatus(t *testing.T) {
	ctx := context.Background()

	s := newTestStore(t)
	roster := NewRoster(s)
	member := addTestMember(t, roster, "Jane Doe", 55)

	deactivated, err := roster.SetStatus(ctx, member.ID, model.MemberStatusInactive)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive())

	reactivated, err := roster.SetStatus(ctx, member.ID, model.MemberStatusActive)
	require.NoError(t, err)
	assert.True(t, reactivated.IsActive())

	_, err = roster.SetStatus(ctx, "nope", model.MemberStatusInactive)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRosterSearch(t *testing.T) {
	ctx := context.Background()

	s := newTestStore(t)
	roster := NewRoster(s)

	alice, err := roster.Add(ctx, MemberInput{
		FullName:    "Alice Johnson",
		PhoneNumber: "555-1234",
		JoiningDate: model.NewDate(2024, time.January, 1),
	})
	require.NoError(t, err)
	_, err = roster.Add(ctx, MemberInput{
		FullName:    "Bob Jones",
		PhoneNumber: "555-9876",
		JoiningDate: model.NewDate(2024, time.January, 1),
	})
	require.NoError(t, err)
	_, err = roster.SetStatus(ctx, alice.ID, model.MemberStatusInactive)
	require.NoError(t, err)

	t.Run("empty query matches all", func(t *testing.T) {
		assert.Len(t, roster.Search("", ""), 2)
	})

	t.Run("case-insensitive name match", func(t *testing.T) {
		out := roster.Search("alice", "")
		require.Len(t, out, 1)
		assert.Equal(t, "Alice Johnson", out[0].FullName)
	})

	t.Run("phone match", func(t *testing.T) {
		out := roster.Search("9876", "")
		require.Len(t, out, 1)
		assert.Equal(t, "Bob Jones", out[0].FullName)
	})

	t.Run("status narrows results", func(t *testing.T) {
		out := roster.Search("jo", model.MemberStatusActive)
		require.Len(t, out, 1)
		assert.Equal(t, "Bob Jones", out[0].FullName)
	})
}
