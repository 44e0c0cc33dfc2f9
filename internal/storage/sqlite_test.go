package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymkeeper/internal/model"
)

func createTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "gymkeeper.db")
	s, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))

	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestNewSQLiteStore(t *testing.T) {
	t.Run("empty path rejected", func(t *testing.T) {
		_, err := NewSQLiteStore("")
		assert.Error(t, err)
	})

	t.Run("creates missing directory", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "nested", "dir", "gym.db")
		s, err := NewSQLiteStore(dbPath)
		require.NoError(t, err)
		defer s.Close()
		require.NoError(t, s.Migrate(context.Background()))
	})
}

func TestBlobGetPut(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	t.Run("absent key returns nil", func(t *testing.T) {
		blob, err := s.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, blob)
	})

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "k", []byte(`{"a":1}`)))

		blob, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"a":1}`), blob)
	})

	t.Run("put overwrites", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "k", []byte("first")))
		require.NoError(t, s.Put(ctx, "k", []byte("second")))

		blob, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), blob)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		_, err := s.Get(ctx, "")
		assert.Error(t, err)
		assert.Error(t, s.Put(ctx, "", nil))
	})
}

func TestCollectionRoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	members := []model.Member{
		{
			ID:             "m1",
			FullName:       "Jane Doe",
			PhoneNumber:    "555-0001",
			JoiningDate:    model.NewDate(2024, time.January, 5),
			MembershipPlan: "Monthly",
			MonthlyFee:     50,
			Status:         model.MemberStatusActive,
		},
	}
	require.NoError(t, s.SaveMembers(ctx, members))

	loaded, err := s.LoadMembers(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Jane Doe", loaded[0].FullName)
	assert.Equal(t, 50.0, loaded[0].MonthlyFee)
	assert.True(t, loaded[0].JoiningDate.Equal(members[0].JoiningDate))
}

func TestLoadEmptyCollections(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	members, err := s.LoadMembers(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)

	fees, err := s.LoadFees(ctx)
	require.NoError(t, err)
	assert.Empty(t, fees)

	records, err := s.LoadFinance(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadUnparsableBlob(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, KeyFees, []byte("{corrupt")))

	fees, err := s.LoadFees(ctx)
	require.NoError(t, err)
	assert.Empty(t, fees)
}

func TestLoadSettings(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	t.Run("defaults when absent", func(t *testing.T) {
		settings, err := s.LoadSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.DefaultSettings(), settings)
	})

	t.Run("defaults when unparsable", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, KeySettings, []byte("not json")))

		settings, err := s.LoadSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.DefaultSettings(), settings)
	})

	t.Run("round-trip", func(t *testing.T) {
		want := model.Settings{
			DarkMode:       true,
			CurrencySymbol: "€",
			GymName:        "Iron Temple",
			GymAddress:     "1 Barbell Way",
			GymContact:     "555-9999",
		}
		require.NoError(t, s.SaveSettings(ctx, want))

		got, err := s.LoadSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestReplaceAll(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveMembers(ctx, []model.Member{{ID: "old", FullName: "Old Member"}}))

	members := []model.Member{{ID: "m1", FullName: "New Member", Status: model.MemberStatusActive}}
	fees := []model.Fee{{ID: "f1", MemberID: "m1", MonthIndex: 0, Year: 2024, Amount: 50, Status: model.FeeStatusUnpaid}}
	finance := []model.FinanceRecord{{ID: "r1", Type: model.RecordTypeExpense, Category: "Rent", Amount: 900}}
	settings := model.Settings{CurrencySymbol: "£", GymName: "Restored Gym"}

	require.NoError(t, s.ReplaceAll(ctx, members, fees, finance, settings))

	gotMembers, err := s.LoadMembers(ctx)
	require.NoError(t, err)
	require.Len(t, gotMembers, 1)
	assert.Equal(t, "New Member", gotMembers[0].FullName)

	gotFees, err := s.LoadFees(ctx)
	require.NoError(t, err)
	require.Len(t, gotFees, 1)
	assert.Equal(t, "f1", gotFees[0].ID)

	gotFinance, err := s.LoadFinance(ctx)
	require.NoError(t, err)
	require.Len(t, gotFinance, 1)

	gotSettings, err := s.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Restored Gym", gotSettings.GymName)
}
