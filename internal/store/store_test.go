package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymkeeper/internal/model"
	"gymkeeper/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "gymkeeper.db")
	backend, err := storage.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, backend.Migrate(context.Background()))

	s, err := Open(context.Background(), backend)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestOpenHydrates(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "gymkeeper.db")

	backend, err := storage.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, backend.Migrate(ctx))

	require.NoError(t, backend.SaveMembers(ctx, []model.Member{
		{ID: "m1", FullName: "Alice", Status: model.MemberStatusActive},
	}))
	require.NoError(t, backend.Close())

	backend, err = storage.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, backend.Migrate(ctx))

	s, err := Open(ctx, backend)
	require.NoError(t, err)
	defer s.Close()

	require.Len(t, s.Members, 1)
	assert.Equal(t, "Alice", s.Members[0].FullName)
	assert.Equal(t, model.DefaultSettings(), s.Settings)
}

func TestPersistRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Members = append(s.Members, model.Member{
		ID: "m1", FullName: "Alice",
		JoiningDate: model.NewDate(2024, time.January, 5),
		Status:      model.MemberStatusActive,
	})
	require.NoError(t, s.PersistMembers(ctx))

	s.Fees = append(s.Fees, model.Fee{
		ID: "f1", MemberID: "m1", Year: 2024, MonthIndex: 0,
		Amount: 50, Status: model.FeeStatusUnpaid,
	})
	require.NoError(t, s.PersistFees(ctx))

	s.Settings.GymName = "Renamed Gym"
	require.NoError(t, s.PersistSettings(ctx))
}

func TestLookups(t *testing.T) {
	s := newTestStore(t)
	s.Members = []model.Member{
		{ID: "m1", FullName: "Alice"},
		{ID: "m2", FullName: "Bob"},
	}
	s.Fees = []model.Fee{
		{ID: "f1", MemberID: "m1"},
	}

	t.Run("member by id", func(t *testing.T) {
		m := s.MemberByID("m2")
		require.NotNil(t, m)
		assert.Equal(t, "Bob", m.FullName)
		assert.Nil(t, s.MemberByID("nope"))
	})

	t.Run("fee by id", func(t *testing.T) {
		f := s.FeeByID("f1")
		require.NotNil(t, f)
		assert.Equal(t, "m1", f.MemberID)
		assert.Nil(t, s.FeeByID("nope"))
	})

	t.Run("member index", func(t *testing.T) {
		index := s.MemberIndex()
		require.Len(t, index, 2)
		assert.Equal(t, "Alice", index["m1"].FullName)
	})
}

func TestRestoreAll(t *testing.T) {
	ctx := context.Background()

	t.Run("swaps memory after persisting", func(t *testing.T) {
		s := newTestStore(t)
		s.Members = []model.Member{{ID: "old", FullName: "Old"}}

		members := []model.Member{{ID: "m1", FullName: "Restored", Status: model.MemberStatusActive}}
		settings := model.Settings{GymName: "Restored Gym", CurrencySymbol: "£"}

		require.NoError(t, s.RestoreAll(ctx, members, nil, nil, settings))
		require.Len(t, s.Members, 1)
		assert.Equal(t, "Restored", s.Members[0].FullName)
		assert.Equal(t, "Restored Gym", s.Settings.GymName)
	})

	t.Run("memory untouched on persistence failure", func(t *testing.T) {
		s := &Store{
			storage:  &failingStorage{},
			Members:  []model.Member{{ID: "m1", FullName: "Keep Me"}},
			Settings: model.DefaultSettings(),
		}

		err := s.RestoreAll(ctx, []model.Member{{ID: "x"}}, nil, nil, model.Settings{})
		require.Error(t, err)
		require.Len(t, s.Members, 1)
		assert.Equal(t, "Keep Me", s.Members[0].FullName)
		assert.Equal(t, model.DefaultSettings(), s.Settings)
	})
}

var errStorage = errors.New("storage down")

type failingStorage struct{}

func (f *failingStorage) LoadMembers(context.Context) ([]model.Member, error) { return nil, errStorage }
func (f *failingStorage) SaveMembers(context.Context, []model.Member) error   { return errStorage }
func (f *failingStorage) LoadFees(context.Context) ([]model.Fee, error)       { return nil, errStorage }
func (f *failingStorage) SaveFees(context.Context, []model.Fee) error         { return errStorage }
func (f *failingStorage) LoadFinance(context.Context) ([]model.FinanceRecord, error) {
	return nil, errStorage
}
func (f *failingStorage) SaveFinance(context.Context, []model.FinanceRecord) error { return errStorage }
func (f *failingStorage) LoadSettings(context.Context) (model.Settings, error) {
	return model.Settings{}, errStorage
}
func (f *failingStorage) SaveSettings(context.Context, model.Settings) error { return errStorage }
func (f *failingStorage) ReplaceAll(context.Context, []model.Member, []model.Fee, []model.FinanceRecord, model.Settings) error {
	return errStorage
}
func (f *failingStorage) Close() error { return nil }
