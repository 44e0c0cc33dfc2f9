package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gymkeeper/internal/model"
	"gymkeeper/internal/storage"
	"gymkeeper/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "gymkeeper.db")
	backend, err := storage.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, backend.Migrate(context.Background()))

	s, err := store.Open(context.Background(), backend)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func addTestMember(t *testing.T, roster *Roster, name string, fee float64) *model.Member {
	t.Helper()

	member, err := roster.Add(context.Background(), MemberInput{
		FullName:    name,
		PhoneNumber: "555-0100",
		JoiningDate: model.NewDate(2024, time.January, 1),
		MonthlyFee:  fee,
	})
	require.NoError(t, err)
	return member
}
