package export

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymkeeper/internal/common"
	"gymkeeper/internal/model"
)

func TestBackupRoundTrip(t *testing.T) {
	members := []model.Member{
		{ID: "m1", FullName: "Alice", JoiningDate: model.NewDate(2024, time.January, 5), Status: model.MemberStatusActive},
	}
	fees := []model.Fee{
		{ID: "f1", MemberID: "m1", Year: 2024, MonthIndex: 0, Amount: 50, Status: model.FeeStatusUnpaid},
	}
	finance := []model.FinanceRecord{
		{ID: "r1", Type: model.RecordTypeExpense, Date: model.NewDate(2024, time.January, 15), Category: "Rent", Amount: 900},
	}
	settings := model.Settings{CurrencySymbol: "$", GymName: "Test Gym"}

	data, err := MarshalBackup(members, fees, finance, settings)
	require.NoError(t, err)

	backup, err := ParseBackup(data)
	require.NoError(t, err)
	assert.Equal(t, members, backup.Members)
	assert.Equal(t, fees, backup.Fees)
	assert.Equal(t, finance, backup.Finance)
	assert.Equal(t, settings, backup.Settings)
}

func TestMarshalBackupNilCollections(t *testing.T) {
	data, err := MarshalBackup(nil, nil, nil, model.DefaultSettings())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	// empty collections serialize as [], not null
	assert.JSONEq(t, "[]", string(raw["members"]))
	assert.JSONEq(t, "[]", string(raw["fees"]))
	assert.JSONEq(t, "[]", string(raw["finance"]))
}

func TestParseBackup(t *testing.T) {
	t.Run("missing collection rejected", func(t *testing.T) {
		for _, missing := range []string{"members", "fees", "finance", "settings"} {
			doc := map[string]any{
				"members":  []any{},
				"fees":     []any{},
				"finance":  []any{},
				"settings": map[string]any{},
			}
			delete(doc, missing)
			data, err := json.Marshal(doc)
			require.NoError(t, err)

			_, err = ParseBackup(data)
			assert.ErrorIs(t, err, common.ErrInvalidBackup, "missing %q", missing)
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := ParseBackup([]byte("{not json"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, common.ErrInvalidBackup)
	})

	t.Run("extra keys tolerated", func(t *testing.T) {
		data := []byte(`{"members":[],"fees":[],"finance":[],"settings":{},"version":2}`)
		backup, err := ParseBackup(data)
		require.NoError(t, err)
		assert.NotNil(t, backup)
	})
}
