package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"gymkeeper/internal/model"
)

// Blob store keys, one per collection. These predate this implementation and
// must not change or existing databases stop loading.
const (
	KeyMembers  = "gym_members"
	KeyFees     = "gym_fees"
	KeyFinance  = "gym_finance"
	KeySettings = "gym_settings"
)

// LoadMembers returns the persisted member collection. An absent or
// unparsable blob loads as an empty collection.
func (s *SQLiteStore) LoadMembers(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	if err := s.loadCollection(ctx, KeyMembers, &members); err != nil {
		return nil, err
	}
	slog.Debug("loaded members", "count", len(members))
	return members, nil
}

// SaveMembers overwrites the persisted member collection.
func (s *SQLiteStore) SaveMembers(ctx context.Context, members []model.Member) error {
	return s.saveCollection(ctx, KeyMembers, members)
}

// LoadFees returns the persisted fee collection.
func (s *SQLiteStore) LoadFees(ctx context.Context) ([]model.Fee, error) {
	var fees []model.Fee
	if err := s.loadCollection(ctx, KeyFees, &fees); err != nil {
		return nil, err
	}
	slog.Debug("loaded fees", "count", len(fees))
	return fees, nil
}

// SaveFees overwrites the persisted fee collection.
func (s *SQLiteStore) SaveFees(ctx context.Context, fees []model.Fee) error {
	return s.saveCollection(ctx, KeyFees, fees)
}

// LoadFinance returns the persisted finance record collection.
func (s *SQLiteStore) LoadFinance(ctx context.Context) ([]model.FinanceRecord, error) {
	var records []model.FinanceRecord
	if err := s.loadCollection(ctx, KeyFinance, &records); err != nil {
		return nil, err
	}
	slog.Debug("loaded finance records", "count", len(records))
	return records, nil
}

// SaveFinance overwrites the persisted finance record collection.
func (s *SQLiteStore) SaveFinance(ctx context.Context, records []model.FinanceRecord) error {
	return s.saveCollection(ctx, KeyFinance, records)
}

// LoadSettings returns the persisted settings, or the defaults when the blob
// is absent or unparsable.
func (s *SQLiteStore) LoadSettings(ctx context.Context) (model.Settings, error) {
	blob, err := s.Get(ctx, KeySettings)
	if err != nil {
		return model.Settings{}, err
	}
	if blob == nil {
		return model.DefaultSettings(), nil
	}

	var settings model.Settings
	if err := json.Unmarshal(blob, &settings); err != nil {
		slog.Warn("settings blob unparsable, using defaults", "error", err)
		return model.DefaultSettings(), nil
	}
	return settings, nil
}

// SaveSettings overwrites the persisted settings.
func (s *SQLiteStore) SaveSettings(ctx context.Context, settings model.Settings) error {
	return s.saveCollection(ctx, KeySettings, settings)
}

// ReplaceAll overwrites all four collections in a single transaction. Restore
// uses this so a failure part-way leaves the previous state intact.
func (s *SQLiteStore) ReplaceAll(ctx context.Context, members []model.Member, fees []model.Fee, finance []model.FinanceRecord, settings model.Settings) error {
	blobs := map[string]any{
		KeyMembers:  members,
		KeyFees:     fees,
		KeyFinance:  finance,
		KeySettings: settings,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for key, collection := range blobs {
		data, marshalErr := json.Marshal(collection)
		if marshalErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to encode %q: %w", key, marshalErr)
		}
		if _, execErr := tx.ExecContext(ctx, upsertBlobQuery, key, data); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to store blob %q: %w", key, execErr)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit restore: %w", err)
	}

	slog.Info("replaced all collections",
		"members", len(members),
		"fees", len(fees),
		"finance", len(finance))
	return nil
}

func (s *SQLiteStore) loadCollection(ctx context.Context, key string, out any) error {
	blob, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if blob == nil {
		return nil
	}

	if err := json.Unmarshal(blob, out); err != nil {
		// An unreadable blob loads as empty rather than bricking the app.
		slog.Warn("collection blob unparsable, loading as empty", "key", key, "error", err)
		return nil
	}
	return nil
}

func (s *SQLiteStore) saveCollection(ctx context.Context, key string, collection any) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	return s.Put(ctx, key, data)
}
