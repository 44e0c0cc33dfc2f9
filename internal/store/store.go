// Package store owns the in-memory record collections and their persistence.
// The discipline is read-then-write-then-persist: every mutation saves the
// whole affected collection before the next operation runs, so no partial
// state is ever visible.
package store

import (
	"context"
	"fmt"

	"gymkeeper/internal/model"
)

// Storage defines the persistence contract for the record collections.
type Storage interface {
	LoadMembers(ctx context.Context) ([]model.Member, error)
	SaveMembers(ctx context.Context, members []model.Member) error
	LoadFees(ctx context.Context) ([]model.Fee, error)
	SaveFees(ctx context.Context, fees []model.Fee) error
	LoadFinance(ctx context.Context) ([]model.FinanceRecord, error)
	SaveFinance(ctx context.Context, records []model.FinanceRecord) error
	LoadSettings(ctx context.Context) (model.Settings, error)
	SaveSettings(ctx context.Context, settings model.Settings) error
	ReplaceAll(ctx context.Context, members []model.Member, fees []model.Fee, finance []model.FinanceRecord, settings model.Settings) error
	Close() error
}

// Store is the process-wide record store. Multiple independent instances can
// exist, each backed by its own storage, which is what the tests do.
type Store struct {
	storage  Storage
	Settings model.Settings
	Members  []model.Member
	Fees     []model.Fee
	Finance  []model.FinanceRecord
}

// Open hydrates a store from its storage backend.
func Open(ctx context.Context, storage Storage) (*Store, error) {
	members, err := storage.LoadMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	fees, err := storage.LoadFees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load fees: %w", err)
	}
	finance, err := storage.LoadFinance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load finance records: %w", err)
	}
	settings, err := storage.LoadSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return &Store{
		storage:  storage,
		Members:  members,
		Fees:     fees,
		Finance:  finance,
		Settings: settings,
	}, nil
}

// Close releases the underlying storage.
func (s *Store) Close() error {
	return s.storage.Close()
}

// PersistMembers saves the whole member collection.
func (s *Store) PersistMembers(ctx context.Context) error {
	return s.storage.SaveMembers(ctx, s.Members)
}

// PersistFees saves the whole fee collection.
func (s *Store) PersistFees(ctx context.Context) error {
	return s.storage.SaveFees(ctx, s.Fees)
}

// PersistFinance saves the whole finance record collection.
func (s *Store) PersistFinance(ctx context.Context) error {
	return s.storage.SaveFinance(ctx, s.Finance)
}

// PersistSettings saves the settings singleton.
func (s *Store) PersistSettings(ctx context.Context) error {
	return s.storage.SaveSettings(ctx, s.Settings)
}

// MemberByID returns the member with the given id, or nil.
func (s *Store) MemberByID(id string) *model.Member {
	for i := range s.Members {
		if s.Members[i].ID == id {
			return &s.Members[i]
		}
	}
	return nil
}

// FeeByID returns the fee with the given id, or nil.
func (s *Store) FeeByID(id string) *model.Fee {
	for i := range s.Fees {
		if s.Fees[i].ID == id {
			return &s.Fees[i]
		}
	}
	return nil
}

// MemberIndex builds an id-to-member lookup. Aggregation passes build this
// once instead of scanning the collection per fee.
func (s *Store) MemberIndex() map[string]*model.Member {
	index := make(map[string]*model.Member, len(s.Members))
	for i := range s.Members {
		index[s.Members[i].ID] = &s.Members[i]
	}
	return index
}

// RestoreAll atomically replaces every persisted collection, then swaps the
// in-memory state to match. Nothing changes in memory if persistence fails.
func (s *Store) RestoreAll(ctx context.Context, members []model.Member, fees []model.Fee, finance []model.FinanceRecord, settings model.Settings) error {
	if err := s.storage.ReplaceAll(ctx, members, fees, finance, settings); err != nil {
		return err
	}

	s.Members = members
	s.Fees = fees
	s.Finance = finance
	s.Settings = settings
	return nil
}
