package export

import (
	"encoding/json"
	"fmt"

	"gymkeeper/internal/common"
	"gymkeeper/internal/model"
)

// Backup is the full-state export document. Restore requires all four keys
// to be present; anything else is rejected before any state changes.
type Backup struct {
	Members  []model.Member        `json:"members"`
	Fees     []model.Fee           `json:"fees"`
	Finance  []model.FinanceRecord `json:"finance"`
	Settings model.Settings        `json:"settings"`
}

var backupKeys = []string{"members", "fees", "finance", "settings"}

// MarshalBackup encodes the full state as an indented JSON document.
func MarshalBackup(members []model.Member, fees []model.Fee, finance []model.FinanceRecord, settings model.Settings) ([]byte, error) {
	backup := Backup{
		Members:  members,
		Fees:     fees,
		Finance:  finance,
		Settings: settings,
	}
	if backup.Members == nil {
		backup.Members = []model.Member{}
	}
	if backup.Fees == nil {
		backup.Fees = []model.Fee{}
	}
	if backup.Finance == nil {
		backup.Finance = []model.FinanceRecord{}
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return data, nil
}

// ParseBackup validates and decodes a backup document. Malformed JSON is a
// parse error; well-formed JSON missing any of the four collections fails
// with ErrInvalidBackup. Callers only overwrite state after this returns.
func ParseBackup(data []byte) (*Backup, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse backup file: %w", err)
	}

	for _, key := range backupKeys {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("%w: missing %q", common.ErrInvalidBackup, key)
		}
	}

	var backup Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return nil, fmt.Errorf("failed to parse backup file: %w", err)
	}
	return &backup, nil
}
