package store

import (
	"encoding/json"
	"fmt"
	"log"

	"ponto/internal/model"
)

// LedgerKey is the single key under which the whole ledger is persisted.
const LedgerKey = "ledger"

const schemaVersion = 1

// ledgerEnvelope is the persisted JSON form of the ledger.
type ledgerEnvelope struct {
	SchemaVersion int          `json:"schema_version"`
	Days          model.Ledger `json:"days"`
}

// LoadLedger reads the persisted ledger. A missing or unparsable value
// yields an empty ledger, not an error; only store I/O failures propagate.
func (s *Store) LoadLedger() (model.Ledger, error) {
	raw, ok, err := s.Get(LedgerKey)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	if !ok {
		return model.Ledger{}, nil
	}

	var env ledgerEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		log.Printf("ponto: discarding unparsable ledger: %v", err)
		return model.Ledger{}, nil
	}
	if env.Days == nil {
		return model.Ledger{}, nil
	}
	return env.Days, nil
}

// SaveLedger persists the whole ledger in one write.
func (s *Store) SaveLedger(ledger model.Ledger) error {
	data, err := json.Marshal(ledgerEnvelope{
		SchemaVersion: schemaVersion,
		Days:          ledger,
	})
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	if err := s.Set(LedgerKey, string(data)); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}
