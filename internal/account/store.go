package account

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/olivos-dev/olivctl/internal/adapter"
)

// Store maintains the persisted account collection: a single JSON document
// with one "account" array. Every operation is a whole-collection
// read-modify-write; the design assumes a single writer and no concurrent
// external mutation of the file.
type Store struct {
	path string
	log  *slog.Logger
}

// NewStore returns a store over the document at path. A nil logger
// discards log output.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{path: path, log: logger}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// load reads the whole document. Top-level keys other than "account" are
// returned as raw bytes so a later save can carry them forward; unknown
// keys inside a record never fail the load.
func (s *Store) load() ([]*Account, map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, &PersistenceError{Op: "read", Path: s.path, Err: err}
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, &PersistenceError{Op: "decode", Path: s.path, Err: err}
	}

	var accounts []*Account
	if raw, ok := doc["account"]; ok {
		if err := json.Unmarshal(raw, &accounts); err != nil {
			return nil, nil, &PersistenceError{Op: "decode", Path: s.path, Err: err}
		}
		delete(doc, "account")
	}
	for _, acc := range accounts {
		if acc.Model == "" {
			acc.Model = "default"
		}
	}
	return accounts, doc, nil
}

// save replaces the document atomically: the new content is written to a
// temp file in the same directory and renamed over the target.
func (s *Store) save(accounts []*Account, extra map[string]json.RawMessage) error {
	if accounts == nil {
		accounts = []*Account{}
	}
	doc := make(map[string]json.RawMessage, len(extra)+1)
	for k, v := range extra {
		doc[k] = v
	}
	rawAccounts, err := json.Marshal(accounts)
	if err != nil {
		return &PersistenceError{Op: "encode", Path: s.path, Err: err}
	}
	doc["account"] = rawAccounts

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "encode", Path: s.path, Err: err}
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &PersistenceError{Op: "mkdir", Path: dir, Err: err}
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		return &PersistenceError{Op: "write", Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &PersistenceError{Op: "rename", Path: s.path, Err: err}
	}
	return nil
}

// List returns all records in persisted order.
func (s *Store) List() ([]*Account, error) {
	accounts, _, err := s.load()
	return accounts, err
}

// Get returns the first record whose id stringifies equal to id.
func (s *Store) Get(id string) (*Account, error) {
	accounts, _, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, acc := range accounts {
		if acc.ID.String() == id {
			return acc, nil
		}
	}
	return nil, fmt.Errorf("account %q: %w", id, ErrAccountNotFound)
}

// Add appends a record after checking the uniqueness invariant: no
// existing record may match on all of id, platform, sdk and model
// (compared as strings).
func (s *Store) Add(acc *Account) error {
	accounts, extra, err := s.load()
	if err != nil {
		return err
	}
	for _, existing := range accounts {
		if existing.ID.Equal(acc.ID) &&
			existing.Platform == acc.Platform &&
			existing.SDK == acc.SDK &&
			existing.Model == acc.Model {
			return &DuplicateError{
				ID:       acc.ID.String(),
				Platform: acc.Platform,
				SDK:      acc.SDK,
				Model:    acc.Model,
			}
		}
	}
	accounts = append(accounts, acc)
	if err := s.save(accounts, extra); err != nil {
		return err
	}
	s.log.Info("account added", "id", acc.ID.String(), "platform", acc.Platform, "sdk", acc.SDK, "model", acc.Model)
	return nil
}

// Remove deletes every record matching id. A non-empty sdk restricts the
// match, disambiguating same-id accounts across adapters. It reports
// whether anything was removed; the file is rewritten only when the
// collection shrank.
func (s *Store) Remove(id, sdk string) (bool, error) {
	accounts, extra, err := s.load()
	if err != nil {
		return false, err
	}
	kept := accounts[:0]
	for _, acc := range accounts {
		if acc.ID.String() == id && (sdk == "" || acc.SDK == sdk) {
			continue
		}
		kept = append(kept, acc)
	}
	if len(kept) == len(accounts) {
		return false, nil
	}
	if err := s.save(kept, extra); err != nil {
		return false, err
	}
	s.log.Info("account removed", "id", id, "sdk", sdk)
	return true, nil
}

// Update applies patch to the first record matching id and persists.
// Unknown patch keys are ignored; see Patch.
func (s *Store) Update(id string, patch Patch) (bool, error) {
	accounts, extra, err := s.load()
	if err != nil {
		return false, err
	}
	for _, acc := range accounts {
		if acc.ID.String() != id {
			continue
		}
		patch.apply(acc)
		if err := s.save(accounts, extra); err != nil {
			return false, err
		}
		s.log.Info("account updated", "id", id)
		return true, nil
	}
	return false, nil
}

// ListByFamily returns the records whose sdk_type matches the bulk
// adapter family. An unknown family matches nothing.
func (s *Store) ListByFamily(familyKey string) ([]*Account, error) {
	fam, ok := adapter.Family(familyKey)
	if !ok {
		return nil, nil
	}
	accounts, _, err := s.load()
	if err != nil {
		return nil, err
	}
	var out []*Account
	for _, acc := range accounts {
		if acc.SDK == fam.SDK {
			out = append(out, acc)
		}
	}
	return out, nil
}

// CountByFamily counts the records whose sdk_type matches the family.
func (s *Store) CountByFamily(familyKey string) (int, error) {
	accounts, err := s.ListByFamily(familyKey)
	if err != nil {
		return 0, err
	}
	return len(accounts), nil
}

// RemoveByFamily bulk-removes all records whose sdk_type matches the
// family and returns the count removed. The file is rewritten at most
// once.
func (s *Store) RemoveByFamily(familyKey string) (int, error) {
	fam, ok := adapter.Family(familyKey)
	if !ok {
		return 0, nil
	}
	accounts, extra, err := s.load()
	if err != nil {
		return 0, err
	}
	kept := accounts[:0]
	for _, acc := range accounts {
		if acc.SDK == fam.SDK {
			continue
		}
		kept = append(kept, acc)
	}
	removed := len(accounts) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := s.save(kept, extra); err != nil {
		return 0, err
	}
	s.log.Info("accounts removed by family", "family", familyKey, "count", removed)
	return removed, nil
}
