// Package store persists the application state as a single JSON snapshot
// file. Save always writes the full blob; Load falls back to a default state
// when the file is absent or corrupt, so the application can always start.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"finchat/internal/logging"
	"finchat/internal/models"
)

// StateStore loads and saves the state blob at a fixed path.
type StateStore struct {
	Path   string
	logger logging.Logger
}

// NewStateStore creates a store for the given file path. An empty path
// resolves to the default location.
func NewStateStore(path string, logger logging.Logger) *StateStore {
	if path == "" {
		path = DefaultPath()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &StateStore{Path: path, logger: logger}
}

// DefaultPath returns the standard state file location,
// $HOME/.config/finchat/state.json, or ./finchat-state.json when the home
// directory cannot be determined.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "finchat-state.json"
	}
	return filepath.Join(homeDir, ".config", "finchat", "state.json")
}

// Load reads the state blob. A missing file yields a fresh default state; so
// does a corrupt one, after a warning. Only an unreadable file is an error.
func (s *StateStore) Load() (*models.State, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("State file not found, starting fresh",
				logging.Field{Key: logging.FieldFile, Value: s.Path})
			return models.NewState(), nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	var state models.State
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.WithError(err).Warn("State file is corrupt, starting fresh",
			logging.Field{Key: logging.FieldFile, Value: s.Path})
		return models.NewState(), nil
	}

	state.Normalize()
	s.logger.Debug("Loaded state",
		logging.Field{Key: logging.FieldFile, Value: s.Path},
		logging.Field{Key: logging.FieldCount, Value: len(state.Transactions)})
	return &state, nil
}

// Save writes the full state snapshot, creating the parent directory if
// needed. Idempotent: the file always holds exactly the given state.
func (s *StateStore) Save(state *models.State) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}

	if err := os.WriteFile(s.Path, data, models.PermissionStateFile); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}

	s.logger.Debug("Saved state",
		logging.Field{Key: logging.FieldFile, Value: s.Path},
		logging.Field{Key: logging.FieldCount, Value: len(state.Transactions)})
	return nil
}
