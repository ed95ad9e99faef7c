package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"finchat/internal/logging"
	"finchat/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *StateStore {
	t.Helper()
	return NewStateStore(filepath.Join(t.TempDir(), "state.json"), logging.NewNopLogger())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	s := newTestStore(t)

	state, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, state.Transactions)
	assert.NotNil(t, state.Transactions)
	assert.Empty(t, state.Goals)
	assert.Equal(t, models.DefaultSettings(), state.Settings)
}

func TestLoad_CorruptFileReturnsDefaults(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path, []byte("{not json"), 0600))

	state, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, state.Transactions)
	assert.Equal(t, models.DefaultSettings(), state.Settings)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	state := models.NewState()
	date := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	tx := models.NewTransaction(models.TypeExpense, decimal.RequireFromString("35.75"), "mercado", "Gastei R$35,75 no mercado", date)
	state.Transactions = append(state.Transactions, tx)
	state.Goals = []models.Goal{{Amount: decimal.NewFromInt(200), Category: "lazer", CreatedAt: date}}
	state.Settings.Theme = "dark"

	require.NoError(t, s.Save(state))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Transactions, 1)
	got := loaded.Transactions[0]
	assert.Equal(t, tx.ID, got.ID)
	assert.Equal(t, tx.Type, got.Type)
	assert.True(t, tx.Value.Equal(got.Value))
	assert.Equal(t, tx.Category, got.Category)
	assert.Equal(t, tx.Note, got.Note)
	assert.True(t, tx.Date.Equal(got.Date))
	require.Len(t, loaded.Goals, 1)
	assert.True(t, loaded.Goals[0].Amount.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "dark", loaded.Settings.Theme)
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	s := NewStateStore(filepath.Join(dir, "nested", "deep", "state.json"), logging.NewNopLogger())

	require.NoError(t, s.Save(models.NewState()))
	_, err := os.Stat(s.Path)
	assert.NoError(t, err)
}

func TestSave_SnapshotIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	state := models.NewState()

	require.NoError(t, s.Save(state))
	first, err := os.ReadFile(s.Path)
	require.NoError(t, err)

	require.NoError(t, s.Save(state))
	second, err := os.ReadFile(s.Path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
