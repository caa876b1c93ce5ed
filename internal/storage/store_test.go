package storage

import (
	"os"
	"path/filepath"
	"testing"

	"train-reservations/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Users: map[string]*models.User{
			"admin@gmail.com": {Email: "admin@gmail.com", Password: "12345", Profile: map[string]string{}},
		},
		Trains: map[string]*models.Train{
			"Train-1": {ID: "Train-1", Source: "Delhi", Destination: "Mumbai", Availability: 10, Timings: "10:00", Price: "250"},
		},
		Bookings: []*models.Booking{
			{UserEmail: "admin@gmail.com", TrainID: "Train-1", Seats: 2},
		},
	}
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save(sampleSnapshot()))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, sampleSnapshot(), loaded)
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "does-not-exist.json"))

	loaded, err := store.Load()
	require.NoError(t, err, "a missing snapshot is not an error")
	assert.Nil(t, loaded)
}

func TestFileStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o644))

	store := NewFileStore(path)
	loaded, err := store.Load()
	require.NoError(t, err, "an unreadable snapshot falls back to fresh state")
	assert.Nil(t, loaded)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save(sampleSnapshot()))

	snap := sampleSnapshot()
	snap.Trains["Train-1"].Availability = 3
	snap.Bookings = nil
	require.NoError(t, store.Save(snap))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 3, loaded.Trains["Train-1"].Availability)
	assert.Empty(t, loaded.Bookings)

	// No temp files left behind by the rename dance
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
