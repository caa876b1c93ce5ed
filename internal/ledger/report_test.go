package ledger

import (
	"path/filepath"
	"testing"

	"train-reservations/internal/models"
	"train-reservations/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	l := newTestLedger(t)
	admin := adminSession(t, l)
	id1 := addTrain(t, l, admin, "Delhi", "Mumbai", "10")
	id2 := addTrain(t, l, admin, "Pune", "Goa", "20")
	alice := userSession(t, l, "alice@example.com")
	bob := userSession(t, l, "bob@example.com")

	require.NoError(t, l.Book(alice, id1, "3"))
	require.NoError(t, l.Book(bob, id2, "5"))
	require.NoError(t, l.Book(alice, id2, "2"))

	entries, err := l.Report(alice)
	require.NoError(t, err)
	require.Len(t, entries, 2, "report must only cover the session user")

	assert.Equal(t, ReportEntry{TrainID: id1, Source: "Delhi", Destination: "Mumbai", Timings: "10:00", Seats: 3}, entries[0])
	assert.Equal(t, ReportEntry{TrainID: id2, Source: "Pune", Destination: "Goa", Timings: "10:00", Seats: 2}, entries[1])
}

func TestReport_NoBookings(t *testing.T) {
	l := newTestLedger(t)
	alice := userSession(t, l, "alice@example.com")

	entries, err := l.Report(alice)
	require.NoError(t, err, "an empty report is a signal, not an error")
	assert.Empty(t, entries)
}

func TestReport_RequiresLogin(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.Report(nil)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	s := userSession(t, l, "alice@example.com")
	l.Logout(s)
	_, err = l.Report(s)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestReport_SkipsDanglingTrains(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	store := storage.NewFileStore(path)

	// A snapshot where one booking references a train that no longer exists.
	require.NoError(t, store.Save(&models.Snapshot{
		Users: map[string]*models.User{
			AdminEmail:          {Email: AdminEmail, Password: AdminPassword, Profile: map[string]string{}},
			"alice@example.com": {Email: "alice@example.com", Password: "secret", Profile: map[string]string{}},
		},
		Trains: map[string]*models.Train{
			"Train-1": {ID: "Train-1", Source: "Delhi", Destination: "Mumbai", Availability: 7, Timings: "10:00"},
		},
		Bookings: []*models.Booking{
			{UserEmail: "alice@example.com", TrainID: "Train-1", Seats: 3},
			{UserEmail: "alice@example.com", TrainID: "Train-9", Seats: 2},
		},
	}))

	l, err := Open(store)
	require.NoError(t, err)
	s, err := l.Login("alice@example.com", "secret")
	require.NoError(t, err)

	entries, err := l.Report(s)
	require.NoError(t, err)
	require.Len(t, entries, 1, "the dangling booking should be silently skipped")
	assert.Equal(t, "Train-1", entries[0].TrainID)
}
