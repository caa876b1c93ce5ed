// Package ledger implements the reservation core: user accounts, the train
// catalog, seat bookings and cancellations, and per-user booking reports.
// All state lives in memory and is written out as one snapshot after every
// successful mutation. For every train the capacity invariant holds:
// availability plus all outstanding booked seats equals the seat count the
// train was created with.
package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"train-reservations/internal/models"
	"train-reservations/internal/storage"
)

// Built-in admin identity, seeded when no snapshot exists. The only account
// allowed to add trains; otherwise a normal account.
const (
	AdminEmail    = "admin@gmail.com"
	AdminPassword = "12345"
)

const trainIDPrefix = "Train-"

// Ledger owns the user, train and booking state exclusively. It is not safe
// for concurrent use; callers must serialize operations.
type Ledger struct {
	store       storage.Store
	users       map[string]*models.User
	trains      map[string]*models.Train
	bookings    []*models.Booking
	nextTrainID int
}

// Open loads the snapshot from store, seeding a fresh aggregate with the
// built-in admin when none exists, and recomputes the next train identifier
// from the loaded catalog.
func Open(store storage.Store) (*Ledger, error) {
	snap, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if snap == nil {
		snap = &models.Snapshot{}
	}
	// Per-key defaults: a snapshot without users gets the built-in admin, so
	// the admin account exists no matter what survived on disk.
	if len(snap.Users) == 0 {
		snap.Users = map[string]*models.User{
			AdminEmail: {Email: AdminEmail, Password: AdminPassword, Profile: map[string]string{}},
		}
	}
	if snap.Trains == nil {
		snap.Trains = map[string]*models.Train{}
	}

	l := &Ledger{
		store:    store,
		users:    snap.Users,
		trains:   snap.Trains,
		bookings: snap.Bookings,
	}
	l.nextTrainID = l.computeNextTrainID()
	return l, nil
}

// computeNextTrainID scans the catalog for Train-<N> identifiers and returns
// max(N)+1, or 1 for an empty catalog. Called once at load time; within a run
// the counter is advanced incrementally.
func (l *Ledger) computeNextTrainID() int {
	maxID := 0
	for id := range l.trains {
		n, ok := parseTrainID(id)
		if ok && n > maxID {
			maxID = n
		}
	}
	return maxID + 1
}

func parseTrainID(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, trainIDPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// save writes the full aggregate through the store. Called synchronously
// after every successful mutation, so a crash loses at most the most recent
// operation.
func (l *Ledger) save() error {
	if err := l.store.Save(&models.Snapshot{
		Users:    l.users,
		Trains:   l.trains,
		Bookings: l.bookings,
	}); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
