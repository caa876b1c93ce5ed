package ledger

import (
	"fmt"
	"sort"
	"strconv"

	"train-reservations/internal/models"
)

// AddTrain allocates the next Train-<N> identifier, inserts the record and
// persists. Only the built-in admin may add trains. The availability field
// arrives as a raw string and must parse as a non-negative integer; timings
// and price are opaque to the ledger.
func (l *Ledger) AddTrain(s *Session, source, destination, availability, timings, price string) (string, error) {
	if !s.IsAdmin() {
		return "", fmt.Errorf("%w: only admin can add trains", ErrNotAuthorized)
	}
	seats, err := strconv.Atoi(availability)
	if err != nil || seats < 0 {
		return "", fmt.Errorf("%w: availability %q", ErrInvalidNumber, availability)
	}

	id := trainIDPrefix + strconv.Itoa(l.nextTrainID)
	l.trains[id] = &models.Train{
		ID:           id,
		Source:       source,
		Destination:  destination,
		Availability: seats,
		Timings:      timings,
		Price:        price,
	}
	l.nextTrainID++
	if err := l.save(); err != nil {
		return "", err
	}
	return id, nil
}

// SearchTrains returns the trains whose route exactly matches the given
// (source, destination) pair, ordered by train number. Matching is
// case-sensitive; an empty result means no trains, not an error.
func (l *Ledger) SearchTrains(source, destination string) []*models.Train {
	var matches []*models.Train
	for _, t := range l.trains {
		if t.Source == source && t.Destination == destination {
			matches = append(matches, t)
		}
	}
	sortTrains(matches)
	return matches
}

// ListTrains returns every train in the catalog, ordered by train number.
func (l *Ledger) ListTrains() []*models.Train {
	trains := make([]*models.Train, 0, len(l.trains))
	for _, t := range l.trains {
		trains = append(trains, t)
	}
	sortTrains(trains)
	return trains
}

// Train looks up a single train by identifier.
func (l *Ledger) Train(id string) (*models.Train, bool) {
	t, ok := l.trains[id]
	return t, ok
}

// Map iteration order is random, so catalog reads sort by the numeric suffix
// to stay deterministic.
func sortTrains(trains []*models.Train) {
	sort.Slice(trains, func(i, j int) bool {
		ni, _ := parseTrainID(trains[i].ID)
		nj, _ := parseTrainID(trains[j].ID)
		return ni < nj
	})
}
