package ledger

import "fmt"

// ReportEntry is one line of a user's booking report: the booking joined
// against its train's route and timings.
type ReportEntry struct {
	TrainID     string
	Source      string
	Destination string
	Timings     string
	Seats       int
}

// Report returns the session user's bookings joined against the catalog, in
// storage order. Bookings whose train no longer exists are skipped rather
// than reported as errors. An empty slice means the user has no bookings.
func (l *Ledger) Report(s *Session) ([]ReportEntry, error) {
	if s.Email() == "" {
		return nil, fmt.Errorf("%w: report requires login", ErrNotAuthorized)
	}

	var entries []ReportEntry
	for _, b := range l.bookings {
		if b.UserEmail != s.Email() {
			continue
		}
		train, ok := l.trains[b.TrainID]
		if !ok {
			continue
		}
		entries = append(entries, ReportEntry{
			TrainID:     b.TrainID,
			Source:      train.Source,
			Destination: train.Destination,
			Timings:     train.Timings,
			Seats:       b.Seats,
		})
	}
	return entries, nil
}
