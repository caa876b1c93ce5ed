package ledger

import (
	"fmt"
	"strconv"

	"train-reservations/internal/models"
)

// Book and Cancel are the only two operations that change seat counts.
// Anything else that needs to touch availability must go through them, or the
// capacity invariant breaks.

// Book reserves seats on a train for the session user. The seat count
// arrives as a raw string and must parse as a positive integer. On success
// availability is decremented, a new booking record is appended (existing
// bookings for the same train are never merged) and the snapshot is written.
func (l *Ledger) Book(s *Session, trainID, seats string) error {
	if s.Email() == "" {
		return fmt.Errorf("%w: booking requires login", ErrNotAuthorized)
	}
	n, err := parseSeatCount(seats)
	if err != nil {
		return err
	}
	train, ok := l.trains[trainID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrTrainNotFound, trainID)
	}
	if train.Availability < n {
		return fmt.Errorf("%w: %d requested, %d free on %s", ErrNotEnoughSeats, n, train.Availability, trainID)
	}

	train.Availability -= n
	l.bookings = append(l.bookings, &models.Booking{
		UserEmail: s.Email(),
		TrainID:   trainID,
		Seats:     n,
	})
	return l.save()
}

// Cancel returns seats from one of the session user's bookings on the given
// train. The first booking in storage order that matches (user, train) is the
// one cancelled against; if it holds fewer seats than requested the whole
// cancellation fails, even when a later booking could cover the remainder.
// A booking whose count reaches zero is removed.
func (l *Ledger) Cancel(s *Session, trainID, seats string) error {
	if s.Email() == "" {
		return fmt.Errorf("%w: cancellation requires login", ErrNotAuthorized)
	}
	n, err := parseSeatCount(seats)
	if err != nil {
		return err
	}

	train, ok := l.trains[trainID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrTrainNotFound, trainID)
	}

	for i, b := range l.bookings {
		if b.UserEmail != s.Email() || b.TrainID != trainID {
			continue
		}
		if b.Seats < n {
			return ErrBookingNotFound
		}
		train.Availability += n
		b.Seats -= n
		if b.Seats == 0 {
			l.bookings = append(l.bookings[:i], l.bookings[i+1:]...)
		}
		return l.save()
	}
	return ErrBookingNotFound
}

func parseSeatCount(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: seats %q", ErrInvalidNumber, raw)
	}
	return n, nil
}
