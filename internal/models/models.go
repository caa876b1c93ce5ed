package models

// User represents a registered account. Passwords are stored and compared as
// opaque strings; credential hashing is a known gap.
type User struct {
	Email    string            `json:"email"`
	Password string            `json:"password"`
	Profile  map[string]string `json:"profile"`
}

// Train represents a scheduled train with its remaining free seats.
type Train struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	Destination  string `json:"destination"`
	Availability int    `json:"availability"`
	Timings      string `json:"timings"`
	Price        string `json:"price"`
}

// Booking represents one reservation of seats on a train. A user may hold
// several bookings for the same train; they are never merged.
type Booking struct {
	UserEmail string `json:"user_email"`
	TrainID   string `json:"train_id"`
	Seats     int    `json:"seats"`
}

// Snapshot is the persisted aggregate: the entire ledger state written as one
// artifact after every mutation.
type Snapshot struct {
	Users    map[string]*User  `json:"users"`
	Trains   map[string]*Train `json:"trains"`
	Bookings []*Booking        `json:"bookings"`
}
