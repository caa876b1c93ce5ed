package ledger

import (
	"fmt"
	"regexp"

	"train-reservations/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Session identifies the authenticated caller. It is passed explicitly to
// every gated operation instead of living in a process-wide slot; a zero or
// logged-out session fails those operations.
type Session struct {
	email  string
	active bool
}

// Email returns the authenticated user's email, or "" after logout.
func (s *Session) Email() string {
	if s == nil || !s.active {
		return ""
	}
	return s.email
}

// IsAdmin reports whether the session belongs to the built-in admin.
func (s *Session) IsAdmin() bool {
	return s.Email() == AdminEmail
}

// Register creates a new account with an empty profile and persists. It has
// no effect on any session.
func (l *Ledger) Register(email, password string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	if _, ok := l.users[email]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateUser, email)
	}
	l.users[email] = &models.User{Email: email, Password: password, Profile: map[string]string{}}
	return l.save()
}

// Login checks the credentials and returns a session for the user. Passwords
// are compared verbatim; credentials are not hashed.
func (l *Ledger) Login(email, password string) (*Session, error) {
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	user, ok := l.users[email]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUser, email)
	}
	if user.Password != password {
		return nil, ErrWrongPassword
	}
	return &Session{email: email, active: true}, nil
}

// Logout invalidates the session. Idempotent; a nil session is fine.
func (l *Ledger) Logout(s *Session) {
	if s != nil {
		s.active = false
	}
}
