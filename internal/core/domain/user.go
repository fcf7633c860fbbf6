package domain

import "time"

// UserProfile holds the display-facing part of a user record.
type UserProfile struct {
	FirstName string
	LastName  string
	Currency  string
}

// NotificationPreferences mirrors the preferences sub-document.
type NotificationPreferences struct {
	Email bool
	Push  bool
}

// User represents a registered user. Username is the lowercased email.
// PasswordHash is a bcrypt hash and never leaves the service layer.
type User struct {
	UserID       string
	Username     string
	PasswordHash []byte
	Profile      UserProfile
	Preferences  NotificationPreferences
	CreatedAt    time.Time
}
