// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a registered account that can own purchases.
// Users are immutable once created; only read operations exist after that.
type User struct {
	ID        string    // Generated opaque identifier, assigned by the repository on creation.
	Username  string    // Display name, non-empty and at most 50 characters.
	CreatedAt time.Time // Timestamp of when this user account was created.
}
