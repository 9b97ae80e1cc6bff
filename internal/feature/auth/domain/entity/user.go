// Package entity defines the domain entities for the auth feature.
package entity

// User represents a registered account holder.
// The Senha field holds the bcrypt hash of the password and must never be
// serialized; handlers only ever see the PublicUser projection.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Nome is the user's display name.
	Nome string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Senha is the hashed password for the user.
	// This never stores plaintext passwords.
	Senha string `gorm:"size:255;not null"`
}

// TableName maps the entity onto the usuarios table.
func (User) TableName() string { return "usuarios" }

// PublicUser is the credential-free projection of a User. It is the only
// user shape that crosses the transport boundary.
type PublicUser struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// Public returns the credential-stripped view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Nome: u.Nome, Email: u.Email}
}
