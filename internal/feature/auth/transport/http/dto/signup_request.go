// Package dto defines the request and response shapes for the auth feature.
package dto

// SignupRequest is the body of POST /usuario. Field presence is validated by
// the handler so each missing field gets its own message.
type SignupRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}
