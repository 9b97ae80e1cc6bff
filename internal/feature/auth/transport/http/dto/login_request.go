package dto

import "finance_backend/internal/feature/auth/domain/entity"

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse carries the credential-free user plus the issued token.
type LoginResponse struct {
	Usuario entity.PublicUser `json:"usuario"`
	Token   string            `json:"token"`
}
