package dto

// UpdateProfileRequest is the body of PUT /usuario. All three fields are
// required and replace the stored values together.
type UpdateProfileRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}
