// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

// The error texts are the API's mensagem contract and are returned to
// clients verbatim, so they stay in Portuguese.
var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("Usuário não encontrado.")

	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("Já existe usuário com o e-mail informado.")

	// ErrEmailTakenByOther is returned when a profile update targets an email
	// already held by a different user.
	ErrEmailTakenByOther = errors.New("O e-mail informado já está sendo utilizado por outro usuário.")

	// ErrInvalidCredentials is returned when the login password does not match.
	ErrInvalidCredentials = errors.New("Usuário e/ou senha inválido(s).")

	// ErrCreateUser is returned when the user insert affects zero rows.
	ErrCreateUser = errors.New("Não foi possível cadastrar o usuário.")

	// ErrUpdateUser is returned when the profile update affects zero rows.
	ErrUpdateUser = errors.New("Não foi possível atualizar o usuário.")
)
