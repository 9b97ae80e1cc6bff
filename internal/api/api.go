// Package api defines the response types shared across HTTP handlers.
package api

// ErrorResponse is the JSON body returned for every named failure.
// The mensagem field is part of the wire contract.
type ErrorResponse struct {
	Mensagem string `json:"mensagem"`
}
