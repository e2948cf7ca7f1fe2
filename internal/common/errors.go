// Package common holds sentinel errors shared between the service,
// repository, and transport layers. Handlers map these to HTTP statuses
// and never expose the underlying driver errors to clients.
package common

import "errors"

var (

	// repository errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// input errors
	ErrorValidation = errors.New("validation error")

	// auth errors
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorInvalidToken       = errors.New("invalid token")
	ErrorUnknownSubject     = errors.New("unknown subject")

	// fallback for unexpected failures; surfaced as a generic 500
	ErrorInternal = errors.New("internal error")
)
