// Package errs defines the stable error taxonomy shared by services,
// repositories and the HTTP layer. Callers match with errors.Is; the
// messages are the only detail ever exposed to a client.
package errs

import "errors"

var (
	// ErrAlreadyExists reports a uniqueness violation: duplicate email or
	// username, or a like/follow edge that is already present.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotFound reports that a referenced user or post is absent.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is the single, undifferentiated login failure.
	// It deliberately does not distinguish an unknown email from a wrong
	// password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSelfFollow reports a follow whose target equals the follower.
	ErrSelfFollow = errors.New("cannot follow yourself")

	// ErrTokenInvalid reports an access token whose signature or claims do
	// not verify.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired reports an access token past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrUnauthenticated is the composite failure of an authenticated
	// request: missing, malformed or expired token, or a subject that no
	// longer exists.
	ErrUnauthenticated = errors.New("unauthenticated")
)
