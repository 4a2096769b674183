package domain

import "errors"

// Error taxonomy for the content and upload APIs. Handlers map these onto
// HTTP statuses; everything else surfaces as a storage failure.
var (
	// ErrUnauthorized is returned for protected operations without a valid
	// session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is the generic login failure. It carries no
	// detail on purpose.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrProfileNotFound means the profile singleton was never seeded;
	// profile updates require an existing row.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrValidation covers missing or malformed write payloads, including
	// unknown section names.
	ErrValidation = errors.New("invalid payload")

	// ErrStorage wraps read/write failures from the persistence or upload
	// store.
	ErrStorage = errors.New("storage failure")

	// ErrNoFile means an upload was attempted without a file part.
	ErrNoFile = errors.New("no file provided")
)
