package domain

import "errors"

// Cross-cutting error kinds. Every failure path in the services is converted
// to one of these (or a resource-specific sentinel) at the point of
// detection; raw store faults never cross the service boundary.
var (
	// ErrUnauthenticated means no valid session subject exists. Fails closed.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrProfileMissing means the session subject is valid but has no
	// application record, an inconsistent state handled defensively.
	ErrProfileMissing = errors.New("profile not found")

	// ErrForbidden means the principal lacks the role or ownership required.
	ErrForbidden = errors.New("access forbidden")

	// ErrInternal wraps unexpected dependency faults.
	ErrInternal = errors.New("internal error")
)
