package pipeline

import "server/internal/domain"

// ValidationError reports a pre-flight problem with the request. It is raised
// before any remote call and carries a message in the run's locale.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == domain.ErrValidation }

// ProviderError reports a surfaced remote failure. Message is the classified
// user-facing text; Err keeps the original cause for logging.
type ProviderError struct {
	Message string
	Err     error
}

func (e *ProviderError) Error() string { return e.Message }

func (e *ProviderError) Unwrap() error { return e.Err }

func (e *ProviderError) Is(target error) bool { return target == domain.ErrProviderFailure }
