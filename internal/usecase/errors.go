package usecase

import (
	"errors"

	domainErrors "github.com/polkiloo/freshcart/internal/domain/errors"
)

var clientErrors = []error{
	domainErrors.ErrMissingField,
	domainErrors.ErrInvalidStatus,
	domainErrors.ErrInvalidInput,
	domainErrors.ErrInvalidTransition,
	domainErrors.ErrInvalidCredentials,
	domainErrors.ErrAlreadyExists,
	domainErrors.ErrNotFound,
}

// isClientError reports whether err is caused by the request rather than the backend.
func isClientError(err error) bool {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
