package usecase

import (
	"fmt"
	"sort"
	"strings"

	domainErrors "github.com/polkiloo/freshcart/internal/domain/errors"
)

// requireFields fails with ErrMissingField listing every empty field.
func requireFields(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%w: %s", domainErrors.ErrMissingField, strings.Join(missing, ", "))
}

func requireNonNegative(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%w: %s must not be negative", domainErrors.ErrInvalidInput, name)
	}
	return nil
}
