package utils

import (
	"fmt"
	"strings"
)

// RequireNonEmpty fails with ErrValidation when value is blank
func RequireNonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return nil
}
