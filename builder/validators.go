// SPDX-License-Identifier: MIT
// Package: tabula/builder
//
// validators.go — parameter checks shared by constructors.
//
// Fixture sizes are checked by hand against the Min* constants; Params is
// validated through struct tags by a package-level validator instance.

package builder

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the package's single validator instance; it caches struct
// metadata and is safe for concurrent use.
var validate = validator.New()

// validateMin ensures got ≥ min, else wraps ErrTooFewVertices with method context.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: parameter must be ≥ %d, got %d: %w", method, min, got, ErrTooFewVertices)
	}

	return nil
}

// validatePartition checks that both sides of a bipartition hold ≥ MinPartition vertices.
func validatePartition(method string, n1, n2 int) error {
	if n1 < MinPartition || n2 < MinPartition {
		return fmt.Errorf("%s: partition sizes must be ≥ %d, got %d and %d: %w",
			method, MinPartition, n1, n2, ErrTooFewVertices)
	}

	return nil
}

// formatValidationError turns the first validator failure into a readable
// message wrapped with ErrInvalidParams.
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%v: %w", err, ErrInvalidParams)
	}

	e := verrs[0]
	switch e.Tag() {
	case "min":
		return fmt.Errorf("%s: must be at least %s, got %v: %w", e.Field(), e.Param(), e.Value(), ErrInvalidParams)
	case "gtfield":
		return fmt.Errorf("%s: must be greater than %s, got %v: %w", e.Field(), e.Param(), e.Value(), ErrInvalidParams)
	case "gtefield":
		return fmt.Errorf("%s: must be at least %s, got %v: %w", e.Field(), e.Param(), e.Value(), ErrInvalidParams)
	default:
		return fmt.Errorf("%s: validation failed (%s): %w", e.Field(), e.Tag(), ErrInvalidParams)
	}
}
