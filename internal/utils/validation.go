package utils

import (
	"fmt"

	"github.com/f1ction1/GeneratorGrafika/internal/domain"
)

// ValidateShiftCatalog rejects malformed shift catalogs before any model is
// built. Range checks on the individual fields are handled by struct
// validation; this covers the cross-shift rules.
func ValidateShiftCatalog(shifts []domain.ShiftDefinition) error {
	seen := make(map[string]bool, len(shifts))
	for i, shift := range shifts {
		if seen[shift.Name] {
			return fmt.Errorf("shift %d: duplicate shift name %q", i, shift.Name)
		}
		seen[shift.Name] = true
	}

	return nil
}
