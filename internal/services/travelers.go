package services

import (
	"regexp"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
)

var aadhaarPattern = regexp.MustCompile(`^[0-9]{12}$`)

// ValidateTravelers checks the traveler manifest against the declared head
// count and document-format rules. First failure wins; indexes in errors are
// 1-based. No trimming or repair is performed on the input.
func ValidateTravelers(declaredCount int, travelers []models.Traveler) error {
	if len(travelers) != declaredCount {
		return domain.TravelerCountError{Declared: declaredCount, Got: len(travelers)}
	}
	for i, t := range travelers {
		if t.Name == "" || t.AadhaarNumber == "" {
			return domain.TravelerDetailsError{Index: i + 1}
		}
		if !aadhaarPattern.MatchString(t.AadhaarNumber) {
			return domain.AadhaarFormatError{Index: i + 1}
		}
	}
	return nil
}
