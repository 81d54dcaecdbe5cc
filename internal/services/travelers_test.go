package services

import (
	"errors"
	"testing"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
)

func TestValidateTravelersAccepts(t *testing.T) {
	err := ValidateTravelers(2, []models.Traveler{
		{Name: "Asha Rao", AadhaarNumber: "123456789012"},
		{Name: "Ravi Rao", AadhaarNumber: "210987654321"},
	})
	if err != nil {
		t.Fatalf("valid manifest rejected: %v", err)
	}
}

func TestValidateTravelersCountMismatch(t *testing.T) {
	cases := []struct {
		name      string
		declared  int
		travelers []models.Traveler
	}{
		{"too few", 3, []models.Traveler{{Name: "A", AadhaarNumber: "123456789012"}}},
		{"too many", 1, []models.Traveler{
			{Name: "A", AadhaarNumber: "123456789012"},
			{Name: "B", AadhaarNumber: "210987654321"},
		}},
		{"declared zero", 0, []models.Traveler{{Name: "A", AadhaarNumber: "123456789012"}}},
		{"empty manifest", 2, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTravelers(tc.declared, tc.travelers)
			var countErr domain.TravelerCountError
			if !errors.As(err, &countErr) {
				t.Fatalf("err = %v, want TravelerCountError", err)
			}
			if err.Error() != "traveler details are incomplete" {
				t.Fatalf("message = %q", err.Error())
			}
		})
	}
}

func TestValidateTravelersIncompleteDetails(t *testing.T) {
	err := ValidateTravelers(2, []models.Traveler{
		{Name: "Asha Rao", AadhaarNumber: "123456789012"},
		{Name: "", AadhaarNumber: "210987654321"},
	})
	var details domain.TravelerDetailsError
	if !errors.As(err, &details) {
		t.Fatalf("err = %v, want TravelerDetailsError", err)
	}
	if details.Index != 2 {
		t.Fatalf("index = %d, want 2 (1-based)", details.Index)
	}
	if err.Error() != "Traveler 2 details are incomplete" {
		t.Fatalf("message = %q", err.Error())
	}

	err = ValidateTravelers(1, []models.Traveler{{Name: "Asha Rao"}})
	if !errors.As(err, &details) || details.Index != 1 {
		t.Fatalf("missing aadhaar should report traveler 1, got %v", err)
	}
}

func TestValidateTravelersAadhaarFormat(t *testing.T) {
	cases := []struct {
		name    string
		aadhaar string
	}{
		{"eleven digits", "12345678901"},
		{"thirteen digits", "1234567890123"},
		{"letters", "12345678901a"},
		{"spaces", "1234 5678 9012"},
		{"unicode digits", "१२३४५६७८९०१२"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTravelers(1, []models.Traveler{{Name: "Asha Rao", AadhaarNumber: tc.aadhaar}})
			var format domain.AadhaarFormatError
			if !errors.As(err, &format) {
				t.Fatalf("err = %v, want AadhaarFormatError", err)
			}
			if err.Error() != "Invalid Aadhaar number for Traveler 1" {
				t.Fatalf("message = %q", err.Error())
			}
		})
	}
}

// The first failing traveler wins, in manifest order.
func TestValidateTravelersFirstFailureWins(t *testing.T) {
	err := ValidateTravelers(2, []models.Traveler{
		{Name: "Asha Rao", AadhaarNumber: "bad"},
		{Name: "", AadhaarNumber: ""},
	})
	var format domain.AadhaarFormatError
	if !errors.As(err, &format) || format.Index != 1 {
		t.Fatalf("expected aadhaar error for traveler 1, got %v", err)
	}
}
