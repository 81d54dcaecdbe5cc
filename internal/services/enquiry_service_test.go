package services

import (
	"strings"
	"testing"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestEnquiryCreateValidation(t *testing.T) {
	svc := EnquiryService{Notify: func(models.Enquiry) {}}

	cases := []struct {
		name string
		in   models.Enquiry
	}{
		{"missing phone", models.Enquiry{TourName: "Kashmir", Message: "hi"}},
		{"missing tour", models.Enquiry{Phone: "9876543210", Message: "hi"}},
		{"missing message", models.Enquiry{Phone: "9876543210", TourName: "Kashmir"}},
		{"blank message", models.Enquiry{Phone: "9876543210", TourName: "Kashmir", Message: "   "}},
		{"message too long", models.Enquiry{Phone: "9876543210", TourName: "Kashmir", Message: strings.Repeat("x", 501)}},
		{"bad preferred date", models.Enquiry{Phone: "9876543210", TourName: "Kashmir", Message: "hi", PreferredDate: "12/10/2026"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(tc.in); !domain.IsValidation(err) {
				t.Fatalf("err = %v, want validation error", err)
			}
		})
	}
}

func TestEnquiryCreatePersistsAndNotifies(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`INSERT INTO enquiries`).
		WillReturnResult(sqlmock.NewResult(4, 1))

	var notified []models.Enquiry
	svc := EnquiryService{
		Repo:   repositories.EnquiryRepository{DB: db},
		Notify: func(e models.Enquiry) { notified = append(notified, e) },
	}

	saved, err := svc.Create(models.Enquiry{
		UserID:   9,
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "  9876543210 ",
		TourName: "Kashmir Valley Escape",
		Message:  "Is October good for Srinagar?",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if saved.ID != 4 {
		t.Fatalf("id = %d, want 4", saved.ID)
	}
	if saved.Phone != "9876543210" {
		t.Fatalf("phone not trimmed: %q", saved.Phone)
	}
	if saved.NumberOfPeople != 1 {
		t.Fatalf("people should default to 1, got %d", saved.NumberOfPeople)
	}
	if len(notified) != 1 || notified[0].ID != 4 {
		t.Fatalf("expected one notification for enquiry 4, got %+v", notified)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
