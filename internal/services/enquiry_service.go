package services

import (
	"strconv"
	"strings"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/notify"
	"tourism/internal/repositories"
	"tourism/internal/utils"
)

// EnquiryService records pre-booking questions and alerts the operator.
type EnquiryService struct {
	Repo      repositories.EnquiryRepository
	Notifier  notify.Dispatcher
	RequestID string

	// Notify overrides the post-commit dispatch in tests.
	Notify func(models.Enquiry)
}

// Create validates and persists an enquiry, then emails the operator on a
// best-effort basis.
func (s EnquiryService) Create(e models.Enquiry) (models.Enquiry, error) {
	e.Phone = strings.TrimSpace(e.Phone)
	e.TourName = strings.TrimSpace(e.TourName)
	e.Message = strings.TrimSpace(e.Message)

	if e.Phone == "" {
		return models.Enquiry{}, domain.ValidationError{Field: "phone", Msg: "phone is required"}
	}
	if e.TourName == "" {
		return models.Enquiry{}, domain.ValidationError{Field: "tourName", Msg: "tour name is required"}
	}
	if e.Message == "" {
		return models.Enquiry{}, domain.ValidationError{Field: "message", Msg: "message is required"}
	}
	if len(e.Message) > 500 {
		return models.Enquiry{}, domain.ValidationError{Field: "message", Msg: "message too long (max 500 characters)"}
	}
	if e.NumberOfPeople < 1 {
		e.NumberOfPeople = 1
	}
	if e.PreferredDate != "" {
		if _, err := utils.ParseDate(e.PreferredDate); err != nil {
			return models.Enquiry{}, domain.ValidationError{Field: "preferredDate", Msg: "expected YYYY-MM-DD", Err: err}
		}
	}

	saved, err := s.Repo.Insert(e)
	if err != nil {
		return models.Enquiry{}, err
	}

	utils.LogEvent(s.RequestID, "enquiry", "create", "enquiry_id="+strconv.FormatInt(saved.ID, 10))

	if s.Notify != nil {
		s.Notify(saved)
	} else {
		go s.Notifier.EnquiryReceived(saved)
	}
	return saved, nil
}

func (s EnquiryService) List() ([]models.Enquiry, error) {
	return s.Repo.List()
}
