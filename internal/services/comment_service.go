package services

import (
	"strconv"
	"strings"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/repositories"
	"tourism/internal/utils"
)

// CommentService owns tour reviews: free text plus a whole-star rating.
type CommentService struct {
	Repo      repositories.CommentRepository
	TourRepo  repositories.TourRepository
	RequestID string
}

// Create validates and saves a review against an existing tour.
func (s CommentService) Create(cm models.Comment) (models.Comment, error) {
	cm.Content = strings.TrimSpace(cm.Content)
	if cm.Content == "" {
		return models.Comment{}, domain.ValidationError{Field: "content", Msg: "content is required"}
	}
	if len(cm.Content) > 1000 {
		return models.Comment{}, domain.ValidationError{Field: "content", Msg: "content too long (max 1000 characters)"}
	}
	if cm.Rating < 1 || cm.Rating > 5 {
		return models.Comment{}, domain.ValidationError{Field: "rating", Msg: "must be a whole number between 1 and 5"}
	}

	if _, err := s.TourRepo.GetByID(cm.TourID); err != nil {
		return models.Comment{}, err
	}

	saved, err := s.Repo.Insert(cm)
	if err != nil {
		return models.Comment{}, err
	}

	utils.LogEvent(s.RequestID, "comment", "create",
		"comment_id="+strconv.FormatInt(saved.ID, 10)+" tour_id="+strconv.FormatInt(saved.TourID, 10))
	return saved, nil
}

func (s CommentService) ListByTour(tourID int64) ([]models.Comment, error) {
	if tourID <= 0 {
		return nil, domain.ValidationError{Field: "id", Msg: "invalid tour id"}
	}
	return s.Repo.ListByTour(tourID)
}
