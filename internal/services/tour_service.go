package services

import (
	"sort"
	"strconv"
	"time"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/repositories"
	"tourism/internal/utils"
)

// TourService owns the tour catalog and its availability calendar. Every
// mutation path re-establishes the calendar invariant: dates ascending,
// duplicate-free, none earlier than today.
type TourService struct {
	Repo      repositories.TourRepository
	Comments  repositories.CommentRepository
	RequestID string

	// Now overrides the clock in tests.
	Now func() time.Time
}

func (s TourService) today() time.Time {
	if s.Now != nil {
		return utils.TruncateToDate(s.Now())
	}
	return utils.Today()
}

// NormalizeDates drops time-of-day, removes dates before today, dedupes by
// exact date equality and returns the remainder ascending. Unparseable
// entries are dropped.
func NormalizeDates(dates []string, today time.Time) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, raw := range dates {
		d, err := utils.ParseDate(raw)
		if err != nil {
			continue
		}
		d = utils.TruncateToDate(d)
		if d.Before(today) {
			continue
		}
		key := utils.FormatDate(d)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	// YYYY-MM-DD sorts lexicographically in date order.
	sort.Strings(out)
	return out
}

func (s TourService) Get(id int64) (models.Tour, error) {
	return s.Repo.GetByID(id)
}

func (s TourService) List() ([]models.Tour, error) {
	return s.Repo.List()
}

// Create saves a new tour with its calendar normalized.
func (s TourService) Create(t models.Tour) (models.Tour, error) {
	if err := validateTour(t); err != nil {
		return models.Tour{}, err
	}
	t.AvailableDates = NormalizeDates(t.AvailableDates, s.today())
	return s.Repo.Insert(t)
}

// Update saves an existing tour. The calendar is normalized on every save so
// stale past dates age out without a cleanup job.
func (s TourService) Update(t models.Tour) (models.Tour, error) {
	if t.ID <= 0 {
		return models.Tour{}, domain.ValidationError{Field: "id", Msg: "invalid tour id"}
	}
	if err := validateTour(t); err != nil {
		return models.Tour{}, err
	}
	t.AvailableDates = NormalizeDates(t.AvailableDates, s.today())
	if err := s.Repo.Update(t); err != nil {
		return models.Tour{}, err
	}
	return t, nil
}

// Delete removes a tour together with its reviews. Bookings are kept; they
// snapshot the tour name at purchase time.
func (s TourService) Delete(id int64) error {
	if _, err := s.Repo.GetByID(id); err != nil {
		return err
	}
	if err := s.Comments.DeleteByTour(id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "tour", "delete", "tour_id="+strconv.FormatInt(id, 10))
	return nil
}

// AddAvailableDate opens one travel date on a tour's calendar. Past dates
// and duplicates are rejected; the stored list stays ascending.
func (s TourService) AddAvailableDate(tourID int64, rawDate string) (models.Tour, error) {
	parsed, err := utils.ParseDate(rawDate)
	if err != nil {
		return models.Tour{}, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD", Err: err}
	}

	today := s.today()
	date := utils.TruncateToDate(parsed)
	if date.Before(today) {
		return models.Tour{}, domain.PastDateError{Date: utils.FormatDate(date)}
	}

	tour, err := s.Repo.GetByID(tourID)
	if err != nil {
		return models.Tour{}, err
	}

	key := utils.FormatDate(date)
	normalized := NormalizeDates(tour.AvailableDates, today)
	for _, existing := range normalized {
		if existing == key {
			return models.Tour{}, domain.DuplicateDateError{Date: key}
		}
	}

	normalized = append(normalized, key)
	sort.Strings(normalized)

	if err := s.Repo.UpdateAvailableDates(tourID, normalized); err != nil {
		return models.Tour{}, err
	}

	utils.LogEvent(s.RequestID, "tour", "add_date",
		"tour_id="+strconv.FormatInt(tourID, 10)+" date="+key)

	tour.AvailableDates = normalized
	return tour, nil
}

func validateTour(t models.Tour) error {
	if t.Name == "" {
		return domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if t.Price <= 0 {
		return domain.ValidationError{Field: "price", Msg: "price must be positive"}
	}
	return nil
}
