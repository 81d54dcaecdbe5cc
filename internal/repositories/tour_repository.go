package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"

	intconfig "tourism/internal/config"
	"tourism/internal/domain"
	"tourism/internal/domain/models"
)

type TourRepository struct {
	DB *sql.DB
}

func (r TourRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tourColumns = `id, name, COALESCE(location,''), price, COALESCE(duration,''),
	COALESCE(overview,''), COALESCE(cover_image,''), COALESCE(available_dates,'[]'),
	created_at, updated_at`

func (r TourRepository) GetByID(id int64) (models.Tour, error) {
	if id <= 0 {
		return models.Tour{}, domain.ValidationError{Field: "id", Msg: "invalid tour id"}
	}
	db := r.db()
	if db == nil {
		return models.Tour{}, domain.InternalError{Msg: "database is not connected"}
	}

	row := db.QueryRow(`SELECT `+tourColumns+` FROM tours WHERE id=? LIMIT 1`, id)
	t, err := scanTour(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tour{}, domain.NotFoundError{Resource: "tour"}
		}
		return models.Tour{}, err
	}
	return t, nil
}

// List returns the catalog, newest first.
func (r TourRepository) List() ([]models.Tour, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database is not connected"}
	}

	rows, err := db.Query(`SELECT ` + tourColumns + ` FROM tours ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list tours", Err: err}
	}
	defer rows.Close()

	out := []models.Tour{}
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TourRepository) Insert(t models.Tour) (models.Tour, error) {
	db := r.db()
	if db == nil {
		return models.Tour{}, domain.InternalError{Msg: "database is not connected"}
	}

	dates, err := json.Marshal(t.AvailableDates)
	if err != nil {
		return models.Tour{}, domain.InternalError{Msg: "failed to encode available dates", Err: err}
	}

	res, err := db.Exec(`
		INSERT INTO tours (name, location, price, duration, overview, cover_image, available_dates, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		t.Name, t.Location, t.Price, t.Duration, t.Overview, t.CoverImage, dates,
	)
	if err != nil {
		return models.Tour{}, domain.InternalError{Msg: "failed to save tour", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Tour{}, domain.InternalError{Msg: "failed to read tour id", Err: err}
	}
	t.ID = id
	return t, nil
}

func (r TourRepository) Update(t models.Tour) error {
	if t.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid tour id"}
	}
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database is not connected"}
	}

	dates, err := json.Marshal(t.AvailableDates)
	if err != nil {
		return domain.InternalError{Msg: "failed to encode available dates", Err: err}
	}

	_, err = db.Exec(`
		UPDATE tours
		SET name=?, location=?, price=?, duration=?, overview=?, cover_image=?, available_dates=?, updated_at=NOW()
		WHERE id=?`,
		t.Name, t.Location, t.Price, t.Duration, t.Overview, t.CoverImage, dates, t.ID,
	)
	if err != nil {
		return domain.InternalError{Msg: "failed to update tour", Err: err}
	}
	return nil
}

func (r TourRepository) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid tour id"}
	}
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database is not connected"}
	}
	_, err := db.Exec(`DELETE FROM tours WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Msg: "failed to delete tour", Err: err}
	}
	return nil
}

// UpdateAvailableDates rewrites only the calendar column. The single-row
// write keeps concurrent calendar edits serialized by the storage engine.
func (r TourRepository) UpdateAvailableDates(id int64, dates []string) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid tour id"}
	}
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database is not connected"}
	}

	raw, err := json.Marshal(dates)
	if err != nil {
		return domain.InternalError{Msg: "failed to encode available dates", Err: err}
	}
	_, err = db.Exec(`UPDATE tours SET available_dates=?, updated_at=NOW() WHERE id=?`, raw, id)
	if err != nil {
		return domain.InternalError{Msg: "failed to update available dates", Err: err}
	}
	return nil
}

func scanTour(row rowScanner) (models.Tour, error) {
	var t models.Tour
	var dates []byte
	if err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Location,
		&t.Price,
		&t.Duration,
		&t.Overview,
		&t.CoverImage,
		&dates,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return models.Tour{}, err
	}
	if len(dates) > 0 {
		if err := json.Unmarshal(dates, &t.AvailableDates); err != nil {
			return models.Tour{}, domain.InternalError{Msg: "failed to decode available dates", Err: err}
		}
	}
	return t, nil
}
