package repositories

import (
	"database/sql"

	intconfig "tourism/internal/config"
	"tourism/internal/domain"
	"tourism/internal/domain/models"
	intdb "tourism/internal/db"
)

type EnquiryRepository struct {
	DB *sql.DB
}

func (r EnquiryRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r EnquiryRepository) Insert(e models.Enquiry) (models.Enquiry, error) {
	db := r.db()
	if db == nil {
		return models.Enquiry{}, domain.InternalError{Msg: "database is not connected"}
	}

	res, err := db.Exec(`
		INSERT INTO enquiries
			(user_id, full_name, email, phone, tour_name, number_of_people, preferred_date, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		e.UserID, e.FullName, e.Email, e.Phone, e.TourName, e.NumberOfPeople,
		intdb.NullIfEmpty(e.PreferredDate), e.Message,
	)
	if err != nil {
		return models.Enquiry{}, domain.InternalError{Msg: "failed to save enquiry", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Enquiry{}, domain.InternalError{Msg: "failed to read enquiry id", Err: err}
	}
	e.ID = id
	return e, nil
}

// List returns all enquiries, newest first.
func (r EnquiryRepository) List() ([]models.Enquiry, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database is not connected"}
	}

	rows, err := db.Query(`
		SELECT id, user_id, full_name, email, COALESCE(phone,''), tour_name,
		       number_of_people, COALESCE(preferred_date,''), message, created_at
		FROM enquiries
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list enquiries", Err: err}
	}
	defer rows.Close()

	out := []models.Enquiry{}
	for rows.Next() {
		var e models.Enquiry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.FullName, &e.Email, &e.Phone, &e.TourName,
			&e.NumberOfPeople, &e.PreferredDate, &e.Message, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
