package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	intconfig "tourism/internal/config"
	"tourism/internal/domain"
	"tourism/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

// mysqlDupEntry is the driver error number for a unique key violation.
const mysqlDupEntry = 1062

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `id, user_id, full_name, email, tour_id, tour_name,
	travel_date, number_of_people, travelers, amount,
	COALESCE(payment_id,''), COALESCE(order_id,''), payment_status, created_at`

// Insert writes a new booking keyed by (order_id, payment_id). The unique key
// uq_order_payment makes the create-if-absent atomic under concurrent
// callbacks: a duplicate insert surfaces as driver error 1062, in which case
// the existing row is re-read and returned with created=false.
func (r BookingRepository) Insert(b models.Booking) (models.Booking, bool, error) {
	db := r.db()
	if db == nil {
		return models.Booking{}, false, domain.InternalError{Msg: "database is not connected"}
	}

	travelers, err := json.Marshal(b.Travelers)
	if err != nil {
		return models.Booking{}, false, domain.InternalError{Msg: "failed to encode travelers", Err: err}
	}

	res, err := db.Exec(`
		INSERT INTO bookings
			(user_id, full_name, email, tour_id, tour_name,
			 travel_date, number_of_people, travelers, amount,
			 payment_id, order_id, payment_status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		b.UserID, b.FullName, b.Email, b.TourID, b.TourName,
		b.TravelDate, b.NumberOfPeople, travelers, b.Amount,
		b.PaymentID, b.OrderID, b.PaymentStatus,
	)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDupEntry {
			existing, lookupErr := r.GetByOrderAndPayment(b.OrderID, b.PaymentID)
			if lookupErr != nil {
				return models.Booking{}, false, domain.InternalError{Msg: "failed to load existing booking", Err: lookupErr}
			}
			return existing, false, nil
		}
		return models.Booking{}, false, domain.InternalError{Msg: "failed to save booking", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Booking{}, false, domain.InternalError{Msg: "failed to read booking id", Err: err}
	}
	b.ID = id
	return b, true, nil
}

// GetByOrderAndPayment looks a booking up by its idempotency key.
func (r BookingRepository) GetByOrderAndPayment(orderID, paymentID string) (models.Booking, error) {
	db := r.db()
	if db == nil {
		return models.Booking{}, domain.InternalError{Msg: "database is not connected"}
	}

	row := db.QueryRow(`
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE order_id=? AND payment_id=?
		LIMIT 1`, orderID, paymentID)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.Booking{}, err
	}
	return b, nil
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "invalid booking id"}
	}
	db := r.db()
	if db == nil {
		return models.Booking{}, domain.InternalError{Msg: "database is not connected"}
	}

	row := db.QueryRow(`
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE id=?
		LIMIT 1`, id)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.Booking{}, err
	}
	return b, nil
}

// ListByUser returns a user's bookings, newest first.
func (r BookingRepository) ListByUser(userID int64) ([]models.Booking, error) {
	return r.list(`WHERE user_id=?`, userID)
}

// ListByTour returns all bookings of one tour, newest first.
func (r BookingRepository) ListByTour(tourID int64) ([]models.Booking, error) {
	return r.list(`WHERE tour_id=?`, tourID)
}

func (r BookingRepository) list(where string, arg any) ([]models.Booking, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database is not connected"}
	}

	rows, err := db.Query(`
		SELECT `+bookingColumns+`
		FROM bookings
		`+where+`
		ORDER BY created_at DESC, id DESC`, arg)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list bookings", Err: err}
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdatePaymentStatus is the only mutation a persisted booking allows.
func (r BookingRepository) UpdatePaymentStatus(id int64, status string) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid booking id"}
	}
	switch status {
	case models.PaymentStatusPending, models.PaymentStatusCompleted, models.PaymentStatusFailed:
	default:
		return domain.ValidationError{Field: "payment_status", Msg: fmt.Sprintf("unknown status %q", status)}
	}
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database is not connected"}
	}
	_, err := db.Exec(`UPDATE bookings SET payment_status=? WHERE id=?`, status, id)
	if err != nil {
		return domain.InternalError{Msg: "failed to update payment status", Err: err}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	var travelers []byte
	if err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.FullName,
		&b.Email,
		&b.TourID,
		&b.TourName,
		&b.TravelDate,
		&b.NumberOfPeople,
		&travelers,
		&b.Amount,
		&b.PaymentID,
		&b.OrderID,
		&b.PaymentStatus,
		&b.CreatedAt,
	); err != nil {
		return models.Booking{}, err
	}
	if len(travelers) > 0 {
		if err := json.Unmarshal(travelers, &b.Travelers); err != nil {
			return models.Booking{}, domain.InternalError{Msg: "failed to decode travelers", Err: err}
		}
	}
	return b, nil
}
