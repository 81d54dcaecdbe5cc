package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/notify"
	"tourism/internal/payment"
	"tourism/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

const callbackSecret = "rzp_test_secret"

func signCallback(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(callbackSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func paymentServiceWith(db *sql.DB) PaymentService {
	return PaymentService{
		TourRepo:    repositories.TourRepository{DB: db},
		BookingRepo: repositories.BookingRepository{DB: db},
		KeySecret:   callbackSecret,
		Notify:      func(models.Booking) {},
	}
}

func validCallback() CallbackRequest {
	return CallbackRequest{
		PaymentID:      "pay_B2",
		OrderID:        "order_A1",
		Signature:      signCallback("order_A1", "pay_B2"),
		TourID:         3,
		TravelDate:     "2026-10-12",
		NumberOfPeople: 2,
		Amount:         250000,
		Travelers: []models.Traveler{
			{Name: "Asha Rao", AadhaarNumber: "123456789012"},
			{Name: "Ravi Rao", AadhaarNumber: "210987654321"},
		},
	}
}

func tourRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "location", "price", "duration",
		"overview", "cover_image", "available_dates", "created_at", "updated_at",
	}).AddRow(3, "Kashmir Valley Escape", "Srinagar", 12500, "5D/4N",
		"", "", []byte(`[]`), time.Now(), time.Now())
}

func TestConfirmPaymentCreatesBooking(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FROM tours WHERE id=\?`).
		WithArgs(int64(3)).
		WillReturnRows(tourRows())
	mock.ExpectExec(`INSERT INTO bookings`).
		WillReturnResult(sqlmock.NewResult(7, 1))

	var notified []models.Booking
	svc := paymentServiceWith(db)
	svc.Notify = func(b models.Booking) { notified = append(notified, b) }

	saved, created, err := svc.ConfirmPayment(validCallback(), Requester{
		UserID: 9, FullName: "Asha Rao", Email: "asha@example.com",
	})
	if err != nil {
		t.Fatalf("ConfirmPayment returned error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true for a fresh callback")
	}
	if saved.ID != 7 {
		t.Fatalf("booking id = %d, want 7", saved.ID)
	}
	if saved.Amount != 2500 {
		t.Fatalf("amount = %v rupees, want 2500 (from 250000 paise)", saved.Amount)
	}
	if saved.PaymentStatus != models.PaymentStatusCompleted {
		t.Fatalf("payment status = %q, want %q", saved.PaymentStatus, models.PaymentStatusCompleted)
	}
	if saved.TourName != "Kashmir Valley Escape" {
		t.Fatalf("tour name = %q, want snapshot from tour record", saved.TourName)
	}
	if len(notified) != 1 || notified[0].ID != 7 {
		t.Fatalf("expected one notification for booking 7, got %+v", notified)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConfirmPaymentDuplicateCallbackAbsorbed(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FROM tours WHERE id=\?`).
		WithArgs(int64(3)).
		WillReturnRows(tourRows())
	mock.ExpectExec(`INSERT INTO bookings`).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectQuery(`WHERE order_id=\? AND payment_id=\?`).
		WithArgs("order_A1", "pay_B2").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "full_name", "email", "tour_id", "tour_name",
			"travel_date", "number_of_people", "travelers", "amount",
			"payment_id", "order_id", "payment_status", "created_at",
		}).AddRow(7, 9, "Asha Rao", "asha@example.com", 3, "Kashmir Valley Escape",
			"2026-10-12", 2, []byte(`[{"name":"Asha Rao","aadhaarNumber":"123456789012"}]`), 2500.0,
			"pay_B2", "order_A1", models.PaymentStatusCompleted, time.Now()))

	notifyCalls := 0
	svc := paymentServiceWith(db)
	svc.Notify = func(models.Booking) { notifyCalls++ }

	saved, created, err := svc.ConfirmPayment(validCallback(), Requester{
		UserID: 9, FullName: "Asha Rao", Email: "asha@example.com",
	})
	if err != nil {
		t.Fatalf("duplicate callback should not error, got: %v", err)
	}
	if created {
		t.Fatalf("expected created=false for a duplicate callback")
	}
	if saved.ID != 7 {
		t.Fatalf("duplicate should return the original booking id 7, got %d", saved.ID)
	}
	if notifyCalls != 0 {
		t.Fatalf("duplicate callback must not re-send notifications, got %d calls", notifyCalls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConfirmPaymentRejectsInvalidSignature(t *testing.T) {
	svc := PaymentService{KeySecret: callbackSecret, Notify: func(models.Booking) {
		t.Fatal("notification must not fire on signature failure")
	}}

	cb := validCallback()
	cb.Signature = signCallback("order_A1", "pay_OTHER")

	_, _, err := svc.ConfirmPayment(cb, Requester{UserID: 9})
	if !errors.Is(err, payment.ErrInvalidSignature) {
		t.Fatalf("err = %v, want ErrInvalidSignature", err)
	}
}

func TestConfirmPaymentRejectsBadManifestBeforeDB(t *testing.T) {
	db, mock := newMockDB(t)
	svc := paymentServiceWith(db)

	cb := validCallback()
	cb.Travelers = cb.Travelers[:1] // declared 2, provided 1

	_, _, err := svc.ConfirmPayment(cb, Requester{UserID: 9})
	var countErr domain.TravelerCountError
	if !errors.As(err, &countErr) {
		t.Fatalf("err = %v, want TravelerCountError", err)
	}
	// No tour lookup, no insert.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("manifest failure must not touch storage: %v", err)
	}
}

func TestConfirmPaymentUnknownTour(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FROM tours WHERE id=\?`).
		WithArgs(int64(3)).
		WillReturnError(sql.ErrNoRows)

	svc := paymentServiceWith(db)
	_, _, err := svc.ConfirmPayment(validCallback(), Requester{UserID: 9})
	if !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not-found", err)
	}
}

// A broken mail channel must never turn a persisted booking into an error.
func TestConfirmPaymentSurvivesNotificationFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FROM tours WHERE id=\?`).
		WithArgs(int64(3)).
		WillReturnRows(tourRows())
	mock.ExpectExec(`INSERT INTO bookings`).
		WillReturnResult(sqlmock.NewResult(11, 1))

	dispatcher := notify.Dispatcher{
		Sender:        failingSender{},
		OperatorEmail: "ops@example.com",
	}
	svc := paymentServiceWith(db)
	svc.Notify = func(b models.Booking) { dispatcher.BookingConfirmed(b) }

	saved, created, err := svc.ConfirmPayment(validCallback(), Requester{
		UserID: 9, FullName: "Asha Rao", Email: "asha@example.com",
	})
	if err != nil {
		t.Fatalf("notification failure leaked into the result: %v", err)
	}
	if !created || saved.ID != 11 {
		t.Fatalf("booking not persisted despite failing mailer: created=%v id=%d", created, saved.ID)
	}
}

type failingSender struct{}

func (failingSender) Send(to, subject, htmlBody string) error {
	return errors.New("smtp connection refused")
}

func TestCreateOrderRejectsZeroPeople(t *testing.T) {
	svc := PaymentService{}
	_, err := svc.CreateOrder(context.Background(), 3, 0)
	if !domain.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
}
