package services

import (
	"context"
	"fmt"
	"strconv"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/notify"
	"tourism/internal/payment"
	"tourism/internal/repositories"
	"tourism/internal/utils"
)

// CallbackRequest is the verification context received from the gateway:
// the callback payload plus nothing else. Amount is in minor units (paise).
type CallbackRequest struct {
	PaymentID      string            `json:"razorpay_payment_id"`
	OrderID        string            `json:"razorpay_order_id"`
	Signature      string            `json:"razorpay_signature"`
	TourID         int64             `json:"tourId"`
	TravelDate     string            `json:"travelDate"`
	NumberOfPeople int               `json:"numberOfPeople"`
	Amount         int64             `json:"amount"`
	Travelers      []models.Traveler `json:"travelers"`
}

// Requester identifies the logged-in purchaser, as asserted by the auth
// middleware. Name and email are snapshotted onto the booking.
type Requester struct {
	UserID   int64
	FullName string
	Email    string
}

// PaymentService owns gateway order creation and the callback confirmation
// flow that turns a verified payment into a durable booking.
type PaymentService struct {
	TourRepo    repositories.TourRepository
	BookingRepo repositories.BookingRepository
	Gateway     payment.Client
	KeySecret   string
	Notifier    notify.Dispatcher
	RequestID   string

	// Notify overrides the post-commit dispatch; tests use it to observe
	// or fail the sends synchronously.
	Notify func(models.Booking)
}

// OrderQuote is what the checkout page needs to open the gateway widget.
type OrderQuote struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

// CreateOrder prices the requested booking from the live tour record and
// registers a gateway order for it.
func (s PaymentService) CreateOrder(ctx context.Context, tourID int64, numberOfPeople int) (OrderQuote, error) {
	if numberOfPeople < 1 {
		return OrderQuote{}, domain.ValidationError{Field: "numberOfPeople", Msg: "must be at least 1"}
	}

	tour, err := s.TourRepo.GetByID(tourID)
	if err != nil {
		return OrderQuote{}, err
	}

	amountMinor := utils.MajorToMinor(tour.Price * int64(numberOfPeople))
	order, err := s.Gateway.CreateOrder(ctx, amountMinor, "INR")
	if err != nil {
		return OrderQuote{}, domain.InternalError{Msg: "failed to create order", Err: err}
	}

	utils.LogEvent(s.RequestID, "payment", "create_order",
		"tour_id="+strconv.FormatInt(tourID, 10)+" order_id="+order.ID)

	return OrderQuote{
		OrderID:  order.ID,
		Amount:   amountMinor,
		Currency: "INR",
		KeyID:    s.Gateway.KeyID,
	}, nil
}

// ConfirmPayment is the authenticity boundary of the booking path. It
// verifies the callback signature, validates the traveler manifest, and
// creates the booking exactly once per (orderId, paymentId). A duplicate
// callback returns the original booking with created=false. Notifications
// are dispatched only for a fresh insert and cannot affect the outcome.
func (s PaymentService) ConfirmPayment(cb CallbackRequest, req Requester) (models.Booking, bool, error) {
	if !payment.VerifySignature(cb.OrderID, cb.PaymentID, cb.Signature, s.KeySecret) {
		utils.LogEvent(s.RequestID, "payment", "confirm", "signature mismatch order_id="+cb.OrderID)
		return models.Booking{}, false, payment.ErrInvalidSignature
	}

	if err := ValidateTravelers(cb.NumberOfPeople, cb.Travelers); err != nil {
		return models.Booking{}, false, err
	}

	tour, err := s.TourRepo.GetByID(cb.TourID)
	if err != nil {
		return models.Booking{}, false, err
	}

	booking := models.Booking{
		UserID:         req.UserID,
		FullName:       req.FullName,
		Email:          req.Email,
		TourID:         tour.ID,
		TourName:       tour.Name,
		TravelDate:     cb.TravelDate,
		NumberOfPeople: cb.NumberOfPeople,
		Travelers:      cb.Travelers,
		Amount:         utils.MinorToMajor(cb.Amount),
		PaymentID:      cb.PaymentID,
		OrderID:        cb.OrderID,
		PaymentStatus:  models.PaymentStatusCompleted,
	}

	saved, created, err := s.BookingRepo.Insert(booking)
	if err != nil {
		return models.Booking{}, false, err
	}

	if !created {
		utils.LogEvent(s.RequestID, "payment", "confirm",
			fmt.Sprintf("duplicate callback absorbed booking_id=%d order_id=%s", saved.ID, saved.OrderID))
		return saved, false, nil
	}

	utils.LogEvent(s.RequestID, "payment", "confirm",
		fmt.Sprintf("booking saved booking_id=%d order_id=%s", saved.ID, saved.OrderID))

	// Post-commit side channel. Failures are logged inside the dispatcher
	// and never joined back into this result.
	if s.Notify != nil {
		s.Notify(saved)
	} else {
		go s.Notifier.BookingConfirmed(saved)
	}

	return saved, true, nil
}
