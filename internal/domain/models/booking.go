package models

import "time"

// Payment status values for a booking.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Traveler is one member of a booking's traveler manifest.
type Traveler struct {
	Name          string `json:"name"`
	AadhaarNumber string `json:"aadhaarNumber"`
}

// Booking represents one confirmed purchase. Name/email are snapshotted from
// the requester and tour name from the tour at creation time; the record is
// immutable after insert except for payment status transitions.
type Booking struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"userId"`
	FullName       string     `json:"fullName"`
	Email          string     `json:"email"`
	TourID         int64      `json:"tourId"`
	TourName       string     `json:"tourName"`
	TravelDate     string     `json:"travelDate"`
	NumberOfPeople int        `json:"numberOfPeople"`
	Travelers      []Traveler `json:"travelers"`
	Amount         float64    `json:"amount"`
	PaymentID      string     `json:"paymentId"`
	OrderID        string     `json:"orderId"`
	PaymentStatus  string     `json:"paymentStatus"`
	CreatedAt      time.Time  `json:"createdAt"`
}
