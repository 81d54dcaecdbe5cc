package models

import "time"

// Enquiry is a pre-booking question from a logged-in user about a tour.
type Enquiry struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	TourName       string    `json:"tourName"`
	NumberOfPeople int       `json:"numberOfPeople"`
	PreferredDate  string    `json:"preferredDate,omitempty"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"createdAt"`
}
