package models

import "time"

// Tour is the product being booked. AvailableDates holds YYYY-MM-DD strings,
// ascending, duplicate-free, never earlier than today.
type Tour struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	Price          int64     `json:"price"` // rupees per person
	Duration       string    `json:"duration"`
	Overview       string    `json:"overview"`
	CoverImage     string    `json:"coverImage"`
	AvailableDates []string  `json:"availableDates"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
