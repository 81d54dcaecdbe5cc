package models

import "time"

// Comment is a customer review on a tour: free text plus a whole-star
// rating from 1 to 5. FullName is snapshotted from the author at creation.
type Comment struct {
	ID        int64     `json:"id"`
	TourID    int64     `json:"tourId"`
	UserID    int64     `json:"userId"`
	FullName  string    `json:"fullName"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}
