package models

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is an account that can book tours.
type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
