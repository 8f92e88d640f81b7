package domain

import (
	"time"
)

// Checkin is one attendance session: an arrival at a client site and,
// once closed, the departure.
type Checkin struct {
	ID                 string     `json:"id" db:"id"`
	EmployeeID         string     `json:"employee_id" db:"employee_id"`
	ClientID           string     `json:"client_id" db:"client_id"`
	CheckinTime        time.Time  `json:"checkin_time" db:"checkin_time"`
	CheckoutTime       *time.Time `json:"checkout_time" db:"checkout_time"`
	DistanceFromClient *float64   `json:"distance_from_client,omitempty" db:"distance_from_client"`
	Notes              *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
}

// IsOpen reports whether the session has no checkout yet
func (c *Checkin) IsOpen() bool {
	return c.CheckoutTime == nil
}

// CheckinWithClient is a check-in joined with its client site's name, used
// for history views.
type CheckinWithClient struct {
	Checkin
	ClientName string `json:"client_name" db:"client_name"`
}
