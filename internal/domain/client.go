package domain

import "time"

// Client is a customer registered by a barbershop
type Client struct {
	ID           string
	BarbershopID string
	Name         string
	Email        *string
	Phone        string
	DateOfBirth  *time.Time

	// Preferences
	PreferredBarberID   *string
	PreferredServiceIDs []string
	Notes               *string

	LastVisit   *time.Time
	TotalVisits int
	TotalSpent  float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
