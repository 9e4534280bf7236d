package domain

import "time"

// Service is an offering of a barbershop, e.g. a haircut or a beard trim
type Service struct {
	ID              string
	BarbershopID    string
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Category        string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Barber is a professional working at a barbershop
type Barber struct {
	ID           string
	BarbershopID string
	Name         string
	Email        *string
	Phone        *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
