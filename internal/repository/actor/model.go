package actor

import "time"

type ActorDB struct {
	ID           int64
	Type         string
	Status       string
	Name         string
	Code         string
	Email        string
	Phone        string
	Address      string
	City         string
	Country      string
	TaxCode      string
	IDNumber     string
	DateOfBirth  *time.Time
	Gender       string
	BusinessType string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
