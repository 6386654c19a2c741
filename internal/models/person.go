package models

import (
	"fmt"
	"time"
)

// Person is a named contact record together with its single owned address.
type Person struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   Address   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Address is a physical location owned by exactly one person. Latitude and
// Longitude always come from the geocoder, never from the client.
type Address struct {
	ID        int64     `json:"id"`
	PersonID  int64     `json:"person_id"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Street    string    `json:"street"`
	Postal    string    `json:"postal"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Coordinates is a geocoded point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FormatAddress renders the single-line address string sent to the geocoder.
func FormatAddress(street, city, postal, country string) string {
	return fmt.Sprintf("%s, %s, %s, %s", street, city, postal, country)
}

// Formatted returns the geocoder input for the stored address.
func (a Address) Formatted() string {
	return FormatAddress(a.Street, a.City, a.Postal, a.Country)
}
