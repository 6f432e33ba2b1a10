package models

// Vaccine tracks the remaining dose count for a vaccine name.
type Vaccine struct {
	Name  string
	Doses int
}
