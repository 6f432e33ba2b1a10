package models

// ScheduleRow is one line of a schedule search: a caregiver free on the
// searched date paired with a vaccine and its current stock.
type ScheduleRow struct {
	Caregiver string
	Vaccine   string
	Doses     int
}
