package models

// Appointment is a booked vaccination. It is created only by a successful
// reservation and removed only by cancellation.
type Appointment struct {
	ID        string
	Date      string
	Vaccine   string
	Patient   string
	Caregiver string
}

// AppointmentView is an appointment as shown to one of its parties:
// Counterpart is the patient for a caregiver and the caregiver for a patient.
type AppointmentView struct {
	ID          string
	Vaccine     string
	Date        string
	Counterpart string
}

// Reservation is the outcome of a successful reserve.
type Reservation struct {
	AppointmentID string
	Caregiver     string
}
