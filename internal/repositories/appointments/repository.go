// Package appointments stores booked vaccination appointments.
package appointments

import (
	"context"

	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

// Repository describes appointment persistence.
type Repository interface {
	// Create inserts a new appointment.
	Create(ctx context.Context, a *models.Appointment) error

	// Get returns the appointment or common.ErrorNotFound.
	Get(ctx context.Context, id string) (*models.Appointment, error)

	// Booked reports whether caregiver already has an appointment on date.
	Booked(ctx context.Context, caregiver, date string) (bool, error)

	// ListFor returns the appointments where userName is the party of the
	// given role, ordered by id. Each row carries the other party's name.
	ListFor(ctx context.Context, role models.Role, userName string) ([]models.AppointmentView, error)

	// DeleteFor removes the appointment if userName is its party of the given
	// role and returns the removed row. It returns
	// common.ErrAppointmentNotFound otherwise.
	DeleteFor(ctx context.Context, id string, role models.Role, userName string) (*models.Appointment, error)
}
