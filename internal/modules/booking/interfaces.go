package booking

import (
	"context"
	"time"

	"beautysalon/internal/domain"
)

// AppointmentRepository defines the storage operations the engine needs.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
	SlotTaken(ctx context.Context, masterID int64, dateTime time.Time) (bool, error)
	DeleteByIDAndUser(ctx context.Context, id, userID int64) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.AppointmentWithMaster, error)
}

// MasterReader checks a master exists before a slot is taken in their name.
type MasterReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
