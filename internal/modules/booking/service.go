package booking

import (
	"context"
	"errors"
	"time"

	"beautysalon/internal/domain"
	"beautysalon/internal/repository"
)

type Service struct {
	appointments AppointmentRepository
	masters      MasterReader
}

func NewService(appointments AppointmentRepository, masters MasterReader) *Service {
	return &Service{appointments: appointments, masters: masters}
}

// CheckAvailability reports whether the exact (master, timestamp) slot is
// free. It is a convenience read for clients, not a booking guarantee:
// CreateAppointment never consults it.
func (s *Service) CheckAvailability(ctx context.Context, masterID int64, dateTime time.Time) (bool, error) {
	if masterID <= 0 || dateTime.IsZero() {
		return false, ErrValidation
	}
	taken, err := s.appointments.SlotTaken(ctx, masterID, dateTime)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// CreateAppointment books the slot with a single conditional insert. The
// storage-layer unique index on (master_id, date_time) decides the race:
// of two concurrent calls for the same slot, exactly one wins and the
// other gets ErrSlotTaken.
func (s *Service) CreateAppointment(ctx context.Context, userID int64, req CreateAppointmentRequest) (*domain.Appointment, error) {
	if userID <= 0 || req.MasterID <= 0 || req.DateTime.IsZero() ||
		req.Service == "" || req.ClientName == "" || req.ClientPhone == "" {
		return nil, ErrValidation
	}

	ok, err := s.masters.Exists(ctx, req.MasterID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMasterNotFound
	}

	a := &domain.Appointment{
		UserID:      userID,
		MasterID:    req.MasterID,
		Service:     req.Service,
		DateTime:    req.DateTime,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	return a, nil
}

// CancelAppointment deletes the appointment only when it belongs to the
// caller. A wrong id and someone else's id report the same ErrNotFound.
func (s *Service) CancelAppointment(ctx context.Context, appointmentID, userID int64) error {
	if appointmentID <= 0 || userID <= 0 {
		return ErrValidation
	}
	affected, err := s.appointments.DeleteByIDAndUser(ctx, appointmentID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAppointments returns the user's appointments, newest slot first,
// with master display fields joined.
func (s *Service) ListAppointments(ctx context.Context, userID int64) ([]domain.AppointmentWithMaster, error) {
	return s.appointments.ListByUser(ctx, userID)
}
