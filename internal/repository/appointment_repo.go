package repository

import (
	"context"
	"time"

	"beautysalon/internal/domain"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

type appointmentModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	UserID      int64     `gorm:"column:user_id;not null;index"`
	MasterID    int64     `gorm:"column:master_id;not null;uniqueIndex:idx_master_slot"`
	Service     string    `gorm:"column:service"`
	DateTime    time.Time `gorm:"column:date_time;not null;uniqueIndex:idx_master_slot"`
	ClientName  string    `gorm:"column:client_name"`
	ClientPhone string    `gorm:"column:client_phone"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (appointmentModel) TableName() string { return "appointments" }

func toDomainAppointment(m appointmentModel) *domain.Appointment {
	return &domain.Appointment{
		ID:          m.ID,
		UserID:      m.UserID,
		MasterID:    m.MasterID,
		Service:     m.Service,
		DateTime:    m.DateTime,
		ClientName:  m.ClientName,
		ClientPhone: m.ClientPhone,
		CreatedAt:   m.CreatedAt,
	}
}

// Create inserts the appointment in one statement. idx_master_slot on
// (master_id, date_time) is the sole double-booking defense; a losing
// concurrent insert comes back as ErrDuplicate, never as two successes.
func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	m := appointmentModel{
		UserID:      a.UserID,
		MasterID:    a.MasterID,
		Service:     a.Service,
		DateTime:    a.DateTime,
		ClientName:  a.ClientName,
		ClientPhone: a.ClientPhone,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return err
	}
	*a = *toDomainAppointment(m)
	return nil
}

// SlotTaken reports whether the exact (master, timestamp) slot is booked.
// Convenience read only; Create does not rely on it.
func (r *AppointmentRepository) SlotTaken(ctx context.Context, masterID int64, dateTime time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&appointmentModel{}).
		Where("master_id = ? AND date_time = ?", masterID, dateTime).
		Count(&count).Error
	return count > 0, err
}

// DeleteByIDAndUser removes the appointment only when it belongs to the
// user. Returns the rows affected so the caller can report a miss without
// learning whether the id exists for someone else.
func (r *AppointmentRepository) DeleteByIDAndUser(ctx context.Context, id, userID int64) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&appointmentModel{})
	return tx.RowsAffected, tx.Error
}

// AppointmentModel aliases appointmentModel for embedding in scan targets:
// reflection cannot set fields promoted through an unexported anonymous field.
type AppointmentModel = appointmentModel

type appointmentWithMasterRow struct {
	AppointmentModel
	MasterName     string `gorm:"column:master_name"`
	Specialization string `gorm:"column:specialization"`
}

func (r *AppointmentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.AppointmentWithMaster, error) {
	var rows []appointmentWithMasterRow
	q := `
SELECT a.*, m.name AS master_name, m.specialization
FROM appointments a
JOIN masters m ON a.master_id = m.id
WHERE a.user_id = ?
ORDER BY a.date_time DESC
`
	if err := r.db.WithContext(ctx).Raw(q, userID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.AppointmentWithMaster, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.AppointmentWithMaster{
			Appointment:    *toDomainAppointment(row.AppointmentModel),
			MasterName:     row.MasterName,
			Specialization: row.Specialization,
		})
	}
	return out, nil
}
