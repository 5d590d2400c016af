package domain

import "time"

// Appointment is a booked slot. The slot key is the literal
// (master_id, date_time) pair: two appointments a minute apart never
// conflict, whatever the service duration. Conflicts are enforced by a
// composite unique index, not by a prior read.
type Appointment struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	MasterID    int64     `json:"master_id"`
	Service     string    `json:"service"`
	DateTime    time.Time `json:"date_time"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	CreatedAt   time.Time `json:"created_at"`
}

// AppointmentWithMaster joins the master's display fields for listings.
type AppointmentWithMaster struct {
	Appointment
	MasterName     string `json:"master_name"`
	Specialization string `json:"specialization"`
}
