package booking

import "time"

type CheckAvailabilityRequest struct {
	MasterID int64     `json:"master_id" binding:"required"`
	DateTime time.Time `json:"date_time" binding:"required"`
}

type CreateAppointmentRequest struct {
	MasterID    int64     `json:"master_id" binding:"required"`
	Service     string    `json:"service" binding:"required"`
	DateTime    time.Time `json:"date_time" binding:"required"`
	ClientName  string    `json:"client_name" binding:"required"`
	ClientPhone string    `json:"client_phone" binding:"required"`
}
