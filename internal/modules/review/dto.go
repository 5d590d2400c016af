package review

type CreateReviewRequest struct {
	MasterID  int64  `json:"master_id" binding:"required"`
	ServiceID *int64 `json:"service_id,omitempty"`
	Text      string `json:"text" binding:"required"`
	Rating    int    `json:"rating" binding:"required,gte=1,lte=5"`
}

type UpdateReviewRequest struct {
	Text   string `json:"text" binding:"required"`
	Rating int    `json:"rating" binding:"required,gte=1,lte=5"`
}
