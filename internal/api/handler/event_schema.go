package handler

import "time"

type createEventRequest struct {
	SportID  string    `json:"sport_id" validate:"required"`
	Title    string    `json:"title" validate:"required,max=120"`
	Location string    `json:"location" validate:"required,max=200"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
	Capacity int       `json:"capacity" validate:"gte=0"`
}
