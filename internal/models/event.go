package models

import "time"

// EventLokal представляет локальное событие.
type EventLokal struct {
	UID          string    `json:"id"`
	EventName    string    `json:"eventName"`    // Название события
	TentangEvent string    `json:"tentangEvent"` // Описание события
	ImageURL     string    `json:"imageUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}
