package models

import "time"

// UlasanRating представляет отзыв пользователя с оценкой от 1 до 5.
type UlasanRating struct {
	UID       string    `json:"id"`
	UserName  string    `json:"UserName"` // Имя пользователя, оставившего отзыв
	Ulasan    string    `json:"Ulasan"`   // Текст отзыва
	Rating    int       `json:"Rating"`   // Оценка, от 1 до 5
	CreatedAt time.Time `json:"createdAt"`
}
