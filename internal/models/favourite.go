package models

import "time"

// Favourite представляет связь многие-ко-многим между пользователем и
// туристическим местом. Пара (UserUID, TempatWisataUID) уникальна.
// Связь хранится отдельной сущностью, а не массивом внутри пользователя.
type Favourite struct {
	UID             string    `json:"id"`
	UserUID         string    `json:"userId"`
	TempatWisataUID string    `json:"tempatWisataId"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FavouriteExpanded — запись избранного с развернутыми данными места
// (денормализованный join для выдачи списка).
type FavouriteExpanded struct {
	UID          string       `json:"id"`
	CreatedAt    time.Time    `json:"createdAt"`
	TempatWisata TempatWisata `json:"tempatWisata"`
}
