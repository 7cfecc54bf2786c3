package models

// JamOperasi описывает время работы места в один день недели,
// формат значений HH:mm.
type JamOperasi struct {
	Buka  string `json:"buka"`
	Tutup string `json:"tutup"`
}

// TempatWisata представляет туристическое место (точку интереса).
type TempatWisata struct {
	UID        string                `json:"id"`         // Уникальный идентификатор места
	NamaTempat string                `json:"namaTempat"` // Название места (уникальное)
	ImageURL   string                `json:"imageUrl"`   // Ссылка на изображение, непрозрачная строка
	Alamat     []string              `json:"alamat"`     // Список адресов
	JamOperasi map[string]JamOperasi `json:"jamOperasi"` // Расписание по дням недели
}
