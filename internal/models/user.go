// Package models содержит доменные модели системы: пользователей,
// туристические места, избранное, локальные события и отзывы.
// Структуры используются в бизнес-логике и при работе с хранилищем.
package models

import "time"

// Роли пользователей системы.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    `json:"id"`       // Уникальный идентификатор пользователя
	FullName     string    `json:"fullName"` // Полное имя
	Email        string    `json:"email"`    // Электронная почта (уникальная)
	PhoneNum     string    `json:"PhoneNum"` // Номер телефона
	PasswordHash string    `json:"-"`        // Хэш пароля, наружу не отдается
	Role         string    `json:"role"`     // Роль пользователя, admin или user
	CreatedAt    time.Time `json:"createOn"` // Дата создания учетной записи
}
