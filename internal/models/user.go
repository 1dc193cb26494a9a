package models

import "time"

// User is an account that publishes vacancies. Emails are stored lowercased
// and trimmed; the unique index makes duplicates a store-level violation.
type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null"`
	Name         string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
	Image        string

	// Password reset
	ResetToken    string
	ResetTokenExp *time.Time

	Vacancies []Vacancy `gorm:"foreignKey:AuthorID"`
}
