package models

import "gorm.io/datatypes"

// Vacancy is a public job posting. The slug is derived from the title at
// create time and stays stable across edits.
type Vacancy struct {
	BaseModel
	Title        string `gorm:"not null"`
	Company      string `gorm:"not null"`
	Location     string `gorm:"not null"`
	ContractType string `gorm:"not null"`
	Salary       string `gorm:"default:'0'"`
	Description  string
	Skills       datatypes.JSON `gorm:"type:jsonb"`
	Slug         string         `gorm:"uniqueIndex;not null"`
	AuthorID     string         `gorm:"type:uuid;not null;index"`

	Candidates []Candidate `gorm:"foreignKey:VacancyID"`
}

// Candidate is a resume submission attached to a vacancy. Rows are only ever
// inserted; there is no edit or standalone-delete path.
type Candidate struct {
	BaseModel
	VacancyID string `gorm:"type:uuid;not null;index"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null"`
	CVFile    string `gorm:"not null"`
}
