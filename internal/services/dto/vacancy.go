package dto

import (
	"html"
	"strings"
)

// VacancyRequest carries the new/edit posting form. Skills arrive as one
// comma-separated string and are split into a trimmed list by SkillList.
type VacancyRequest struct {
	Title        string `form:"titulo" validate:"required"`
	Company      string `form:"empresa" validate:"required"`
	Location     string `form:"ubicacion" validate:"required"`
	ContractType string `form:"contrato" validate:"required,is-contract-type"`
	Salary       string `form:"salario"`
	Description  string `form:"descripcion"`
	Skills       string `form:"skills" validate:"required"`
}

func (r *VacancyRequest) Normalize() {
	r.Title = html.EscapeString(strings.TrimSpace(r.Title))
	r.Company = html.EscapeString(strings.TrimSpace(r.Company))
	r.Location = html.EscapeString(strings.TrimSpace(r.Location))
	r.ContractType = html.EscapeString(strings.TrimSpace(r.ContractType))
	r.Salary = html.EscapeString(strings.TrimSpace(r.Salary))
	r.Description = html.EscapeString(r.Description)
	r.Skills = html.EscapeString(r.Skills)
}

// SkillList splits the comma-separated skills string, trimming each element
// and dropping empties.
func (r *VacancyRequest) SkillList() []string {
	parts := strings.Split(r.Skills, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// ApplyRequest carries the candidate application form. The resume file
// travels separately through the upload gatekeeper.
type ApplyRequest struct {
	Name  string `form:"nombre" validate:"required"`
	Email string `form:"email" validate:"required,email"`
}

func (r *ApplyRequest) Normalize() {
	r.Name = html.EscapeString(strings.TrimSpace(r.Name))
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// VacancyResponse is the public shape of a posting.
type VacancyResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"titulo"`
	Company      string   `json:"empresa"`
	Location     string   `json:"ubicacion"`
	ContractType string   `json:"contrato"`
	Salary       string   `json:"salario"`
	Description  string   `json:"descripcion"`
	Skills       []string `json:"skills"`
	Slug         string   `json:"url"`
	AuthorID     string   `json:"autor"`
	Candidates   int      `json:"candidatos"`
}

// CandidateResponse is one resume submission as shown to the author.
type CandidateResponse struct {
	Name   string `json:"nombre"`
	Email  string `json:"email"`
	CVFile string `json:"cv"`
}
