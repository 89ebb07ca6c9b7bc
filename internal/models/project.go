package models

import "time"

// Category is the fixed set of project categories.
type Category string

const (
	CategoryMedical     Category = "Medical"
	CategoryResidential Category = "Residential"
	CategoryCommercial  Category = "Commercial"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryMedical, CategoryResidential, CategoryCommercial:
		return true
	}
	return false
}

// UploadPrefix marks image references served from the local upload area.
const UploadPrefix = "/uploads/"

// Project is a portfolio entry. Images hold server-relative upload paths
// and external absolute URLs side by side, in display order.
type Project struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Category    Category  `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectInput carries the replaceable fields of a project.
type ProjectInput struct {
	Title       string
	Description string
	Category    Category
	Images      []string
}
