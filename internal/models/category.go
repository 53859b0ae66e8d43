package models

import "time"

type CategoryType string

const (
	CategoryMechanical CategoryType = "mechanical"
	CategoryPiping     CategoryType = "piping"
	CategoryElectrical CategoryType = "electrical"
	CategorySpecialty  CategoryType = "specialty"
)

func (t CategoryType) Valid() bool {
	switch t {
	case CategoryMechanical, CategoryPiping, CategoryElectrical, CategorySpecialty:
		return true
	}
	return false
}

type Category struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Type        CategoryType `json:"type"`
	Description *string      `json:"description,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type CategoryCreateRequest struct {
	Name        string       `json:"name" validate:"required,max=128"`
	Type        CategoryType `json:"type" validate:"required,oneof=mechanical piping electrical specialty"`
	Description *string      `json:"description,omitempty"`
}

// CategoryUpdateRequest is a partial patch; nil fields are left unchanged.
type CategoryUpdateRequest struct {
	ID          int64         `json:"id" validate:"required,gt=0"`
	Name        *string       `json:"name,omitempty" validate:"omitempty,min=1,max=128"`
	Type        *CategoryType `json:"type,omitempty" validate:"omitempty,oneof=mechanical piping electrical specialty"`
	Description *string       `json:"description,omitempty"`
}
