package models

import "time"

type PartStatus string

const (
	StatusInStock    PartStatus = "in_stock"
	StatusLowStock   PartStatus = "low_stock"
	StatusOutOfStock PartStatus = "out_of_stock"
)

func (s PartStatus) Valid() bool {
	switch s {
	case StatusInStock, StatusLowStock, StatusOutOfStock:
		return true
	}
	return false
}

// DefaultMinQuantity is the low-stock threshold applied when none is given.
const DefaultMinQuantity = 5

// ComputeStatus derives the stock status from a quantity and its threshold.
// A quantity equal to the threshold is in stock.
func ComputeStatus(quantity, minQuantity int) PartStatus {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity < minQuantity:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Part is an inventory record. Status is always computed by the service from
// Quantity and MinQuantity; PartNumber and BoxNumber are stored uppercase.
type Part struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	PartNumber  string     `json:"partNumber"`
	BoxNumber   string     `json:"boxNumber"`
	Quantity    int        `json:"quantity"`
	Status      PartStatus `json:"status"`
	CategoryID  int64      `json:"categoryId"`
	Description *string    `json:"description,omitempty"`
	MinQuantity int        `json:"minQuantity"`
	CreatedBy   int64      `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	Category *Category `json:"category,omitempty"`
	Creator  *UserRef  `json:"createdByUser,omitempty"`
}

type PartCreateRequest struct {
	Name        string  `json:"name" validate:"required,max=256"`
	PartNumber  string  `json:"partNumber" validate:"required,max=128"`
	BoxNumber   string  `json:"boxNumber" validate:"required,max=128"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	CategoryID  int64   `json:"categoryId" validate:"required,gt=0"`
	Description *string `json:"description,omitempty"`
	MinQuantity *int    `json:"minQuantity,omitempty" validate:"omitempty,gte=0"`
}

// PartUpdateRequest is a partial patch; nil fields keep their stored values.
type PartUpdateRequest struct {
	ID          int64   `json:"id" validate:"required,gt=0"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=256"`
	PartNumber  *string `json:"partNumber,omitempty" validate:"omitempty,min=1,max=128"`
	BoxNumber   *string `json:"boxNumber,omitempty" validate:"omitempty,min=1,max=128"`
	Quantity    *int    `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	CategoryID  *int64  `json:"categoryId,omitempty" validate:"omitempty,gt=0"`
	Description *string `json:"description,omitempty"`
	MinQuantity *int    `json:"minQuantity,omitempty" validate:"omitempty,gte=0"`
}

// Apply merges the patch over p and recomputes the status from the merged
// quantity and threshold.
func (r PartUpdateRequest) Apply(p *Part) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.PartNumber != nil {
		p.PartNumber = *r.PartNumber
	}
	if r.BoxNumber != nil {
		p.BoxNumber = *r.BoxNumber
	}
	if r.Quantity != nil {
		p.Quantity = *r.Quantity
	}
	if r.CategoryID != nil {
		p.CategoryID = *r.CategoryID
	}
	if r.Description != nil {
		p.Description = r.Description
	}
	if r.MinQuantity != nil {
		p.MinQuantity = *r.MinQuantity
	}
	p.Status = ComputeStatus(p.Quantity, p.MinQuantity)
}
