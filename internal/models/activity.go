package models

import "time"

type ActivityAction string

const (
	ActionCreated  ActivityAction = "created"
	ActionUpdated  ActivityAction = "updated"
	ActionDeleted  ActivityAction = "deleted"
	ActionImported ActivityAction = "imported"
	ActionExported ActivityAction = "exported"
)

// ActivityLog is one append-only audit row. PartID is nil for bulk actions
// and for the entry recording a part's deletion.
type ActivityLog struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"userId"`
	Action    ActivityAction `json:"action"`
	PartID    *int64         `json:"partId,omitempty"`
	Details   *string        `json:"details,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`

	User     *UserRef `json:"user,omitempty"`
	PartName *string  `json:"partName,omitempty"`
}

type CategoryCount struct {
	Category string `json:"category" db:"category"`
	Count    int    `json:"count" db:"count"`
}

type DashboardStats struct {
	TotalParts      int             `json:"totalParts"`
	TotalQuantity   int             `json:"totalQuantity"`
	LowStockCount   int             `json:"lowStockCount"`
	OutOfStockCount int             `json:"outOfStockCount"`
	CategoryCounts  []CategoryCount `json:"categoryCounts"`
	RecentActivity  []ActivityLog   `json:"recentActivity"`
}
