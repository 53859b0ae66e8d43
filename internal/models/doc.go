// Package models defines the inventory data model shared by repositories,
// services and the call boundary: users, sessions, categories, parts, the
// activity trail, and the request/filter types accepted by services.
//
// Request types carry go-playground/validator tags; services validate them
// before touching the store. Enumerations (roles, category types, statuses,
// sort fields) are closed: each has a Valid method and unknown values are
// rejected rather than passed through to SQL.
package models
