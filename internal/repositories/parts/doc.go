// Package parts persists inventory records.
//
// Reads join categories and users so each Part comes back enriched with its
// Category and creator reference. List translates a models.PartsFilter into
// SQL through a fixed column map; sort fields and orders outside the closed
// enumerations are rejected, never interpolated.
package parts
