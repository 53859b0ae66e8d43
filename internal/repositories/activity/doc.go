// Package activity persists the append-only audit trail. Rows are never
// updated; DeleteByPart exists only for the part-deletion cascade.
package activity
