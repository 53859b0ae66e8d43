// Package categories persists the part taxonomy. Names are not unique at the
// schema level; FindByName matches case-insensitively for importers and
// seeding.
package categories
