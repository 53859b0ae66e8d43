// Package common defines shared sentinel errors and small helpers used across
// the inventory core. Callers should use errors.Is to match these values.
//
// The text of each error is the message shown to the operator, so wrap with
// fmt.Errorf("...: %w", ...) only where the wrapped form never reaches the UI.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal   = errors.New("internal error")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("Unauthorized")

	// Session errors.
	ErrNoSession          = errors.New("no active session")
	ErrNotAuthenticated   = errors.New("Not authenticated")
	ErrInvalidCredentials = errors.New("Invalid service number or password")
	ErrServiceNumberTaken = errors.New("Service number already registered")

	// User administration errors.
	ErrUserNotFound   = errors.New("User not found")
	ErrSelfRoleChange = errors.New("Cannot change your own role")
	ErrSelfDelete     = errors.New("Cannot delete your own account")
	ErrUserInUse      = errors.New("Failed to delete user. Make sure no parts are created by this user.")

	// Inventory errors.
	ErrPartNotFound     = errors.New("Part not found")
	ErrCategoryNotFound = errors.New("Category not found")
	ErrCategoryInUse    = errors.New("Failed to delete category. Make sure no parts are using this category.")

	// Import/export errors.
	ErrNoFileSelected  = errors.New("No file selected")
	ErrEmptyWorkbook   = errors.New("Excel file is empty")
	ErrExportCancelled = errors.New("Export cancelled")
)
