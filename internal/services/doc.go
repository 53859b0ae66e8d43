// Package services contains the inventory business logic. Every service
// shares one store and a repository manager; operations that act on behalf of
// a user read the session token carried by the context (see WithSessionToken)
// and resolve it through AuthService.
package services
