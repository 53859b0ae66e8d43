// Package sessions persists bearer tokens issued at login.
//
// A session row is valid while expires_at is later than the current time;
// expiry is never extended. DeleteExpired is the garbage-collection hook run
// on each login and by the session janitor.
package sessions
