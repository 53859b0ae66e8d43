// Package api is the in-process call boundary between the terminal front end
// and the inventory services.
//
// Every Bridge method takes a request and returns a result struct carrying
// Success and a user-facing Error string; no Go error crosses the boundary.
// The Bridge holds the token of the one interactive session and attaches it
// to the context of each service call.
package api
