// Package reports runs the read-only aggregate queries behind the dashboard
// and the spreadsheet export. Queries go through sqlx so results scan
// straight into tagged structs.
package reports
