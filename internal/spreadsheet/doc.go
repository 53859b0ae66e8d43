// Package spreadsheet reads and writes the xlsx workbooks used for bulk part
// import and export.
package spreadsheet
