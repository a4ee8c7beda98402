// Package diag structures the user-facing error channel of cmd/pinterval:
// a small code taxonomy plus a caret/boxed formatter, in place of bare
// fmt.Errorf strings.
package diag

// Code is a short, stable identifier for a class of user error. Ranges
// are documentation, not a dispatch mechanism:
//
//	D0xx  CLI / file I/O
//	D1xx  surface-syntax parse errors
type Code string

const (
	CodeUsage     Code = "D001" // bad or missing CLI argument
	CodeFlag      Code = "D002" // repeated or malformed flag
	CodeIO        Code = "D003" // source file could not be read
	CodeInitFile  Code = "D004" // --init file could not be read
	CodeParse     Code = "D101" // surface-syntax parse error
)
