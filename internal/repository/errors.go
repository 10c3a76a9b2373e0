// Package repository implements the data access layer for the application.
package repository

import "strings"

// isUniqueViolation reports whether a DB error is a unique constraint
// violation. Covers PostgreSQL (SQLSTATE 23505) and the sqlite driver used
// in tests.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505") ||
		strings.Contains(msg, "unique constraint failed")
}
