package mysql

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers this layer recognises. Anything else is
// surfaced generically with the underlying message attached.
const (
	errNumDuplicateEntry = 1062
	errNumRoutineMissing = 1305
	errNumBadReference   = 1452
)

// isDuplicateEntry reports whether err is a unique-constraint violation.
// Drivers that do not expose MySQL error numbers report constraint failures
// in the error message.
func isDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == errNumDuplicateEntry
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}

// isBadReference reports whether err is a foreign-key violation, i.e. an
// insert naming a user, activity or location that does not exist.
func isBadReference(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == errNumBadReference
	}
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint")
}

// isRoutineMissing reports whether err means a stored routine is not
// deployed, which is a configuration problem rather than a data problem.
func isRoutineMissing(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == errNumRoutineMissing
	}
	return false
}
