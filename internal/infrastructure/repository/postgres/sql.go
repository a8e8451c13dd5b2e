package postgres

import (
	"database/sql"
	"strconv"
	"strings"
)

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

// isBindParameterMismatch detects poolers that collapse bind parameters,
// so callers can retry with a single array parameter.
func isBindParameterMismatch(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "bind message supplies") && strings.Contains(msg, "prepared statement")
}

// isUnnamedPreparedStatementMissing detects transaction-mode poolers that
// drop the unnamed prepared statement between parse and bind.
func isUnnamedPreparedStatementMissing(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if strings.Contains(msg, "unnamed prepared statement does not exist") {
		return true
	}
	return strings.Contains(msg, "prepared statement") && strings.Contains(msg, "26000")
}

func quoteLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

// nullStringToInt64 parses drivers that hand integer columns back as
// text. Anything unparsable counts as zero.
func nullStringToInt64(v sql.NullString) int64 {
	if !v.Valid {
		return 0
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v.String), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
