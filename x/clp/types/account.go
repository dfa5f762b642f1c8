package types

// Account ids follow the native ledger rules: 2..64 characters of
// lowercase alphanumerics split by single '.', '-' or '_' separators.
const (
	minAccountIDLen = 2
	maxAccountIDLen = 64
)

// ValidAccountID reports whether id is a well formed account identifier.
func ValidAccountID(id string) bool {
	if len(id) < minAccountIDLen || len(id) > maxAccountIDLen {
		return false
	}
	lastSep := true // separators cannot lead, trail or repeat
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			lastSep = false
		case c == '.' || c == '-' || c == '_':
			if lastSep {
				return false
			}
			lastSep = true
		default:
			return false
		}
	}
	return !lastSep
}

// ValidateAccountID returns ErrInvalidAccount describing the offending
// field when id is not a valid account identifier.
func ValidateAccountID(id, label string) error {
	if !ValidAccountID(id) {
		return ErrInvalidAccount.Wrapf("%s account id %q is invalid", label, id)
	}
	return nil
}
