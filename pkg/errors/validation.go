package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds graph, node and property names accepted from user input.
const maxNameLength = 256

// ValidateName validates a graph, node or property name taken from user input.
// kind names what is being validated ("node", "graph", ...) and appears in the
// error message.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No leading or trailing whitespace
//   - Maximum length of 256 characters
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "%s name cannot be empty", kind)
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "%s name too long (max %d characters)", kind, maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s name contains invalid control characters", kind)
		}
	}

	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidInput, "%s name has surrounding whitespace: %q", kind, name)
	}

	return nil
}

// ValidatePropertyAssignment validates a "key=value" pair as given on the
// command line and returns its parts. The key must be a valid name; the value
// may be empty.
func ValidatePropertyAssignment(s string) (key, value string, err error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", New(ErrCodeInvalidInput, "property %q must have the form key=value", s)
	}
	if err := ValidateName("property", key); err != nil {
		return "", "", err
	}
	return key, value, nil
}
