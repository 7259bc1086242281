package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MinNameLen = 2
	MaxNameLen = 100
	MaxDescLen = 500
	MaxTags    = 10
	MaxTagLen  = 20
)

// A ValidationError reports a single rejected field. The message is safe to
// surface to clients verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ValidateName trims the raw name and checks its length bounds.
func ValidateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", invalid("name", "name is required")
	}
	if utf8.RuneCountInString(name) < MinNameLen {
		return "", invalid("name", "name too short (minimum %d characters)", MinNameLen)
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		return "", invalid("name", "name too long (maximum %d characters)", MaxNameLen)
	}
	return name, nil
}

// ValidateDescription trims the raw description and checks its length.
// An empty description is fine.
func ValidateDescription(raw string) (string, error) {
	desc := strings.TrimSpace(raw)
	if utf8.RuneCountInString(desc) > MaxDescLen {
		return "", invalid("description", "description too long (maximum %d characters)", MaxDescLen)
	}
	return desc, nil
}

// ValidateStatus lowercases the value and checks enum membership.
func ValidateStatus(value string) (string, error) {
	return validateEnum("status", value, Statuses)
}

// ValidatePriority lowercases the value and checks enum membership.
func ValidatePriority(value string) (string, error) {
	return validateEnum("priority", value, Priorities)
}

func validateEnum(field, value string, allowed []string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	return "", invalid(field, "invalid %s %q", field, value)
}

// ValidateTags trims each tag and checks the count and per-tag length limits.
func ValidateTags(tags []string) ([]string, error) {
	if len(tags) > MaxTags {
		return nil, invalid("tags", "too many tags (maximum %d)", MaxTags)
	}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		t := strings.TrimSpace(tag)
		if utf8.RuneCountInString(t) > MaxTagLen {
			return nil, invalid("tags", "tag too long (maximum %d characters)", MaxTagLen)
		}
		out = append(out, t)
	}
	return out, nil
}

// ValidateProgress checks the 0-100 range.
func ValidateProgress(value int) error {
	if value < 0 || value > 100 {
		return invalid("progress", "progress must be between 0 and 100")
	}
	return nil
}
