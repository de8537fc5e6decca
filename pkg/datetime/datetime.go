package datetime

import (
	"fmt"
	"regexp"
	"time"
)

// DeadlineLayout is the wire format for product deadlines, minute precision.
const DeadlineLayout = "2006-01-02 15:04"

// DeadlinePattern matches the strict deadline wire format.
var DeadlinePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`)

// ParseDeadline parses a deadline string in the wire format.
func ParseDeadline(value string) (time.Time, error) {
	if !DeadlinePattern.MatchString(value) {
		return time.Time{}, fmt.Errorf("invalid deadline format %q", value)
	}
	parsed, err := time.ParseInLocation(DeadlineLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing deadline: %w", err)
	}
	return parsed, nil
}

// FormatDeadline renders a deadline back into the wire format.
func FormatDeadline(t time.Time) string {
	return t.UTC().Format(DeadlineLayout)
}
