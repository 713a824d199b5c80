// Package util converts matched string values into typed values.
package util

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/argmatch/errs"
)

// ToBool accepts the forms understood by strconv.ParseBool plus yes/no and on/off
func ToBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, errs.ErrParseBool.WithArgs(value)
	}

	return b, nil
}

// ToInt parses value as a signed integer. Base prefixes (0x, 0o, 0b) are honoured.
func ToInt(value string) (int64, error) {
	num, ok := ParseNumeric(strings.TrimSpace(value))
	if !ok || !num.IsInt {
		return 0, errs.ErrParseInt.WithArgs(value)
	}

	return num.Int, nil
}

// ToFloat parses value as a 64-bit float
func ToFloat(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, errs.ErrParseFloat.WithArgs(value)
	}

	return f, nil
}

// ToDuration parses value with time.ParseDuration
func ToDuration(value string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, errs.ErrParseDuration.WithArgs(value)
	}

	return d, nil
}

// ToTime parses value in any layout recognised by dateparse
func ToTime(value string) (time.Time, error) {
	t, err := dateparse.ParseLocal(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, errs.ErrParseTime.WithArgs(value)
	}

	return t, nil
}

// SplitList splits value on delimiter, dropping empty fields. An empty delimiter
// splits on commas, semicolons, pipes and white space.
func SplitList(value string, delimiter rune) []string {
	if delimiter == 0 {
		return strings.FieldsFunc(value, DefaultListDelimiter)
	}

	return strings.FieldsFunc(value, func(r rune) bool { return r == delimiter })
}

// DefaultListDelimiter reports whether r separates list elements
func DefaultListDelimiter(r rune) bool {
	return r == ',' || r == '|' || r == ' ' || r == ';' || r == '\t'
}
