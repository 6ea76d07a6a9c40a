package timeutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// ErrUnparseableTime is returned when a value cannot be read as an instant.
var ErrUnparseableTime = errors.New("value is not a valid time")

// ToTime coerces a time-like value into an instant.
//
// Accepted inputs:
//   - time.Time and non-nil *time.Time, returned unchanged
//   - integers and floats, read as milliseconds since the Unix epoch
//   - json.Number and purely numeric strings, also epoch milliseconds
//   - date strings such as RFC 3339 ("2024-05-01T10:00:00Z") or any other
//     layout cast.ToTimeE understands; strings without a zone are UTC
func ToTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t == nil {
			return time.Time{}, fmt.Errorf("%w: nil *time.Time", ErrUnparseableTime)
		}
		return *t, nil
	case json.Number:
		return fromNumericString(t.String())
	case string:
		s := strings.TrimSpace(t)
		if isInteger(s) {
			return fromNumericString(s)
		}
		parsed, err := cast.ToTimeE(s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableTime, t)
		}
		return parsed, nil
	case float32:
		return fromFloat(float64(t))
	case float64:
		return fromFloat(t)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		ms, err := cast.ToInt64E(t)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", ErrUnparseableTime, v)
		}
		return time.UnixMilli(ms), nil
	case nil:
		return time.Time{}, fmt.Errorf("%w: nil", ErrUnparseableTime)
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrUnparseableTime, v)
	}
}

func fromNumericString(s string) (time.Time, error) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableTime, s)
	}
	return fromFloat(f)
}

// fromFloat truncates fractional milliseconds toward zero.
func fromFloat(f float64) (time.Time, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, fmt.Errorf("%w: %v", ErrUnparseableTime, f)
	}
	return time.UnixMilli(int64(f)), nil
}

func isInteger(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
