package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Time is a time.Time that unmarshals from the epoch timestamps used by the
// exchange. Both JSON numbers and quoted numbers are accepted, in seconds,
// milliseconds, microseconds or nanoseconds, selected by digit count.
// MarshalJSON writes milliseconds, the precision the exchange expects back.
type Time time.Time

// UnmarshalJSON deserializes json, and timestamp information.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)

	switch s {
	case "null", "0", `""`, `"0"`:
		*t = Time(time.Time{})
		return nil
	}

	s = strings.Trim(s, `"`)
	var fraction string
	if i := strings.IndexByte(s, '.'); i != -1 {
		s, fraction = s[:i], s[i+1:]
	}

	whole, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("cannot unmarshal %s into Time: %w", string(data), err)
	}

	var unit time.Duration
	switch len(s) {
	case 10:
		unit = time.Second
	case 13:
		unit = time.Millisecond
	case 16:
		unit = time.Microsecond
	case 19:
		*t = Time(time.Unix(0, whole))
		return nil
	default:
		return fmt.Errorf("cannot unmarshal %s into Time", string(data))
	}

	var frac time.Duration
	if fraction != "" {
		f, err := strconv.ParseFloat("0."+fraction, 64)
		if err != nil {
			return fmt.Errorf("cannot unmarshal %s into Time: %w", string(data), err)
		}
		frac = time.Duration(f * float64(unit))
	}
	*t = Time(time.Unix(0, 0).Add(time.Duration(whole)*unit + frac))
	return nil
}

// MarshalJSON serializes the time as epoch milliseconds
func (t Time) MarshalJSON() ([]byte, error) {
	if t.Time().IsZero() {
		return []byte("0"), nil
	}
	return strconv.AppendInt(nil, t.Time().UnixMilli(), 10), nil
}

// Time represents a time instance.
func (t Time) Time() time.Time { return time.Time(t) }

// String returns a string representation of the time.
func (t Time) String() string {
	return t.Time().String()
}
