package movies

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

/*
	Optional numerics
	-----------------
	Request bodies come from HTML forms as often as from code, so a rating may
	arrive as 8.5, "8.5", "" or not at all. The rule is parse-or-null:
	  • absent, null, "" or blank string -> null
	  • JSON number or numeric string    -> value
	  • anything else                    -> ErrInvalidNumber
	Zero is a real value and is never used to mean "missing".
*/

// OptionalFloat is a float64 that may be null.
type OptionalFloat struct {
	value float64
	valid bool
}

func SomeFloat(v float64) OptionalFloat { return OptionalFloat{value: v, valid: true} }

func (o OptionalFloat) Valid() bool { return o.valid }

// Ptr returns nil for null, which gorm writes as SQL NULL.
func (o OptionalFloat) Ptr() *float64 {
	if !o.valid {
		return nil
	}
	v := o.value
	return &v
}

func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	f, ok, err := parseLooseNumber(data)
	if err != nil {
		return err
	}
	*o = OptionalFloat{value: f, valid: ok}
	return nil
}

func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if !o.valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// OptionalInt is an int that may be null. Fractional input is rejected.
type OptionalInt struct {
	value int
	valid bool
}

func SomeInt(v int) OptionalInt { return OptionalInt{value: v, valid: true} }

func (o OptionalInt) Valid() bool { return o.valid }

func (o OptionalInt) Ptr() *int {
	if !o.valid {
		return nil
	}
	v := o.value
	return &v
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	f, ok, err := parseLooseNumber(data)
	if err != nil {
		return err
	}
	if !ok {
		*o = OptionalInt{}
		return nil
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("%w: %s is not a whole number", ErrInvalidNumber, string(data))
	}
	*o = OptionalInt{value: int(f), valid: true}
	return nil
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// parseLooseNumber reports ok=false for the null forms.
func parseLooseNumber(data []byte) (float64, bool, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return 0, false, nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrInvalidNumber, err)
	}

	var (
		f   float64
		err error
	)
	switch v := raw.(type) {
	case float64:
		f = v
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false, nil
		}
		f, err = cast.ToFloat64E(s)
		if err != nil {
			return 0, false, fmt.Errorf("%w: %q", ErrInvalidNumber, v)
		}
	default:
		return 0, false, fmt.Errorf("%w: %s", ErrInvalidNumber, string(data))
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, fmt.Errorf("%w: %s", ErrInvalidNumber, string(data))
	}
	return f, true, nil
}
