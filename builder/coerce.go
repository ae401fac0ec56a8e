package builder

import (
	"strconv"
	"strings"

	"github.com/carlosnayan/hrmanager/internal/errors"
	"github.com/shopspring/decimal"
)

// Coerce converts raw text into the Go value bound for a field of type t.
// Integer yields int64, Decimal yields decimal.Decimal and String returns
// the text unchanged. Numeric text is trimmed before parsing.
func Coerce(t FieldType, raw string) (any, error) {
	switch t {
	case Integer:
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidValue, "%q is not an integer", raw)
		}
		return v, nil
	case Decimal:
		v, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidValue, "%q is not a decimal", raw)
		}
		return v, nil
	case String:
		return raw, nil
	default:
		return nil, errors.Wrapf(errors.ErrInvalidValue, "unsupported field type %d", int(t))
	}
}
