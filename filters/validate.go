package filters

import (
	"errors"
	"fmt"
	"strings"

	"reporting/models"
	"reporting/utils"
)

// ErrIncomplete is returned while the user is still picking the column or
// operator; the host shows it inline without blocking other rows' editing.
var ErrIncomplete = errors.New("select column and operator.")

// ValidateRow checks one filter condition against its operator-specific
// rule. A nil return means the row may be submitted.
func ValidateRow(row models.FilterRow) error {
	if strings.TrimSpace(row.Column) == "" || strings.TrimSpace(row.Operator) == "" {
		return ErrIncomplete
	}
	if !operatorAllowed(row.Column, row.Operator) {
		return fmt.Errorf("operator %q is not valid for column %q", row.Operator, row.Column)
	}

	switch row.Operator {
	case OpBetween:
		return validateBetween(row)
	case OpIn, OpNotIn:
		if isItemID(row.Column) {
			return validateItemIDList(row.Value)
		}
		return validateList(row.Value)
	default:
		if isEmpty(row.Value) {
			return errors.New("value is required")
		}
		return nil
	}
}

// ReadyToSubmit reports whether every active filter row is individually
// valid. No partial filter set is ever sent.
func ReadyToSubmit(rows []models.FilterRow) bool {
	for _, row := range rows {
		if ValidateRow(row) != nil {
			return false
		}
	}
	return true
}

// validateBetween expects a [from, to] pair. For date columns the pair must
// be in calendar order; when both ends parse as numbers they must be in
// numeric order; otherwise no ordering check applies.
func validateBetween(row models.FilterRow) error {
	from, to, ok := betweenBounds(row.Value)
	if !ok {
		return errors.New("between requires a from and a to value")
	}
	if isEmpty(from) || isEmpty(to) {
		return errors.New("both between values are required")
	}

	if isDateColumn(row.Column) {
		fromDate, okFrom := utils.ParseDate(from)
		toDate, okTo := utils.ParseDate(to)
		if !okFrom || !okTo {
			return errors.New("between values must be valid dates")
		}
		if toDate.Before(fromDate) {
			return errors.New("'to' date must not be before 'from' date")
		}
		return nil
	}

	fromNum, okFrom := utils.Coerce(from)
	toNum, okTo := utils.Coerce(to)
	if okFrom && okTo && toNum < fromNum {
		return errors.New("'to' must not be less than 'from'")
	}
	return nil
}

// validateItemIDList accepts an array or a delimiter-separated string; the
// resulting set must be non-empty and entirely numeric.
func validateItemIDList(value any) error {
	items, err := listItems(value)
	if err != nil || len(items) == 0 {
		return errors.New("at least one item id is required")
	}
	for _, item := range items {
		if _, ok := utils.Coerce(item); !ok {
			return fmt.Errorf("item id %q is not a number", fmt.Sprint(item))
		}
	}
	return nil
}

func validateList(value any) error {
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return errors.New("at least one value is required")
		}
		return nil
	case []any:
		if len(v) == 0 {
			return errors.New("at least one value is required")
		}
		return nil
	case []string:
		if len(v) == 0 {
			return errors.New("at least one value is required")
		}
		return nil
	case nil:
		return errors.New("at least one value is required")
	default:
		return errors.New("value must be a list or a delimited string")
	}
}

// betweenBounds extracts the [from, to] pair from the supported encodings.
func betweenBounds(value any) (from, to any, ok bool) {
	switch v := value.(type) {
	case []any:
		if len(v) == 2 {
			return v[0], v[1], true
		}
	case []string:
		if len(v) == 2 {
			return v[0], v[1], true
		}
	}
	return nil, nil, false
}

// listItems normalizes an in/not_in value to a flat item slice. Strings are
// split on whitespace and commas, trimmed, with empties dropped.
func listItems(value any) ([]any, error) {
	switch v := value.(type) {
	case []any:
		return v, nil
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return items, nil
	case string:
		parts := strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
		items := make([]any, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				items = append(items, p)
			}
		}
		return items, nil
	default:
		return nil, fmt.Errorf("unsupported list value %T", value)
	}
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	default:
		return false
	}
}

// parseNumber is the strict numeric parse used when serializing item id
// lists; unlike utils.Num it refuses non-numeric input instead of zeroing it.
func parseNumber(v any) (float64, error) {
	if f, ok := utils.Coerce(v); ok {
		return f, nil
	}
	return 0, fmt.Errorf("%q is not a number", fmt.Sprint(v))
}
